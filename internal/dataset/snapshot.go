package dataset

import (
	"time"

	"github.com/takasapp/takas-admin-api/internal/models"
)

// Snapshot is the complete, internally consistent dataset at one point in
// time. The store replaces snapshots wholesale; holders of an older
// snapshot never observe later mutations.
type Snapshot struct {
	Seed        int64     `json:"seed"`
	GeneratedAt time.Time `json:"generatedAt"`

	Categories    []models.Category         `json:"categories"`
	Users         []models.User             `json:"users"`
	Products      []models.Product          `json:"products"`
	Offers        []models.SwapOffer        `json:"offers"`
	Threads       []models.ChatThread       `json:"threads"`
	Messages      []models.ChatMessage      `json:"messages"`
	Notifications []models.NotificationItem `json:"notifications"`
	Reports       []models.ReportItem       `json:"reports"`
	Banners       []models.Banner           `json:"banners"`

	NotificationSettingsByUserID map[models.ID]models.NotificationSettings `json:"notificationSettingsByUserId"`
	LocationSettingsByUserID     map[models.ID]models.LocationSettings     `json:"locationSettingsByUserId"`
	TrustScoresByUserID          map[models.ID]models.TrustScore           `json:"trustScoresByUserId"`

	RecentSearchTerms []models.SearchTerm `json:"recentSearchTerms"`
}

// UserByID returns the user with the given canonical id.
func (s *Snapshot) UserByID(id models.ID) (models.User, bool) {
	for _, u := range s.Users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// ProductByID returns the product with the given canonical id.
func (s *Snapshot) ProductByID(id models.ID) (models.Product, bool) {
	for _, p := range s.Products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// ThreadByID returns the chat thread with the given canonical id.
func (s *Snapshot) ThreadByID(id models.ID) (models.ChatThread, bool) {
	for _, t := range s.Threads {
		if t.ID == id {
			return t, true
		}
	}
	return models.ChatThread{}, false
}

// MessagesByThread returns the messages of one thread in generation order.
func (s *Snapshot) MessagesByThread(threadID models.ID) []models.ChatMessage {
	var out []models.ChatMessage
	for _, m := range s.Messages {
		if m.ThreadID == threadID {
			out = append(out, m)
		}
	}
	return out
}

// ProductsByOwner returns all products owned by the given user.
func (s *Snapshot) ProductsByOwner(ownerID models.ID) []models.Product {
	var out []models.Product
	for _, p := range s.Products {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out
}

// OffersByUser returns offers the user participates in on either side.
func (s *Snapshot) OffersByUser(userID models.ID) []models.SwapOffer {
	var out []models.SwapOffer
	for _, o := range s.Offers {
		if o.InitiatorID == userID || o.TargetUserID == userID {
			out = append(out, o)
		}
	}
	return out
}

// ReportsByUser returns reports filed by or targeting the given user.
func (s *Snapshot) ReportsByUser(userID models.ID) []models.ReportItem {
	var out []models.ReportItem
	for _, r := range s.Reports {
		if r.ReporterUserID == userID || r.TargetUserID == userID {
			out = append(out, r)
		}
	}
	return out
}
