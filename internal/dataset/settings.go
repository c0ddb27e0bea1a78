package dataset

import "github.com/takasapp/takas-admin-api/internal/models"

var nearbyRadiusOptions = []int{5, 10, 20, 50}

var trustFactorIDs = []models.TrustFactorID{
	models.TrustCompletedSwaps,
	models.TrustRatings,
	models.TrustResponseTime,
	models.TrustProfileCompleteness,
	models.TrustVerification,
}

// generateUserSettings creates the per-user settings maps and trust scores,
// keyed by canonical user id. Their lifecycle is independent from the user
// record itself.
func (gen *generator) generateUserSettings() {
	notification := make(map[models.ID]models.NotificationSettings, len(gen.snap.Users))
	location := make(map[models.ID]models.LocationSettings, len(gen.snap.Users))
	trust := make(map[models.ID]models.TrustScore, len(gen.snap.Users))

	for _, user := range gen.snap.Users {
		notification[user.ID] = defaultNotificationSettings()
		location[user.ID] = gen.makeLocationSettings(user.City)
		trust[user.ID] = gen.makeTrustScore(user.ID)
	}

	gen.snap.NotificationSettingsByUserID = notification
	gen.snap.LocationSettingsByUserID = location
	gen.snap.TrustScoresByUserID = trust
}

func defaultNotificationSettings() models.NotificationSettings {
	return models.NotificationSettings{
		PushEnabled:   true,
		SwapOffers:    true,
		SwapAccepted:  true,
		SwapRejected:  true,
		NewMessages:   true,
		ProductViewed: true,
		NewFollowers:  true,

		QuietHoursStart: "23:00",
		QuietHoursEnd:   "08:00",
	}
}

func (gen *generator) makeLocationSettings(city string) models.LocationSettings {
	defaultLocation := models.LocationRef{
		ID:       gen.g.intBetween(1, 9999),
		City:     city,
		District: pickOne(gen.g, districts),
	}

	historyCount := gen.g.intBetween(3, 12)
	history := make([]models.LocationHistoryItem, 0, historyCount)
	for i := 0; i < historyCount; i++ {
		day := gen.daysAgo(i)
		history = append(history, models.LocationHistoryItem{
			LocationRef: models.LocationRef{
				ID:       gen.g.intBetween(1, 9999),
				City:     city,
				District: pickOne(gen.g, districts),
			},
			Date: day.Format("2006-01-02"),
			Time: day.Format("15:04"),
		})
	}

	return models.LocationSettings{
		LocationPermission: true,
		DefaultLocation:    defaultLocation,
		NearbyRadiusKm:     pickOne(gen.g, nearbyRadiusOptions),
		History:            history,
	}
}

// makeTrustScore rolls the five fixed factors and derives the overall score
// as their mean rounded to two decimals.
func (gen *generator) makeTrustScore(userID models.ID) models.TrustScore {
	factors := make([]models.TrustFactor, 0, len(trustFactorIDs))
	sum := 0.0
	for _, id := range trustFactorIDs {
		score := gen.g.floatBetween(0.2, 1.0, 2)
		sum += score
		factors = append(factors, models.TrustFactor{
			ID:       id,
			Score:    score,
			MaxScore: 1,
		})
	}

	return models.TrustScore{
		UserID:       userID,
		OverallScore: roundTo(sum/float64(len(factors)), 2),
		Factors:      factors,
	}
}
