package models

import "time"

// OfferStatus enumerates the lifecycle states of a swap offer.
type OfferStatus string

const (
	OfferPending   OfferStatus = "pending"
	OfferAccepted  OfferStatus = "accepted"
	OfferRejected  OfferStatus = "rejected"
	OfferCancelled OfferStatus = "cancelled"
	OfferCompleted OfferStatus = "completed"
)

// SwapOffer proposes trading the initiator's product for the target user's
// product. The two products always have different owners and the offered
// product always belongs to the initiator.
type SwapOffer struct {
	ID               ID          `json:"id"`
	InitiatorID      ID          `json:"initiatorId"`
	TargetUserID     ID          `json:"targetUserId"`
	TargetProductID  ID          `json:"targetProductId"`
	OfferedProductID ID          `json:"offeredProductId"`
	Status           OfferStatus `json:"status"`
	Message          string      `json:"message"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
	InitiatorOnline  bool        `json:"initiatorOnline"`
	TargetOnline     bool        `json:"targetOnline"`
}
