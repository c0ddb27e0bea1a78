package models

import "time"

// ReportCategory classifies a user-submitted report.
type ReportCategory string

const (
	ReportBug        ReportCategory = "bug"
	ReportUser       ReportCategory = "user"
	ReportProduct    ReportCategory = "product"
	ReportPayment    ReportCategory = "payment"
	ReportOther      ReportCategory = "other"
	ReportSuggestion ReportCategory = "suggestion"
)

// ReportStatus tracks moderation progress on a report.
type ReportStatus string

const (
	ReportOpen     ReportStatus = "open"
	ReportInReview ReportStatus = "in_review"
	ReportResolved ReportStatus = "resolved"
	ReportRejected ReportStatus = "rejected"
)

// ReportItem is a complaint or suggestion filed by a user. Target user and
// target product are independent optional references.
type ReportItem struct {
	ID              ID             `json:"id"`
	Category        ReportCategory `json:"category"`
	Message         string         `json:"message"`
	CreatedAt       time.Time      `json:"createdAt"`
	ReporterUserID  ID             `json:"reporterUserId"`
	TargetUserID    ID             `json:"targetUserId,omitempty"`
	TargetProductID ID             `json:"targetProductId,omitempty"`
	Status          ReportStatus   `json:"status"`
	ResolutionNote  string         `json:"resolutionNote,omitempty"`
}
