package domain

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusReviewed Status = "reviewed"
)

// Statuses lists every valid report status.
var Statuses = []Status{StatusPending, StatusApproved, StatusRejected, StatusReviewed}

type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
	ActionReview  Action = "review"
)

// StatusForAction maps a bulk action to the status it applies.
// Unrecognized actions fail before any report is touched.
func StatusForAction(action Action) (Status, error) {
	switch action {
	case ActionApprove:
		return StatusApproved, nil
	case ActionReject:
		return StatusRejected, nil
	case ActionReview:
		return StatusReviewed, nil
	default:
		return "", ErrInvalidAction
	}
}

// Report is one moderation queue entry. Reports live for the process
// lifetime; only ApplyAction mutates them.
type Report struct {
	ID             string    `json:"id"`
	ContentPreview string    `json:"content_preview"` // URL or text snippet
	Reason         string    `json:"report_reason"`
	Reporter       string    `json:"reporter"`
	SubmittedAt    time.Time `json:"submission_date"`
	Status         Status    `json:"status"`
	Category       string    `json:"category,omitempty"`
}
