package model

import (
	"time"
)

type JobStatus string

const (
	StatusApplied   JobStatus = "Applied"
	StatusInterview JobStatus = "Interview"
	StatusOffer     JobStatus = "Offer"
	StatusRejected  JobStatus = "Rejected"
	StatusAccepted  JobStatus = "Accepted"
)

// ValidJobStatus reports whether s is one of the enumerated statuses.
func ValidJobStatus(s JobStatus) bool {
	switch s {
	case StatusApplied, StatusInterview, StatusOffer, StatusRejected, StatusAccepted:
		return true
	}
	return false
}

// Job is a single tracked application. UserID is an immutable back-reference
// to the owning user; jobs are never transferred between users.
type Job struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Company     string    `json:"company"`
	Role        string    `json:"role"`
	Status      JobStatus `json:"status"`
	AppliedDate time.Time `json:"applied_date"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Owner display fields, populated only by the admin listing.
	OwnerName  *string `json:"owner_name,omitempty"`
	OwnerEmail *string `json:"owner_email,omitempty"`
}
