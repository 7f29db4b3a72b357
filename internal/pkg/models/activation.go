package models

import "time"

// ActivationQueueEntry is an applicant waiting for an active slot in a region
type ActivationQueueEntry struct {
	ID            string    `json:"id" db:"id"`
	ApplicantID   string    `json:"applicant_id" db:"applicant_id"`
	RegionID      string    `json:"region_id" db:"region_id"`
	PriorityScore int64     `json:"priority_score" db:"priority_score"`
	AddedAt       time.Time `json:"added_at" db:"added_at"`
}

// Outranks reports whether e is promoted before other: higher score first,
// then earlier added_at, then id so the order is total.
func (e ActivationQueueEntry) Outranks(other ActivationQueueEntry) bool {
	if e.PriorityScore != other.PriorityScore {
		return e.PriorityScore > other.PriorityScore
	}
	if !e.AddedAt.Equal(other.AddedAt) {
		return e.AddedAt.Before(other.AddedAt)
	}
	return e.ID < other.ID
}

// QueuePosition is an applicant's rank computed at read time
type QueuePosition struct {
	ApplicantID   string `json:"applicant_id" db:"applicant_id"`
	RegionID      string `json:"region_id" db:"region_id"`
	RegionName    string `json:"region_name" db:"region_name"`
	Rank          int    `json:"rank" db:"rank"`
	TotalInRegion int    `json:"total_in_region" db:"total_in_region"`
}

// PromotionResult summarises one TryPromote pass
type PromotionResult struct {
	RegionID string   `json:"region_id"`
	Promoted []string `json:"promoted"`
	Skipped  []string `json:"skipped"`
}
