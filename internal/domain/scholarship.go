package domain

import "time"

type ScholarshipStatus string

const (
	ScholarshipDraft     ScholarshipStatus = "DRAFT"
	ScholarshipPublished ScholarshipStatus = "PUBLISHED"
	ScholarshipClosed    ScholarshipStatus = "CLOSED"
)

type Scholarship struct {
	ID          int64             `json:"id" gorm:"primaryKey"`
	Code        string            `json:"code" gorm:"uniqueIndex;size:36"`
	Title       string            `json:"title" gorm:"not null"`
	Description string            `json:"description"`
	Amount      int64             `json:"amount"`
	Deadline    *time.Time        `json:"deadline,omitempty"`
	Eligibility string            `json:"eligibility,omitempty"`
	Status      ScholarshipStatus `json:"status" gorm:"default:DRAFT;index"`
	CreatedBy   int64             `json:"created_by" gorm:"index"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
