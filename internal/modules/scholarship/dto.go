package scholarship

import "time"

type CreateRequest struct {
	Title       string     `json:"title" binding:"required,min=3"`
	Description string     `json:"description"`
	Amount      int64      `json:"amount" binding:"omitempty,min=0"`
	Deadline    *time.Time `json:"deadline"`
	Eligibility string     `json:"eligibility"`
}

type UpdateRequest struct {
	Title       string     `json:"title" binding:"omitempty,min=3"`
	Description *string    `json:"description"`
	Amount      *int64     `json:"amount" binding:"omitempty,min=0"`
	Deadline    *time.Time `json:"deadline"`
	Eligibility *string    `json:"eligibility"`
}

type ListQuery struct {
	Page   int    `form:"page,default=1"`
	Limit  int    `form:"limit,default=20"`
	Status string `form:"status" binding:"omitempty,oneof=DRAFT PUBLISHED CLOSED"`
	Q      string `form:"q"`
}
