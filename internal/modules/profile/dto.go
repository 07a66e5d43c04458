package profile

import (
	"time"

	"scholarhub/internal/domain"
)

type UpsertRequest struct {
	DOB       *time.Time           `json:"dob"`
	Gender    string               `json:"gender" binding:"omitempty,max=32"`
	Address   domain.Address       `json:"address"`
	Education domain.EducationList `json:"education" binding:"omitempty,dive"`
	Family    domain.Family        `json:"family"`
}
