package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type Address struct {
	Line1      string `json:"line1,omitempty"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	Country    string `json:"country,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
}

type Education struct {
	Institution  string `json:"institution,omitempty"`
	Degree       string `json:"degree,omitempty"`
	FieldOfStudy string `json:"field_of_study,omitempty"`
	StartYear    int    `json:"start_year,omitempty"`
	EndYear      int    `json:"end_year,omitempty"`
	Grade        string `json:"grade,omitempty"`
}

type EducationList []Education

func (e EducationList) Value() (driver.Value, error) {
	if e == nil {
		return "[]", nil
	}
	b, err := json.Marshal(e)
	return string(b), err
}

func (e *EducationList) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*e = nil
		return nil
	case []byte:
		return json.Unmarshal(v, e)
	case string:
		return json.Unmarshal([]byte(v), e)
	default:
		return fmt.Errorf("unsupported education column type %T", value)
	}
}

type Family struct {
	FatherName   string `json:"father_name,omitempty"`
	MotherName   string `json:"mother_name,omitempty"`
	AnnualIncome int64  `json:"annual_income"`
}

// Profile holds applicant details; one per user.
type Profile struct {
	ID        int64         `json:"id" gorm:"primaryKey"`
	UserID    int64         `json:"user_id" gorm:"uniqueIndex;not null"`
	User      *User         `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	DOB       *time.Time    `json:"dob,omitempty"`
	Gender    string        `json:"gender,omitempty"`
	Address   Address       `json:"address" gorm:"embedded;embeddedPrefix:addr_"`
	Education EducationList `json:"education" gorm:"type:json"`
	Family    Family        `json:"family" gorm:"embedded;embeddedPrefix:family_"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
