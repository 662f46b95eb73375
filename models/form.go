package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SubmissionStatus string

const (
	SubmissionStatusPending  SubmissionStatus = "pending"
	SubmissionStatusApproved SubmissionStatus = "approved"
	SubmissionStatusRejected SubmissionStatus = "rejected"
)

// Form stores an authored form definition. Fields, Settings and Design hold
// the schema exactly as the form engine consumes it (pkg/formengine).
type Form struct {
	gorm.Model
	Slug            string         `gorm:"size:200;not null;unique" json:"slug"`
	Title           string         `gorm:"size:200;not null" json:"title"`
	Description     string         `gorm:"size:500" json:"description"`
	Fields          datatypes.JSON `gorm:"type:jsonb" json:"fields"`
	Settings        datatypes.JSON `gorm:"type:jsonb" json:"settings"`
	Design          datatypes.JSON `gorm:"type:jsonb" json:"design"`
	Published       bool           `gorm:"default:false" json:"published"`
	SubmissionCount int            `gorm:"default:0" json:"submission_count"`
}

type FormSubmission struct {
	gorm.Model
	FormID         uint           `gorm:"not null;index" json:"form_id"`
	Form           Form           `gorm:"foreignKey:FormID" json:"-"`
	Data           datatypes.JSON `gorm:"type:jsonb" json:"data"`
	SubmitterName  string         `gorm:"size:200" json:"submitter_name"`
	SubmitterEmail string         `gorm:"size:200" json:"submitter_email"`
	Status         string         `gorm:"type:submission_status;default:'pending';not null" json:"status"`
	IPAddress      string         `gorm:"size:45" json:"ip_address"`
	UserAgent      string         `gorm:"size:300" json:"user_agent"`
}
