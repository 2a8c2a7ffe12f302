package model

import (
	"time"

	"github.com/google/uuid"
)

// JobModel mirrors the 'jobs' table. The four link columns are legacy aliases
// of the same apply URL and are kept identical by the application layer.
type JobModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	JobID        string    `gorm:"type:varchar(64);unique;not null"`
	Title        string    `gorm:"type:varchar(255);not null"`
	EmployerName string    `gorm:"type:varchar(255);not null"`
	EmployerLogo string    `gorm:"type:text"`
	City         string    `gorm:"type:varchar(100)"`
	Country      string    `gorm:"type:varchar(100)"`
	ContactEmail string    `gorm:"type:varchar(255)"`
	WorkMode     string    `gorm:"type:varchar(50)"`
	ApplyLink    string    `gorm:"type:text"`
	JobURL       string    `gorm:"type:text"`
	URL          string    `gorm:"type:text"`
	Link         string    `gorm:"type:text"`
	Text         string    `gorm:"type:text"`
	Source       string    `gorm:"type:varchar(20);not null"`
	Category     string    `gorm:"type:varchar(100);not null;default:General"`
	PostedAt     time.Time `gorm:"index"`
	UpdatedBy    string    `gorm:"type:varchar(100)"`
	Views        int64     `gorm:"not null;default:0"`
	Clicks       int64     `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (JobModel) TableName() string {
	return "jobs"
}
