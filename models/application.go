package models

import (
	"time"

	"github.com/lib/pq"
)

type Application struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	CreatedAt         time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	Title             string         `gorm:"not null" json:"title"`
	Description       string         `gorm:"type:text;not null" json:"description"`
	ProofDocuments    pq.StringArray `gorm:"type:text[]" json:"proofDocuments"`
	FullName          string         `gorm:"not null" json:"fullName"`
	Email             string         `gorm:"not null" json:"email"`
	AdditionalDetails string         `gorm:"type:text" json:"additionalDetails"`
	Status            string         `gorm:"type:varchar(20);default:'pending'" json:"status"`
	UserID            uint           `gorm:"not null" json:"userId"`
	User              *User          `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
	CampaignID        *uint          `json:"campaignId,omitempty"`
	Campaign          *Campaign      `gorm:"foreignKey:CampaignID;references:ID" json:"campaign,omitempty"`
	Messages          []Message      `gorm:"foreignKey:ApplicationID" json:"messages,omitempty"`
}
