package models

import (
	"time"

	"github.com/lib/pq"
)

type Campaign struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	CreatedAt         time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	Title             string         `gorm:"not null" json:"title"`
	Description       string         `gorm:"type:text;not null" json:"description"`
	Images            pq.StringArray `gorm:"type:text[]" json:"images"`
	AmountNeeded      int64          `gorm:"not null" json:"amountNeeded"`
	BankAccountNumber string         `gorm:"not null" json:"bankAccountNumber"`
	BankAccountName   string         `gorm:"not null" json:"bankAccountName"`
	BankName          string         `gorm:"not null" json:"bankName"`
	Status            string         `gorm:"type:varchar(20);default:'active'" json:"status"`
	CreatedByID       uint           `json:"createdById"`
	CreatedBy         *User          `gorm:"foreignKey:CreatedByID;references:ID" json:"createdBy,omitempty"`
	Applications      []Application  `gorm:"foreignKey:CampaignID" json:"applications,omitempty"`
}
