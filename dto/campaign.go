package dto

import "time"

type CreateCampaignInput struct {
	Title             string   `json:"title" binding:"required"`
	Description       string   `json:"description" binding:"required"`
	Images            []string `json:"images" binding:"required,min=1"`
	AmountNeeded      int64    `json:"amountNeeded" binding:"required,gt=0"`
	BankAccountNumber string   `json:"bankAccountNumber" binding:"required"`
	BankAccountName   string   `json:"bankAccountName" binding:"required"`
	BankName          string   `json:"bankName" binding:"required"`
}

type UpdateCampaignInput struct {
	Title             string `json:"title"`
	Description       string `json:"description"`
	AmountNeeded      int64  `json:"amountNeeded" binding:"omitempty,gt=0"`
	BankAccountNumber string `json:"bankAccountNumber"`
	BankAccountName   string `json:"bankAccountName"`
	BankName          string `json:"bankName"`
}

type UpdateCampaignImagesInput struct {
	Images []string `json:"images" binding:"required,min=1"`
}

type UpdateCampaignStatusInput struct {
	Status string `json:"status" binding:"required,campaign_status"`
}

type CampaignResponse struct {
	ID                uint      `json:"id"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	Images            []string  `json:"images"`
	AmountNeeded      int64     `json:"amountNeeded"`
	BankAccountNumber string    `json:"bankAccountNumber"`
	BankAccountName   string    `json:"bankAccountName"`
	BankName          string    `json:"bankName"`
	Status            string    `json:"status"`
	CreatedByID       uint      `json:"createdById"`
	CreatedByName     string    `json:"createdByName,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}
