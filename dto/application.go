package dto

import "time"

type SubmitApplicationInput struct {
	Title             string   `json:"title" binding:"required"`
	Description       string   `json:"description" binding:"required"`
	ProofDocuments    []string `json:"proofDocuments" binding:"required,min=1"`
	FullName          string   `json:"fullName" binding:"required"`
	Email             string   `json:"email" binding:"required,email"`
	AdditionalDetails string   `json:"additionalDetails"`
	CampaignID        *uint    `json:"campaignId"`
}

type UpdateApplicationStatusInput struct {
	Status string `json:"status" binding:"required,application_status"`
	// Lời nhắn kèm theo kết quả xét duyệt, đưa vào thông báo và email
	Message string `json:"message"`
}

type AssignCampaignInput struct {
	CampaignID uint `json:"campaignId" binding:"required"`
}

type ApplicationResponse struct {
	ID                uint      `json:"id"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	ProofDocuments    []string  `json:"proofDocuments"`
	FullName          string    `json:"fullName"`
	Email             string    `json:"email"`
	AdditionalDetails string    `json:"additionalDetails,omitempty"`
	Status            string    `json:"status"`
	UserID            uint      `json:"userId"`
	UserName          string    `json:"userName,omitempty"`
	CampaignID        *uint     `json:"campaignId,omitempty"`
	CampaignTitle     string    `json:"campaignTitle,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}
