package dto

import "time"

type SendMessageInput struct {
	Content       string `json:"content" binding:"required"`
	ApplicationID uint   `json:"applicationId" binding:"required"`
}

type MessageResponse struct {
	ID             uint      `json:"id"`
	SenderID       uint      `json:"senderId"`
	SenderName     string    `json:"senderName,omitempty"`
	ApplicationID  uint      `json:"applicationId"`
	Content        string    `json:"content"`
	IsAdminMessage bool      `json:"isAdminMessage"`
	CreatedAt      time.Time `json:"createdAt"`
}
