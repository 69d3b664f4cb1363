package dto

import "time"

type NotificationResponse struct {
	ID         uint      `json:"id"`
	SenderID   *uint     `json:"senderId,omitempty"`
	SenderName string    `json:"senderName,omitempty"`
	Type       string    `json:"type"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Related    Related   `json:"relatedTo"`
	IsRead     bool      `json:"isRead"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Related struct {
	Kind string `json:"kind,omitempty"`
	ID   uint   `json:"id,omitempty"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

type MarkAllReadResponse struct {
	Affected int64 `json:"affected"`
}
