package models

import "time"

// Message là một tin nhắn trong luồng trao đổi của một đơn xin hỗ trợ.
// IsAdminMessage là snapshot role của người gửi tại thời điểm gửi, không thay đổi về sau.
type Message struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
	SenderID       uint      `gorm:"not null" json:"senderId"`
	Sender         *User     `gorm:"foreignKey:SenderID;references:ID" json:"sender,omitempty"`
	ApplicationID  uint      `gorm:"not null" json:"applicationId"`
	Content        string    `gorm:"type:text;not null" json:"content"`
	IsAdminMessage bool      `gorm:"default:false" json:"isAdminMessage"`
}
