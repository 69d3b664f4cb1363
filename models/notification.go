package models

import (
	"time"

	"tuthien/constants"
)

// RelatedRef trỏ đến thực thể nguồn của một thông báo. Kind chỉ nhận
// một trong các giá trị constants.Related*, dùng các hàm tạo bên dưới
// thay vì gán chuỗi trực tiếp.
type RelatedRef struct {
	Kind string `gorm:"column:related_kind;type:varchar(20)" json:"kind,omitempty"`
	ID   uint   `gorm:"column:related_id" json:"id,omitempty"`
}

func RelatedToApplication(id uint) RelatedRef {
	return RelatedRef{Kind: constants.RelatedApplication, ID: id}
}

func RelatedToCampaign(id uint) RelatedRef {
	return RelatedRef{Kind: constants.RelatedCampaign, ID: id}
}

func RelatedToMessage(id uint) RelatedRef {
	return RelatedRef{Kind: constants.RelatedMessage, ID: id}
}

func RelatedToUser(id uint) RelatedRef {
	return RelatedRef{Kind: constants.RelatedUser, ID: id}
}

type Notification struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	RecipientID uint       `gorm:"not null;index" json:"recipientId"`
	Recipient   *User      `gorm:"foreignKey:RecipientID;references:ID;constraint:OnDelete:CASCADE" json:"recipient,omitempty"`
	SenderID    *uint      `json:"senderId,omitempty"`
	Sender      *User      `gorm:"foreignKey:SenderID;references:ID" json:"sender,omitempty"`
	Type        string     `gorm:"type:varchar(30);not null" json:"type"`
	Title       string     `gorm:"not null" json:"title"`
	Message     string     `gorm:"type:text;not null" json:"message"`
	RelatedTo   RelatedRef `gorm:"embedded" json:"relatedTo"`
	IsRead      bool       `gorm:"default:false" json:"isRead"`
}
