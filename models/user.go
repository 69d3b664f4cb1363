package models

import (
	"time"
)

type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	FullName    string    `gorm:"not null" json:"fullName"`
	Email       string    `gorm:"unique;not null" json:"email"`
	Password    string    `gorm:"not null" json:"-"`
	PhoneNumber string    `gorm:"type:varchar(15)" json:"phoneNumber"`
	Role        int       `gorm:"default:0" json:"role"`
	IsActive    bool      `gorm:"default:true" json:"isActive"`
}
