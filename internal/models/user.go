package models

import (
	"time"
)

type User struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"not null;size:120" json:"name"`
	LastName         string    `gorm:"not null;size:80" json:"last_name"`
	Email            string    `gorm:"unique;not null;size:80" json:"email"`
	Password         string    `gorm:"not null;size:255" json:"-"`
	SubscriptionDate time.Time `gorm:"not null" json:"subscription_date"`

	Favorites []Favorite `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"favorites,omitempty"`
}
