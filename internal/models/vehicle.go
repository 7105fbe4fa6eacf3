package models

type Vehicle struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"not null;size:250" json:"name"`
	Model string `gorm:"not null;size:250" json:"model"`
	Size  int    `gorm:"not null" json:"size"`
}
