package models

type Character struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"unique;not null;size:250" json:"name"`
	BirthYear string `gorm:"size:250" json:"birth_year"`
	Gender    string `gorm:"not null;size:250" json:"gender"`
	Height    string `gorm:"not null;size:250" json:"height"`
	EyeColor  string `gorm:"not null;size:250" json:"eye_color"`
	SkinColor string `gorm:"not null;size:250" json:"skin_color"`
	Image     string `gorm:"not null;size:500" json:"image"`
}
