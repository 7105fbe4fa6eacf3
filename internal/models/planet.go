package models

type Planet struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Name           string `gorm:"unique;not null;size:250" json:"name"`
	Climate        string `gorm:"size:250" json:"climate"`
	Population     string `gorm:"not null;size:250" json:"population"`
	OrbitalPeriod  string `gorm:"size:250" json:"orbital_period"`
	RotationPeriod string `gorm:"size:250" json:"rotation_period"`
	Diameter       string `gorm:"not null;size:250" json:"diameter"`
	Image          string `gorm:"size:250" json:"image"`
}
