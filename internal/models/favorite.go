package models

// Target kinds a favorite can point at.
const (
	TargetCharacter = "character"
	TargetPlanet    = "planet"
	TargetVehicle   = "vehicle"
)

// Favorite links a user to exactly one catalog entity. The target is a
// tagged reference (kind + id) so a row can never point at two entities
// at once.
type Favorite struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	UserID     uint   `gorm:"not null;index" json:"user"`
	TargetType string `gorm:"not null;size:16;index:idx_favorite_target" json:"-"`
	TargetID   uint   `gorm:"not null;index:idx_favorite_target" json:"-"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

// ValidTargetType reports whether kind names one of the three catalog
// entities a favorite may reference.
func ValidTargetType(kind string) bool {
	switch kind {
	case TargetCharacter, TargetPlanet, TargetVehicle:
		return true
	}
	return false
}
