package services

import (
	"errors"
	"fmt"
	"log/slog"

	"starcatalog/internal/models"

	"gorm.io/gorm"
)

// FavoriteView is the serialized form of a favorite. Exactly one of
// Character/Planet/Vehicle carries the target id; Name is the target's
// display name, resolved at serialization time.
type FavoriteView struct {
	ID        uint   `json:"id"`
	User      uint   `json:"user"`
	Character *uint  `json:"character,omitempty"`
	Planet    *uint  `json:"planet,omitempty"`
	Vehicle   *uint  `json:"vehicle,omitempty"`
	Name      string `json:"name"`
}

type FavoriteService struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewFavoriteService(db *gorm.DB, logger *slog.Logger) *FavoriteService {
	return &FavoriteService{db: db, logger: logger}
}

// Attach records that the user likes the given target. Caller is
// responsible for having checked that both rows exist; the favorite
// itself carries no uniqueness rule, matching the permissive write path.
func (s *FavoriteService) Attach(userID uint, targetType string, targetID uint) error {
	if !models.ValidTargetType(targetType) {
		return fmt.Errorf("invalid favorite target type: %s", targetType)
	}
	fav := models.Favorite{
		UserID:     userID,
		TargetType: targetType,
		TargetID:   targetID,
	}
	return s.db.Create(&fav).Error
}

// Detach removes one favorite row keyed by (user, target kind, target
// id) rather than by the row's own id.
func (s *FavoriteService) Detach(userID uint, targetType string, targetID uint) error {
	var fav models.Favorite
	err := s.db.Where("user_id = ? AND target_type = ? AND target_id = ?",
		userID, targetType, targetID).First(&fav).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.db.Delete(&fav).Error
}

// ListForUser returns the user together with the serialized views of
// every favorite they hold. ErrNotFound means the user does not exist;
// an empty slice means they simply have no favorites.
func (s *FavoriteService) ListForUser(userID uint) (*models.User, []FavoriteView, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	var favorites []models.Favorite
	if err := s.db.Where("user_id = ?", userID).Find(&favorites).Error; err != nil {
		return nil, nil, err
	}

	views := make([]FavoriteView, 0, len(favorites))
	for _, fav := range favorites {
		views = append(views, s.buildView(fav))
	}
	return &user, views, nil
}

func (s *FavoriteService) buildView(fav models.Favorite) FavoriteView {
	view := FavoriteView{
		ID:   fav.ID,
		User: fav.UserID,
		Name: s.resolveName(fav.TargetType, fav.TargetID),
	}
	targetID := fav.TargetID
	switch fav.TargetType {
	case models.TargetCharacter:
		view.Character = &targetID
	case models.TargetPlanet:
		view.Planet = &targetID
	case models.TargetVehicle:
		view.Vehicle = &targetID
	}
	return view
}

// resolveName looks up the target's display name. A dangling reference
// yields "unknown" instead of an error so one stale favorite cannot
// break the whole listing.
func (s *FavoriteService) resolveName(targetType string, targetID uint) string {
	var (
		name string
		err  error
	)
	switch targetType {
	case models.TargetCharacter:
		var character models.Character
		err = s.db.First(&character, targetID).Error
		name = character.Name
	case models.TargetPlanet:
		var planet models.Planet
		err = s.db.First(&planet, targetID).Error
		name = planet.Name
	case models.TargetVehicle:
		var vehicle models.Vehicle
		err = s.db.First(&vehicle, targetID).Error
		name = vehicle.Name
	default:
		err = gorm.ErrRecordNotFound
	}
	if err != nil {
		s.logger.Warn("favorite target missing",
			"target_type", targetType, "target_id", targetID, "error", err)
		return "unknown"
	}
	return name
}
