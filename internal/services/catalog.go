package services

import (
	"errors"

	"starcatalog/internal/models"

	"gorm.io/gorm"
)

// ErrNotFound signals a lookup that matched no row, or a listing over
// an empty table.
var ErrNotFound = errors.New("not found")

// ErrConflict signals a uniqueness violation on create.
var ErrConflict = errors.New("already used")

// CatalogService is the store for the four primary entity kinds. Each
// kind gets the same four operations: list, get, create, delete.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// Users

func (s *CatalogService) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrNotFound
	}
	return users, nil
}

func (s *CatalogService) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *CatalogService) CreateUser(user *models.User) error {
	var existing models.User
	err := s.db.Where("email = ?", user.Email).First(&existing).Error
	if err == nil {
		return ErrConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.db.Create(user).Error
}

func (s *CatalogService) DeleteUser(id uint) error {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.db.Delete(&user).Error
}

// Characters

func (s *CatalogService) ListCharacters() ([]models.Character, error) {
	var characters []models.Character
	if err := s.db.Find(&characters).Error; err != nil {
		return nil, err
	}
	if len(characters) == 0 {
		return nil, ErrNotFound
	}
	return characters, nil
}

func (s *CatalogService) GetCharacter(id uint) (*models.Character, error) {
	var character models.Character
	if err := s.db.First(&character, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &character, nil
}

func (s *CatalogService) CreateCharacter(character *models.Character) error {
	var existing models.Character
	err := s.db.Where("name = ?", character.Name).First(&existing).Error
	if err == nil {
		return ErrConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.db.Create(character).Error
}

func (s *CatalogService) DeleteCharacter(id uint) error {
	var character models.Character
	if err := s.db.First(&character, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.db.Delete(&character).Error
}

// Planets

func (s *CatalogService) ListPlanets() ([]models.Planet, error) {
	var planets []models.Planet
	if err := s.db.Find(&planets).Error; err != nil {
		return nil, err
	}
	if len(planets) == 0 {
		return nil, ErrNotFound
	}
	return planets, nil
}

func (s *CatalogService) GetPlanet(id uint) (*models.Planet, error) {
	var planet models.Planet
	if err := s.db.First(&planet, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &planet, nil
}

func (s *CatalogService) CreatePlanet(planet *models.Planet) error {
	var existing models.Planet
	err := s.db.Where("name = ?", planet.Name).First(&existing).Error
	if err == nil {
		return ErrConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.db.Create(planet).Error
}

func (s *CatalogService) DeletePlanet(id uint) error {
	var planet models.Planet
	if err := s.db.First(&planet, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.db.Delete(&planet).Error
}

// Vehicles

func (s *CatalogService) ListVehicles() ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	if err := s.db.Find(&vehicles).Error; err != nil {
		return nil, err
	}
	if len(vehicles) == 0 {
		return nil, ErrNotFound
	}
	return vehicles, nil
}

func (s *CatalogService) GetVehicle(id uint) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := s.db.First(&vehicle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &vehicle, nil
}

// CreateVehicle has no uniqueness rule; two vehicles may share a name.
func (s *CatalogService) CreateVehicle(vehicle *models.Vehicle) error {
	return s.db.Create(vehicle).Error
}

func (s *CatalogService) DeleteVehicle(id uint) error {
	var vehicle models.Vehicle
	if err := s.db.First(&vehicle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.db.Delete(&vehicle).Error
}
