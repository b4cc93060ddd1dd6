package services

import (
	"errors"

	"github.com/Tanmay0Bhosale/diet-tracker-modern/models"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) GetProfile(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ProfileUpdate carries a partial profile patch. Nil fields leave the
// stored value untouched.
type ProfileUpdate struct {
	Name     *string
	HeightCm *float64
	WeightKg *float64
}

// UpdateProfile applies the patch and returns the updated account.
func (s *UserService) UpdateProfile(userID uint, in ProfileUpdate) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.HeightCm != nil {
		user.HeightCm = in.HeightCm
	}
	if in.WeightKg != nil {
		user.WeightKg = in.WeightKg
	}

	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
