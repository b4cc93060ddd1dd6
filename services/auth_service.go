package services

import (
	"errors"
	"time"

	"github.com/Tanmay0Bhosale/diet-tracker-modern/models"
	"github.com/Tanmay0Bhosale/diet-tracker-modern/utils"

	"gorm.io/gorm"
)

// AuthService handles registration and login, issuing signed session
// tokens. The signing secret is injected at construction.
type AuthService struct {
	db       *gorm.DB
	secret   []byte
	tokenTTL time.Duration
}

func NewAuthService(db *gorm.DB, secret []byte) *AuthService {
	return &AuthService{db: db, secret: secret, tokenTTL: 72 * time.Hour}
}

// Register creates the account and returns it with a fresh token.
// Height/weight are optional at signup.
func (s *AuthService) Register(name, email, password string, heightCm, weightKg *float64) (*models.User, string, error) {
	var existing models.User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, "", ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: hashed,
		HeightCm: heightCm,
		WeightKg: weightKg,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateJWT(user.ID, s.secret, s.tokenTTL)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// Login verifies credentials and issues a token. Unknown email and
// wrong password return the same error so accounts can't be
// enumerated.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID, s.secret, s.tokenTTL)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}
