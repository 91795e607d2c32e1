package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/devraj/portfolio-v2/backend/internal/middleware"
	"github.com/devraj/portfolio-v2/backend/internal/models"
)

// ErrAdminExists is returned when registering an email that is already taken.
var ErrAdminExists = errors.New("admin already exists")

// ErrInvalidCredentials is returned for both unknown email and wrong password
// so a caller cannot tell which of the two failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

const tokenExpiry = 7 * 24 * time.Hour

// AuthService handles admin registration, login and token validation.
type AuthService struct {
	db        *gorm.DB
	jwtSecret string
}

func NewAuthService(db *gorm.DB, jwtSecret string) *AuthService {
	return &AuthService{
		db:        db,
		jwtSecret: jwtSecret,
	}
}

// Register stores a new admin with a bcrypt hash of the password.
func (s *AuthService) Register(email, password string) (*models.Admin, error) {
	var existing models.Admin
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrAdminExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := models.Admin{
		Email:        email,
		PasswordHash: string(hashed),
	}
	if err := s.db.Create(&admin).Error; err != nil {
		return nil, err
	}

	return &admin, nil
}

// Login compares the password against the stored hash and issues a signed
// token with a fixed 7-day expiry.
func (s *AuthService) Login(email, password string) (string, error) {
	var admin models.Admin
	if err := s.db.Where("email = ?", email).First(&admin).Error; err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.generateToken(&admin)
}

// GetAdmin returns the admin for a validated token identity.
func (s *AuthService) GetAdmin(id uuid.UUID) (*models.Admin, error) {
	var admin models.Admin
	if err := s.db.First(&admin, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (s *AuthService) generateToken(admin *models.Admin) (string, error) {
	claims := jwt.MapClaims{
		"id":    admin.ID.String(),
		"email": admin.Email,
		"exp":   time.Now().Add(tokenExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken verifies signature and expiry and returns the decoded identity.
func (s *AuthService) ValidateToken(tokenString string) (*middleware.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	idStr, ok := claims["id"].(string)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	adminID, err := uuid.Parse(idStr)
	if err != nil {
		return nil, err
	}

	email, _ := claims["email"].(string)

	return &middleware.TokenClaims{
		AdminID: adminID,
		Email:   email,
	}, nil
}
