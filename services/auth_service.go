package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gamebattles-system/models"
	"gamebattles-system/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Session tokens live for a week, matching the cookie max-age.
const tokenTTL = 7 * 24 * time.Hour

const bcryptCost = 10

// RegisterRequest is the signup payload.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	TeamName string `json:"teamName"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthService handles registration, credential checks and session tokens.
type AuthService struct {
	users  repository.UserStore
	secret []byte
}

func NewAuthService(users repository.UserStore, jwtSecret string) *AuthService {
	return &AuthService{users: users, secret: []byte(jwtSecret)}
}

// Register creates a new user with a hashed password and returns the user
// together with a fresh session token.
func (s *AuthService) Register(req RegisterRequest) (*models.User, string, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return nil, "", fmt.Errorf("%w: missing required fields", models.ErrValidation)
	}
	if len(req.Password) < 6 {
		return nil, "", fmt.Errorf("%w: password must be at least 6 characters", models.ErrValidation)
	}

	if _, err := s.users.GetByEmail(req.Email); err == nil {
		return nil, "", models.ErrEmailTaken
	} else if !errors.Is(err, models.ErrUserNotFound) {
		return nil, "", err
	}
	if _, err := s.users.GetByUsername(req.Username); err == nil {
		return nil, "", models.ErrUsernameTaken
	} else if !errors.Is(err, models.ErrUserNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		ID:        uuid.NewString(),
		Username:  req.Username,
		Email:     req.Email,
		Password:  string(hash),
		TeamName:  req.TeamName,
		Wins:      0,
		Losses:    0,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.users.Create(user); err != nil {
		return nil, "", err
	}

	token, err := s.GenerateToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	log.Printf("✅ Registered user %s (%s)", user.Username, user.Email)
	return user, token, nil
}

// Login verifies the credentials and returns the user with a session token.
func (s *AuthService) Login(req LoginRequest) (*models.User, string, error) {
	if req.Email == "" || req.Password == "" {
		return nil, "", fmt.Errorf("%w: missing email or password", models.ErrValidation)
	}

	user, err := s.users.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, "", models.ErrInvalidCredentials
		}
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, "", models.ErrInvalidCredentials
	}

	token, err := s.GenerateToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// GetUser returns the user behind an authenticated session.
func (s *AuthService) GetUser(userID string) (*models.User, error) {
	return s.users.GetByID(userID)
}

// GenerateToken signs a session token carrying the user id.
func (s *AuthService) GenerateToken(userID string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken validates a session token and returns the user id it carries.
func (s *AuthService) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", models.ErrInvalidToken
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", models.ErrInvalidToken
	}
	return claims.Subject, nil
}
