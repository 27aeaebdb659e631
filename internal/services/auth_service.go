package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"portfolio/internal/models"
	"portfolio/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles admin login and session-token issuing/validation.
//
// The session token is an HMAC-signed JWT carried in an HTTP-only
// cookie. Validation checks the signature and expiry, then re-verifies
// that the referenced user still exists in the store.
type AuthService struct {
	userRepo     repositories.UserRepository
	jwtSecret    []byte
	sessionDurat time.Duration // Duration for which a session is valid
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		jwtSecret:    []byte(jwtSecret),
		sessionDurat: 24 * time.Hour, // Session valid for 24 hours
	}
}

// SessionDuration returns how long an issued session stays valid. The
// cookie max-age must match it.
func (s *AuthService) SessionDuration() time.Duration {
	return s.sessionDurat
}

// Login authenticates the admin and returns the user together with a
// signed session token. Any failure yields ErrInvalidCredentials.
func (s *AuthService) Login(username, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		// Do not reveal whether the username exists
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(s.sessionDurat).Unix(),
		"iat":      time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return user, tokenString, nil
}

// ValidateSession parses and verifies a session token, then looks the
// referenced user up in the store. A missing row invalidates the
// session even when the token itself checks out.
func (s *AuthService) ValidateSession(tokenString string) (*models.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the alg is what we expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		log.Printf("Session token validation error: %v", err)
		return nil, ErrInvalidSession
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidSession
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return nil, ErrInvalidSession
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}

	return user, nil
}

// EnsureAdmin seeds the admin account when it does not exist yet. The
// password is stored as a bcrypt hash. Called once at startup; an
// already-present username is not an error.
func (s *AuthService) EnsureAdmin(username, password string) error {
	if _, err := s.userRepo.GetByUsername(username); err == nil {
		return nil // already seeded
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.User{
		Username: username,
		Password: string(hashedPassword),
		Role:     "admin",
	}
	if err := s.userRepo.Create(admin); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	log.Printf("Seeded admin user %q", username)
	return nil
}
