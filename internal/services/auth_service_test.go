package services_test

import (
	"encoding/base64"
	"fmt"
	"io"
	"log"
	"os"
	"testing"
	"time"

	"portfolio/internal/models"
	"portfolio/internal/repositories"
	"portfolio/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// TestMain is used to setup test environment
func TestMain(m *testing.M) {
	// Suppress logging during tests for cleaner output
	log.SetOutput(io.Discard)
	code := m.Run()
	os.Exit(code)
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepository)
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       "user-123",
		Username: "admin",
		Password: string(hashedPassword),
		Role:     "admin",
	}

	// Test successful login
	mockRepo.On("GetByUsername", user.Username).Return(user, nil).Once()
	loggedIn, token, err := authService.Login("admin", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.Equal(t, "admin", loggedIn.Role)

	// The session token must carry the user identity and be signed with our secret
	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(testJWTSecret), nil
	})
	assert.NoError(t, err)
	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, user.ID, claims["user_id"])
	assert.Equal(t, user.Username, claims["username"])
	mockRepo.AssertExpectations(t)

	// Test invalid credentials (wrong password)
	mockRepo.On("GetByUsername", user.Username).Return(user, nil).Once()
	_, _, err = authService.Login("admin", "wrongpassword")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)

	// Test invalid credentials (user not found)
	mockRepo.On("GetByUsername", "nobody").Return(nil, fmt.Errorf("user with username nobody: %w", repositories.ErrNotFound)).Once()
	_, _, err = authService.Login("nobody", "password123")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateSession(t *testing.T) {
	mockRepo := new(MockUserRepository)
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	user := &models.User{ID: "user-123", Username: "admin", Role: "admin"}

	signedToken := func(userID string, exp time.Time) string {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id":  userID,
			"username": "admin",
			"exp":      exp.Unix(),
		})
		tokenString, _ := token.SignedString([]byte(testJWTSecret))
		return tokenString
	}

	// Test valid session
	mockRepo.On("GetByID", "user-123").Return(user, nil).Once()
	got, err := authService.ValidateSession(signedToken("user-123", time.Now().Add(time.Hour)))
	assert.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	mockRepo.AssertExpectations(t)

	// An unsigned "<userId>:<timestamp>" token must not authenticate
	forged := base64.StdEncoding.EncodeToString([]byte(fmt.Sprintf("user-123:%d", time.Now().UnixMilli())))
	_, err = authService.ValidateSession(forged)
	assert.ErrorIs(t, err, services.ErrInvalidSession)

	// Test malformed token
	_, err = authService.ValidateSession("not.a.token")
	assert.ErrorIs(t, err, services.ErrInvalidSession)

	// Test expired token
	_, err = authService.ValidateSession(signedToken("user-123", time.Now().Add(-time.Hour)))
	assert.ErrorIs(t, err, services.ErrInvalidSession)

	// Test valid token whose user row no longer exists
	mockRepo.On("GetByID", "ghost").Return(nil, fmt.Errorf("user with ID ghost: %w", repositories.ErrNotFound)).Once()
	_, err = authService.ValidateSession(signedToken("ghost", time.Now().Add(time.Hour)))
	assert.ErrorIs(t, err, services.ErrInvalidSession)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_EnsureAdmin(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	// Seeds the admin when the username does not exist
	mockRepo.On("GetByUsername", "admin").Return(nil, fmt.Errorf("user with username admin: %w", repositories.ErrNotFound)).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		created := args.Get(0).(*models.User)
		assert.Equal(t, "admin", created.Username)
		assert.Equal(t, "admin", created.Role)
		// Password must be stored hashed, never in the clear
		assert.NotEqual(t, "hunter22", created.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("hunter22")))
	}).Return(nil).Once()

	err := authService.EnsureAdmin("admin", "hunter22")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// A second run is a no-op
	mockRepo.On("GetByUsername", "admin").Return(&models.User{ID: "user-123", Username: "admin"}, nil).Once()
	err = authService.EnsureAdmin("admin", "hunter22")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
