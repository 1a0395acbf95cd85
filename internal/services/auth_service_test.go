package services_test

import (
	"fmt"
	"testing"
	"time"

	"gbstore/internal/models"
	"gbstore/internal/repositories"
	"gbstore/internal/services"

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

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
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

const testJWTSecret = "test_jwt_secret"

func adminUser() *models.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	return &models.User{
		ID:       "admin-1",
		Email:    "admin@gbstore.com",
		Role:     models.RoleAdmin,
		Password: string(hash),
	}
}

func newAuthFixture() (*services.AuthService, *MockUserRepository, *repositories.MemorySessionStore) {
	mockRepo := new(MockUserRepository)
	store := repositories.NewMemorySessionStore()
	return services.NewAuthService(mockRepo, store, testJWTSecret), mockRepo, store
}

func TestAuthService_Login(t *testing.T) {
	authService, mockRepo, _ := newAuthFixture()
	session := "sess-1"

	user := adminUser()
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()

	token, err := authService.Login(session, "admin@gbstore.com", "admin123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Token carries identity and role claims
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
	assert.Equal(t, user.Email, claims["email"])
	assert.Equal(t, "admin", claims["role"])

	// The session now holds the user, sans password
	sessionUser := authService.SessionUser(session)
	assert.NotNil(t, sessionUser)
	assert.Equal(t, models.RoleAdmin, sessionUser.Role)
	assert.True(t, authService.IsAdmin(session))

	mockRepo.AssertExpectations(t)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	authService, mockRepo, _ := newAuthFixture()
	session := "sess-1"

	user := adminUser()
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()

	token, err := authService.Login(session, "admin@gbstore.com", "wrong")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
	assert.Empty(t, token)

	// A failed login leaves session state untouched
	assert.Nil(t, authService.SessionUser(session))
	assert.False(t, authService.IsAdmin(session))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_LoginUnknownEmail(t *testing.T) {
	authService, mockRepo, _ := newAuthFixture()

	mockRepo.On("GetByEmail", "nobody@example.com").Return(nil, fmt.Errorf("user with email nobody@example.com not found")).Once()

	_, err := authService.Login("sess-1", "nobody@example.com", "whatever")
	assert.Error(t, err)
	// The message stays generic, never revealing whether the account exists
	assert.Contains(t, err.Error(), "invalid credentials")
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Logout(t *testing.T) {
	authService, mockRepo, _ := newAuthFixture()
	session := "sess-1"

	user := adminUser()
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()

	_, err := authService.Login(session, "admin@gbstore.com", "admin123")
	assert.NoError(t, err)
	assert.NotNil(t, authService.SessionUser(session))

	assert.NoError(t, authService.Logout(session))
	assert.Nil(t, authService.SessionUser(session))
	assert.False(t, authService.IsAdmin(session))
}

func TestAuthService_CorruptSessionSnapshotTreatedAsNoSession(t *testing.T) {
	authService, _, store := newAuthFixture()
	session := "sess-1"

	assert.NoError(t, store.Put("user:"+session, []byte("{not json")))

	assert.Nil(t, authService.SessionUser(session))
	assert.False(t, authService.IsAdmin(session))

	// The corrupted snapshot is discarded
	_, ok, err := store.Get("user:" + session)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestAuthService_ValidateToken(t *testing.T) {
	authService, _, _ := newAuthFixture()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "admin-1",
		"email":   "admin@gbstore.com",
		"role":    "admin",
		"exp":     jwt.TimeFunc().Add(time.Hour).Unix(),
	})
	validTokenString, _ := token.SignedString([]byte(testJWTSecret))

	claims, err := authService.ValidateToken(validTokenString)
	assert.NoError(t, err)
	assert.Equal(t, "admin-1", claims["user_id"])
	assert.Equal(t, "admin", claims["role"])

	// Garbage token
	_, err = authService.ValidateToken("invalid.token.string")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")

	// Expired token
	expiredToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "admin-1",
		"exp":     jwt.TimeFunc().Add(-time.Hour).Unix(),
	})
	expiredTokenString, _ := expiredToken.SignedString([]byte(testJWTSecret))
	_, err = authService.ValidateToken(expiredTokenString)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")
}
