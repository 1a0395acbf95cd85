package services

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"gbstore/internal/models"
	"gbstore/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// userKeyPrefix namespaces logged-in user snapshots inside the session store.
const userKeyPrefix = "user:"

// AuthService validates credentials against the fixed account table and
// tracks the logged-in user per session. Successful logins are issued a
// signed token and persisted (sans password) to the session store.
type AuthService struct {
	userRepo   repositories.UserRepository
	sessions   repositories.SessionStore
	jwtSecret  []byte
	tokenDurat time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, sessions repositories.SessionStore, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		sessions:   sessions,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour,
	}
}

func userKey(sessionID string) string {
	return userKeyPrefix + sessionID
}

// Login authenticates a user and returns a signed JWT on success. An
// unknown email and a wrong password both fail the same way, and failure
// leaves the session state untouched.
func (s *AuthService) Login(sessionID, email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		// Do not reveal whether the email exists
		return "", fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	snapshot := models.SessionUser{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
	}
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("failed to serialize session user: %w", err)
	}
	if err := s.sessions.Put(userKey(sessionID), raw); err != nil {
		return "", fmt.Errorf("failed to persist session user: %w", err)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    string(user.Role),
		"exp":     time.Now().Add(s.tokenDurat).Unix(),
		"iat":     time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return tokenString, nil
}

// Logout clears the session's logged-in user.
func (s *AuthService) Logout(sessionID string) error {
	if err := s.sessions.Delete(userKey(sessionID)); err != nil {
		return fmt.Errorf("failed to clear session user: %w", err)
	}
	return nil
}

// SessionUser returns the logged-in user for the session, or nil when there
// is none. A corrupted persisted snapshot is treated as no session and
// discarded silently.
func (s *AuthService) SessionUser(sessionID string) *models.SessionUser {
	raw, ok, err := s.sessions.Get(userKey(sessionID))
	if err != nil || !ok {
		return nil
	}

	var user models.SessionUser
	if err := json.Unmarshal(raw, &user); err != nil {
		log.Printf("Discarding unparseable user snapshot for session %s: %v", sessionID, err)
		if delErr := s.sessions.Delete(userKey(sessionID)); delErr != nil {
			log.Printf("Failed to delete corrupted user snapshot for session %s: %v", sessionID, delErr)
		}
		return nil
	}
	return &user
}

// IsAdmin reports whether the session's logged-in user has the admin role.
func (s *AuthService) IsAdmin(sessionID string) bool {
	user := s.SessionUser(sessionID)
	return user != nil && user.Role == models.RoleAdmin
}

// ValidateToken parses and validates a JWT, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
