package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cvhub/internal/models"
	"cvhub/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, login and token validation.
type AuthService struct {
	userRepo      repositories.UserRepository
	jwtSecret     []byte
	tokenDuration time.Duration
	events        EventPublisher
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string, tokenDuration time.Duration, events EventPublisher) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		jwtSecret:     []byte(jwtSecret),
		tokenDuration: tokenDuration,
		events:        events,
	}
}

// Register creates an active, non-superuser account with a bcrypt password hash.
func (s *AuthService) Register(email, password string, fullName *string) (*models.User, error) {
	email = strings.TrimSpace(email)

	existing, err := s.userRepo.GetByEmail(email)
	if err == nil && existing != nil {
		return nil, newError(ErrConflict, "A user with this email already exists", nil)
	}
	if err != nil && !errors.Is(err, repositories.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:          email,
		HashedPassword: string(hashedPassword),
		FullName:       fullName,
		IsActive:       true,
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, newError(ErrConflict, "A user with this email already exists", nil)
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	publish(s.events, EventUserRegistered, map[string]string{"user_id": user.ID, "email": user.Email})
	return user, nil
}

// Login checks the credentials and issues a signed access token.
func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(strings.TrimSpace(email))
	if err != nil {
		// same answer whether or not the email exists
		return "", newError(ErrUnauthenticated, "Incorrect email or password", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return "", newError(ErrUnauthenticated, "Incorrect email or password", nil)
	}

	if !user.IsActive {
		return "", newError(ErrInactiveUser, "Inactive user", nil)
	}

	return s.issueToken(user.ID)
}

func (s *AuthService) issueToken(userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"exp": now.Add(s.tokenDuration).Unix(),
		"iat": now.Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a JWT token, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		log.Debug().Err(err).Msg("token validation failed")
		return nil, newError(ErrUnauthenticated, "Could not validate credentials", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, newError(ErrUnauthenticated, "Could not validate credentials", nil)
	}
	if sub, _ := claims["sub"].(string); sub == "" {
		return nil, newError(ErrUnauthenticated, "Could not validate credentials", nil)
	}
	return claims, nil
}

// CurrentUser resolves the active user a token was issued to.
func (s *AuthService) CurrentUser(tokenString string) (*models.User, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(claims["sub"].(string))
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, newError(ErrUnauthenticated, "Could not validate credentials", nil)
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, newError(ErrInactiveUser, "Inactive user", nil)
	}
	return user, nil
}

// DeleteAccount removes the user and everything they own.
func (s *AuthService) DeleteAccount(userID string) error {
	if err := s.userRepo.Delete(userID); err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return newError(ErrNotFound, "User not found", nil)
		}
		return err
	}
	return nil
}
