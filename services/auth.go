package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/DougLewin/SuperWeirdOneBudFast/config"
	"github.com/DougLewin/SuperWeirdOneBudFast/models"
	"github.com/DougLewin/SuperWeirdOneBudFast/utils"
)

// ErrInvalidCredentials is returned for a wrong email/password pair.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService is the identity provider consumed by the dashboard. The
// controllers and TUI only see this interface.
type AuthService interface {
	SignUp(email, password, fullName string) (*models.User, string, error)
	SignIn(email, password string) (*models.User, string, error)
	// SignOut revokes a token. Best-effort: failures are logged and
	// the caller proceeds regardless.
	SignOut(token string)
	// IsRevoked reports whether a token id has been signed out.
	IsRevoked(jti string) bool
}

type authService struct {
	db    *gorm.DB
	redis *redis.Client
}

// NewAuthService builds the gorm/redis-backed identity provider.
func NewAuthService(db *gorm.DB, redisClient *redis.Client) AuthService {
	return &authService{db: db, redis: redisClient}
}

// SignUp creates an account and returns it with a fresh token.
func (s *authService) SignUp(email, password, fullName string) (*models.User, string, error) {
	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, "", fmt.Errorf("account already exists for %s", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := models.User{
		ID:           utils.GenerateID(),
		Email:        email,
		PasswordHash: string(hash),
		FullName:     fullName,
		CreatedAt:    time.Now(),
	}
	if err := s.db.Create(&user).Error; err != nil {
		config.Logger.Errorw("user creation failed", "error", err, "email", email)
		return nil, "", err
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	config.Logger.Infow("user created", "userID", user.ID)
	return &user, token, nil
}

// SignIn verifies credentials and returns the account with a token.
func (s *authService) SignIn(email, password string) (*models.User, string, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	now := time.Now()
	user.LastLogin = &now
	if err := s.db.Model(&user).Update("last_login", now).Error; err != nil {
		config.Logger.Errorw("failed to record last login", "error", err, "userID", user.ID)
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	return &user, token, nil
}

// SignOut blacklists the token id in Redis until the token would have
// expired anyway.
func (s *authService) SignOut(token string) {
	claims, err := utils.ParseToken(token)
	if err != nil {
		config.Logger.Infow("sign-out with unparseable token", "error", err)
		return
	}

	err = s.redis.Set(context.Background(), revocationKey(claims.ID), 1, utils.TokenTTL).Err()
	if err != nil {
		config.Logger.Errorw("token revocation failed", "error", err, "userID", claims.UserID)
	}
}

// IsRevoked checks the Redis blacklist. A Redis failure is treated as
// not revoked; the token signature check has already passed.
func (s *authService) IsRevoked(jti string) bool {
	n, err := s.redis.Exists(context.Background(), revocationKey(jti)).Result()
	if err != nil {
		config.Logger.Errorw("revocation lookup failed", "error", err)
		return false
	}
	return n > 0
}

func revocationKey(jti string) string {
	return "revoked:" + jti
}
