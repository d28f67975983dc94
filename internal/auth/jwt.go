package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/yasinhessnawi1/sharecloud/internal/config"
	"github.com/yasinhessnawi1/sharecloud/internal/constants"
	"github.com/yasinhessnawi1/sharecloud/internal/models"
	"github.com/yasinhessnawi1/sharecloud/internal/utils"
)

// JWT errors
var (
	ErrInvalidSigningMethod = errors.New("invalid signing method")
)

// CustomClaims represents the claims in a JWT token.
// Tokens are issued by the account service; this service only reads them.
type CustomClaims struct {
	UserID string   `json:"user_id"`
	Groups []string `json:"groups,omitempty"`
	jwt.RegisteredClaims
}

// User returns the request identity described by the claims
func (c *CustomClaims) User() *models.User {
	return &models.User{
		ID:     c.UserID,
		Groups: utils.NormalizeList(c.Groups),
	}
}

// JWTService provides JWT token generation and validation functionality
type JWTService struct {
	Config *config.JWTSettings
}

// NewJWTService creates a new JWTService instance
func NewJWTService(config *config.JWTSettings) *JWTService {
	return &JWTService{
		Config: config,
	}
}

// GetConfig returns the settings in use, falling back to the defaults
func (s *JWTService) GetConfig() *config.JWTSettings {
	if s.Config == nil {
		return &config.JWTSettings{
			Expiry: constants.DefaultJWTExpiry,
			Issuer: constants.DefaultJWTIssuer,
		}
	}
	return s.Config
}

// GenerateToken signs an access token for a user. The server itself never
// issues tokens to clients; this is used by the token command and tests.
func (s *JWTService) GenerateToken(userID string, groups []string) (string, string, error) {
	cfg := s.GetConfig()

	// Generate a unique token ID
	jwtID := uuid.New().String()

	now := time.Now()
	claims := CustomClaims{
		UserID: userID,
		Groups: groups,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.Expiry)),
			NotBefore: jwt.NewNumericDate(now),
			ID:        jwtID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, jwtID, nil
}

// ValidateToken validates a JWT token and returns its claims if valid
func (s *JWTService) ValidateToken(tokenString string) (*CustomClaims, error) {
	cfg := s.GetConfig()

	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSigningMethod
		}
		return []byte(cfg.Secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, utils.NewExpiredTokenError()
		}
		return nil, utils.NewInvalidTokenError()
	}

	if !token.Valid {
		return nil, utils.NewInvalidTokenError()
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok {
		return nil, utils.NewInvalidTokenError()
	}

	// Tokens from another issuer are not ours to trust
	if cfg.Issuer != "" && claims.Issuer != cfg.Issuer {
		return nil, utils.NewInvalidTokenError()
	}

	if claims.UserID == "" {
		return nil, utils.NewInvalidTokenError()
	}

	return claims, nil
}
