package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/yasinhessnawi1/sharecloud/internal/auth"
	"github.com/yasinhessnawi1/sharecloud/internal/config"
	"github.com/yasinhessnawi1/sharecloud/internal/constants"
	"github.com/yasinhessnawi1/sharecloud/internal/utils"
)

func testJWTConfig() *config.JWTSettings {
	return &config.JWTSettings{
		Secret: "test-secret",
		Expiry: 15 * time.Minute,
		Issuer: "test-issuer",
	}
}

func TestNewJWTService(t *testing.T) {
	cfg := testJWTConfig()

	service := auth.NewJWTService(cfg)

	if service == nil {
		t.Fatal("Expected service to be created, got nil")
	}
	if service.Config != cfg {
		t.Errorf("Expected Config to be %v, got %v", cfg, service.Config)
	}
}

func TestGetConfig(t *testing.T) {
	// Test with nil config (should use defaults)
	service := &auth.JWTService{Config: nil}
	cfg := service.GetConfig()

	if cfg.Expiry != constants.DefaultJWTExpiry {
		t.Errorf("Expected default Expiry to be %v, got %v", constants.DefaultJWTExpiry, cfg.Expiry)
	}
	if cfg.Issuer != constants.DefaultJWTIssuer {
		t.Errorf("Expected default Issuer to be %q, got %q", constants.DefaultJWTIssuer, cfg.Issuer)
	}

	provided := testJWTConfig()
	service = auth.NewJWTService(provided)
	if service.GetConfig() != provided {
		t.Error("Expected provided config to be returned")
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	service := auth.NewJWTService(testJWTConfig())

	token, jwtID, err := service.GenerateToken("alice", []string{"admin", "staff"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if token == "" || jwtID == "" {
		t.Fatal("Expected token and token ID to be set")
	}

	claims, err := service.ValidateToken(token)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if claims.UserID != "alice" {
		t.Errorf("Expected user alice, got %q", claims.UserID)
	}
	if claims.ID != jwtID {
		t.Errorf("Expected token ID %q, got %q", jwtID, claims.ID)
	}

	user := claims.User()
	if !user.InGroup("admin") || !user.InGroup("staff") {
		t.Errorf("Expected groups admin and staff, got %v", user.Groups)
	}
}

func TestValidateTokenExpired(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Expiry = -time.Minute
	service := auth.NewJWTService(cfg)

	token, _, err := service.GenerateToken("alice", nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	_, err = service.ValidateToken(token)
	if err == nil {
		t.Fatal("Expected error for expired token")
	}
	if utils.OCSStatusCode(err) != constants.OCSStatusUnauthorised {
		t.Errorf("Expected unauthorised status code, got %d", utils.OCSStatusCode(err))
	}
	if utils.ErrorCode(utils.ParseError(err)) != constants.CodeTokenExpired {
		t.Errorf("Expected token_expired, got %s", utils.ErrorCode(utils.ParseError(err)))
	}
}

func TestValidateTokenInvalid(t *testing.T) {
	service := auth.NewJWTService(testJWTConfig())

	otherIssuer := testJWTConfig()
	otherIssuer.Issuer = "someone-else"
	foreign, _, _ := auth.NewJWTService(otherIssuer).GenerateToken("alice", nil)

	otherSecret := testJWTConfig()
	otherSecret.Secret = "another-secret"
	forged, _, _ := auth.NewJWTService(otherSecret).GenerateToken("alice", nil)

	noneToken, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"user_id": "alice",
		"iss":     "test-issuer",
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)

	emptyUser, _, _ := service.GenerateToken("", nil)

	tests := map[string]string{
		"malformed":      "not-a-token",
		"wrong issuer":   foreign,
		"wrong secret":   forged,
		"none algorithm": noneToken,
		"missing user":   emptyUser,
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			claims, err := service.ValidateToken(token)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if claims != nil {
				t.Errorf("Expected nil claims, got %v", claims)
			}
			if utils.ErrorCode(utils.ParseError(err)) != constants.CodeTokenInvalid {
				t.Errorf("Expected token_invalid, got %s", utils.ErrorCode(utils.ParseError(err)))
			}
		})
	}
}
