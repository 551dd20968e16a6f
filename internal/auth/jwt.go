package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/noor-saray-dubai/admin-panel-sub002/internal/domain"
)

// JWTManager issues and validates HS256 access tokens and generates hashed
// refresh tokens. Access tokens carry the full Identity (role plus collection
// grants), so the frontend can shape its UI without an extra round trip; the
// database record stays authoritative for every write check.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
}

// NewJWTManager creates a JWT manager. secret must be at least 32 characters;
// config validation enforces that before the manager is ever constructed.
func NewJWTManager(secret string, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
	}
}

// accessClaims is the token payload: standard claims plus the role and the
// collection grants of the subject at issue time.
type accessClaims struct {
	jwt.RegisteredClaims
	Role   string   `json:"role,omitempty"`
	Grants []string `json:"grants,omitempty"`
}

// GenerateAccessToken signs an access token for the identity. The user ID
// becomes the subject; role and grants ride along as custom claims.
func (m *JWTManager) GenerateAccessToken(id Identity) (string, error) {
	grants := make([]string, 0, len(id.Collections))
	for _, c := range id.Collections {
		grants = append(grants, c.String())
	}

	now := time.Now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID.String(),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role:   id.Role.String(),
		Grants: grants,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateAccessToken parses and verifies a token and reconstructs the
// Identity it was issued for. Expiry is checked by the parser; issuer and
// subject are checked here.
func (m *JWTManager) ValidateAccessToken(tokenString string) (Identity, error) {
	if tokenString == "" {
		return Identity{}, fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return Identity{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return Identity{}, fmt.Errorf("invalid token claims")
	}
	if claims.Issuer != m.issuer {
		return Identity{}, fmt.Errorf("invalid issuer: expected %s, got %s", m.issuer, claims.Issuer)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Identity{}, fmt.Errorf("invalid subject UUID: %w", err)
	}

	collections := make([]domain.Collection, 0, len(claims.Grants))
	for _, g := range claims.Grants {
		c := domain.Collection(g)
		if c.IsValid() {
			collections = append(collections, c)
		}
	}

	return Identity{
		UserID:      userID,
		Role:        domain.Role(claims.Role),
		Collections: collections,
	}, nil
}

// GenerateRefreshToken returns a random refresh token in two forms: the raw
// value for the client and its SHA-256 hex hash for the database. Only the
// hash is ever stored, so a leaked token table cannot be replayed.
func (m *JWTManager) GenerateRefreshToken() (raw string, hash string, err error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", "", fmt.Errorf("generate random bytes: %w", err)
	}
	raw = base64.RawURLEncoding.EncodeToString(b)
	return raw, HashToken(raw), nil
}

// HashToken hashes a raw refresh token the way the token repository stores it.
func HashToken(raw string) string {
	h := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(h[:])
}
