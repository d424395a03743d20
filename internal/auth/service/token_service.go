package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/limitlessinfotechsolution/Limitless-sub004/internal/auth/service TokenGenerator

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const refreshTokenBytes = 64

type TokenGenerator interface {
	Generate(userID, email, role string) (string, string, time.Time, error)
	VerifySessionToken(tokenString string) (*JWTCustomClaims, error)
	HashToken(token string) string
	GetSessionTTL() time.Duration
	GetRefreshTTL() time.Duration
}

// TokenService mints the signed session token and the opaque refresh token,
// and computes the keyed hashes under which sessions are stored. The hash is
// HMAC-SHA256 rather than bcrypt: session tokens exceed bcrypt's 72-byte
// input limit, and a deterministic hash is what allows looking a session up
// by the token a client presents.
type TokenService struct {
	JWTSecret       string
	TokenHashSecret string
	SessionTTL      time.Duration
	RefreshTTL      time.Duration
}

type JWTCustomClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

func NewTokenService(jwtSecret, tokenHashSecret string, sessionMinutes, refreshMinutes int) *TokenService {
	return &TokenService{
		JWTSecret:       jwtSecret,
		TokenHashSecret: tokenHashSecret,
		SessionTTL:      time.Duration(sessionMinutes) * time.Minute,
		RefreshTTL:      time.Duration(refreshMinutes) * time.Minute,
	}
}

// Generate mints a signed session token carrying {user_id, email, role} and a
// high-entropy opaque refresh token. The refresh expiry is tracked on the
// session record, not inside the refresh token itself.
func (ts *TokenService) Generate(userID, email, role string) (string, string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ts.SessionTTL)

	claims := JWTCustomClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	sessionToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.JWTSecret))
	if err != nil {
		return "", "", time.Time{}, err
	}

	raw := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", "", time.Time{}, err
	}
	refreshToken := hex.EncodeToString(raw)

	return sessionToken, refreshToken, expiresAt, nil
}

// VerifySessionToken parses and validates the given session token string.
func (ts *TokenService) VerifySessionToken(tokenString string) (*JWTCustomClaims, error) {
	claims := &JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.JWTSecret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

func (ts *TokenService) HashToken(token string) string {
	mac := hmac.New(sha256.New, []byte(ts.TokenHashSecret))
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}

func (ts *TokenService) GetSessionTTL() time.Duration {
	return ts.SessionTTL
}

func (ts *TokenService) GetRefreshTTL() time.Duration {
	return ts.RefreshTTL
}
