package auth

import (
	"strconv"
	"time"

	apperrors "aldosafaris/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenUseAccess  = "access"
	TokenUseRefresh = "refresh"
)

type claims struct {
	TokenUse string `json:"token_use"`
	jwt.RegisteredClaims
}

// TokenManager issues and validates the bearer credentials of the API.
// The token subject is the decimal user id; every caller identity in
// the system derives from ParseSubject on a validated token.
type TokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewTokenManager(secret string, accessTTL, refreshTTL time.Duration) *TokenManager {
	return &TokenManager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

// IssuePair returns a fresh access/refresh token pair for the user.
func (tm *TokenManager) IssuePair(userID int64) (access string, refresh string, err error) {
	access, err = tm.issue(userID, TokenUseAccess, tm.accessTTL)
	if err != nil {
		return "", "", err
	}
	refresh, err = tm.issue(userID, TokenUseRefresh, tm.refreshTTL)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (tm *TokenManager) IssueAccess(userID int64) (string, error) {
	return tm.issue(userID, TokenUseAccess, tm.accessTTL)
}

func (tm *TokenManager) issue(userID int64, use string, ttl time.Duration) (string, error) {
	now := tm.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		TokenUse: use,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})

	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return "", apperrors.Internal("Failed to sign token", err)
	}
	return signed, nil
}

// ValidateAccess verifies an access token and returns the caller's
// user id.
func (tm *TokenManager) ValidateAccess(tokenString string) (int64, error) {
	return tm.validate(tokenString, TokenUseAccess)
}

// ValidateRefresh verifies a refresh token and returns its subject.
// Access tokens are rejected here: a stolen short-lived access token
// must not mint new credentials.
func (tm *TokenManager) ValidateRefresh(tokenString string) (int64, error) {
	return tm.validate(tokenString, TokenUseRefresh)
}

func (tm *TokenManager) validate(tokenString, use string) (int64, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &claims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return tm.secret, nil
		},
		jwt.WithTimeFunc(tm.now),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !parsed.Valid {
		return 0, apperrors.Unauthorized("Invalid or expired token")
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || c.TokenUse != use {
		return 0, apperrors.Unauthorized("Invalid or expired token")
	}

	userID, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return 0, apperrors.Unauthorized("Invalid token subject")
	}
	return userID, nil
}
