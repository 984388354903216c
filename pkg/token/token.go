// pkg/token/token.go
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin  = "admin"
	RolePlayer = "player"
)

// Claims is the session payload carried in the auth cookies. PlayerID is
// zero for admin sessions.
type Claims struct {
	PlayerID uint   `json:"player_id,omitempty"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateSession signs an HS256 session token for the given role.
func GenerateSession(playerID uint, role string, secretKey string, ttl time.Duration) (string, error) {
	if secretKey == "" {
		return "", errors.New("session secret key is empty")
	}
	claims := &Claims{
		PlayerID: playerID,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "clubhouse",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

// ValidateSession parses, validates, and returns claims from a session token.
func ValidateSession(tokenString string, secretKey string) (*Claims, error) {
	if tokenString == "" {
		return nil, errors.New("token string is empty")
	}
	if secretKey == "" {
		return nil, errors.New("session secret key is empty")
	}

	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.New("session has expired")
		}
		if errors.Is(err, jwt.ErrSignatureInvalid) {
			return nil, errors.New("session signature is invalid")
		}
		return nil, fmt.Errorf("could not parse session token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("session token is invalid")
	}

	if claims.Role != RoleAdmin && claims.Role != RolePlayer {
		return nil, errors.New("role claim is missing or unknown")
	}
	if claims.Role == RolePlayer && claims.PlayerID == 0 {
		return nil, errors.New("player_id claim is missing or zero")
	}

	return claims, nil
}
