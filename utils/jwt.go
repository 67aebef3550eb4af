package utils

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

func signingMethod() jwt.SigningMethod {
	alg := os.Getenv("JWT_ALGORITHM")
	if alg == "" {
		alg = "HS256"
	}
	if method := jwt.GetSigningMethod(alg); method != nil {
		if _, ok := method.(*jwt.SigningMethodHMAC); ok {
			return method
		}
	}
	return jwt.SigningMethodHS256
}

func defaultExpiry() time.Duration {
	if minutes, err := strconv.Atoi(os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES")); err == nil && minutes > 0 {
		return time.Duration(minutes) * time.Minute
	}
	return 30 * time.Minute
}

// GenerateJWT issues a signed token carrying the user id and role. A
// non-positive ttl falls back to the configured default expiry.
func GenerateJWT(userID uint, role string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = defaultExpiry()
	}
	token := jwt.NewWithClaims(signingMethod(), jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(ttl).Unix(),
	})
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// ParseJWT validates the signature and expiry and returns the embedded user
// id and role. Any failure comes back as ErrInvalidToken.
func ParseJWT(tokenString string) (uint, string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return 0, "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", ErrInvalidToken
	}
	id, ok := claims["user_id"].(float64)
	if !ok || id <= 0 {
		return 0, "", ErrInvalidToken
	}
	role, _ := claims["role"].(string)
	return uint(id), role, nil
}
