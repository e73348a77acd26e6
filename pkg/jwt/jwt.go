package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

// TimeNow is swapped out in tests to simulate token expiry.
var TimeNow = time.Now

var ErrTokenNotValid error = errors.New("token is not valid")

// TokenExpiry is the lifetime of every issued token.
const TokenExpiry = 12 * time.Hour

// TokenInfo carries the identity claims embedded in a token. The password
// hash and the todo list are deliberately not part of it.
type TokenInfo struct {
	Subject   string
	Username  string
	FirstName string
	LastName  string
	Admin     bool
}

type JWTService struct {
	secret []byte
}

func NewJWTService(jwtSecret []byte) *JWTService {
	return &JWTService{
		secret: jwtSecret,
	}
}

func (gen *JWTService) Generate(data TokenInfo) *jwt.Token {
	now := TimeNow()
	claims := jwt.MapClaims{
		"sub":       data.Subject,
		"iat":       now.Unix(),
		"exp":       now.Add(TokenExpiry).Unix(),
		"username":  data.Username,
		"firstName": data.FirstName,
		"lastName":  data.LastName,
		"admin":     data.Admin,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token
}

func (gen *JWTService) Sign(token *jwt.Token) (string, error) {
	tokenStr, err := token.SignedString(gen.secret)
	if err != nil {
		return "", fmt.Errorf("get signing string: %w", err)
	}
	return tokenStr, nil
}

// Validate parses and verifies a signed token. A malformed token, a bad
// signature and an expired token all come back wrapping ErrTokenNotValid so
// callers cannot distinguish the failure modes.
func (gen *JWTService) Validate(token string) (jwt.MapClaims, error) {
	jwtToken, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return gen.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("jwt parse: %w", ErrTokenNotValid)
	}

	if !jwtToken.Valid {
		return nil, ErrTokenNotValid
	}

	claims, ok := jwtToken.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenNotValid
	}

	if expVal, ok := claims["exp"].(float64); ok {
		if int64(expVal) < TimeNow().Unix() {
			return nil, fmt.Errorf("token expired at %v: %w", time.Unix(int64(expVal), 0), ErrTokenNotValid)
		}
	}

	return claims, nil
}
