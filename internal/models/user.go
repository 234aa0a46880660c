package models

import "github.com/golang-jwt/jwt/v5"

// UserClaims представляет собой данные, хранящиеся в JWT токене куки пользователя
type UserClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}
