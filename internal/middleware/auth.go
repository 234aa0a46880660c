package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/InQaaaaGit/countries.git/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// contextKey используется как ключ для значений в контексте
type contextKey string

const (
	// UserIDKey используется как ключ для хранения ID пользователя в контексте
	UserIDKey contextKey = "user_id"
	// CookieName имя куки с токеном пользователя
	CookieName = "user_id"
	// TokenTTL срок жизни токена и куки
	TokenTTL = 365 * 24 * time.Hour
)

// WithAuth возвращает middleware, которое выдаёт или проверяет JWT-куку пользователя.
// Анонимный пользователь получает новый ID; с ним связываются тема и избранное.
func WithAuth(secret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := userIDFromCookie(r, secret)
			if !ok {
				userID = GenerateUserID()
				token, err := CreateToken(userID, secret)
				if err != nil {
					logger.Error("Error creating user token", zap.Error(err))
					http.Error(w, "Internal server error", http.StatusInternalServerError)
					return
				}

				http.SetCookie(w, &http.Cookie{
					Name:     CookieName,
					Value:    token,
					Path:     "/",
					Expires:  time.Now().Add(TokenTTL),
					HttpOnly: true,
					Secure:   r.TLS != nil,
					SameSite: http.SameSiteLaxMode,
				})
				logger.Debug("Issued new user token", zap.String("user_id", userID))
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext возвращает ID пользователя, положенный WithAuth
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok && userID != ""
}

// GenerateUserID генерирует уникальный ID пользователя
func GenerateUserID() string {
	return uuid.NewString()
}

// CreateToken создает подписанный HS256 токен для пользователя
func CreateToken(userID, secret string) (string, error) {
	now := time.Now()
	claims := &models.UserClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken проверяет подпись и срок действия токена и возвращает ID пользователя
func ParseToken(tokenString, secret string) (string, error) {
	claims := &models.UserClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.UserID == "" {
		return "", fmt.Errorf("invalid token")
	}
	return claims.UserID, nil
}

func userIDFromCookie(r *http.Request, secret string) (string, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return "", false
	}
	userID, err := ParseToken(cookie.Value, secret)
	if err != nil {
		return "", false
	}
	return userID, true
}
