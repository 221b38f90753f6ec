package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt"

	"github.com/m04kA/SEP-BookingService/internal/api/handlers"
)

type ctxKey int

const (
	userIDKey ctxKey = iota
	tokenKey
)

const (
	msgMissingToken = "отсутствует bearer-токен"
	msgInvalidToken = "некорректный или истёкший токен"
)

// Auth middleware аутентификации по bearer-токену
// Подпись и срок действия проверяются локально; сам токен прокидывается
// дальше без изменений — им же подписываются вызовы Experiences API.
// Отсутствующий или истёкший токен даёт 401: клиент уводит пользователя
// на экран логина
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == "" {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			userID, ok := extractUserID(claims)
			if !ok {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			ctx = context.WithValue(ctx, tokenKey, tokenString)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractUserID достает ID пользователя из claims
// Поддерживаются числовой user_id и строковый/числовой sub
func extractUserID(claims jwt.MapClaims) (int64, bool) {
	if v, ok := claims["user_id"]; ok {
		if id, ok := toInt64(v); ok {
			return id, true
		}
	}
	if v, ok := claims["sub"]; ok {
		if id, ok := toInt64(v); ok {
			return id, true
		}
	}
	return 0, false
}

func toInt64(v interface{}) (int64, bool) {
	switch val := v.(type) {
	case float64:
		return int64(val), true
	case string:
		id, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return 0, false
		}
		return id, true
	default:
		return 0, false
	}
}

// GetUserID возвращает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// GetToken возвращает bearer-токен из контекста запроса
func GetToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok
}
