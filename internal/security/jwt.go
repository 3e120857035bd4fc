package security

import (
	"blob-url-server/config"
	"blob-url-server/internal/util"
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const (
	UserContextKey contextKey = "user"
)

type Claims struct {
	IsAdmin bool `json:"is_admin,omitempty"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secretKey  []byte
	adminToken string
}

func NewJWTService(cfg config.JWTConfig) *JWTService {
	return &JWTService{
		secretKey:  []byte(cfg.SecretKey),
		adminToken: cfg.AdminToken,
	}
}

func (service *JWTService) ValidateJWT(jwtTokenStr string) (*Claims, error) {
	if len(service.secretKey) == 0 {
		return nil, fmt.Errorf("секрет для проверки токенов не настроен")
	}

	var claims = &Claims{}

	jwtToken, err := jwt.ParseWithClaims(jwtTokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Header["alg"] != jwt.SigningMethodHS512.Alg() {
			return nil, fmt.Errorf("неверный способ подписи токена: %v", token.Header["alg"])
		}
		return service.secretKey, nil
	})

	if err != nil || !jwtToken.Valid {
		return nil, util.LogError("невалидный токен", err)
	}

	return claims, nil
}

func (service *JWTService) isAdminToken(token string) bool {
	return service.adminToken != "" && subtle.ConstantTimeCompare([]byte(token), []byte(service.adminToken)) == 1
}

func JWTMiddleware(jwtService *JWTService) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authorizationHeader := request.Header.Get("Authorization")
			if !strings.HasPrefix(authorizationHeader, "Bearer ") {
				util.HandleError(writer, "unauthorized", http.StatusUnauthorized)
				return
			}

			token := strings.TrimPrefix(authorizationHeader, "Bearer ")

			if jwtService.isAdminToken(token) {
				adminClaims := &Claims{
					IsAdmin:          true,
					RegisteredClaims: jwt.RegisteredClaims{Subject: "admin"},
				}
				next.ServeHTTP(writer, request.WithContext(context.WithValue(request.Context(), UserContextKey, adminClaims)))
				return
			}

			claims, err := jwtService.ValidateJWT(token)
			if err != nil {
				slog.Warn("запрос с невалидным токеном", "error", err)
				util.HandleError(writer, "невалидный токен", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(writer, request.WithContext(context.WithValue(request.Context(), UserContextKey, claims)))
		})
	}
}

func GetClaimsFromContext(ctx context.Context) (*Claims, error) {
	claims, ok := ctx.Value(UserContextKey).(*Claims)
	if !ok || claims == nil {
		return nil, fmt.Errorf("пользователь не авторизован")
	}
	return claims, nil
}
