package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/grachmannico95/wallet-import/internal/domain"
	"github.com/grachmannico95/wallet-import/pkg/logger"
	"github.com/labstack/echo/v4"
)

const (
	UserIDHeader = "X-User-ID"
	userIDKey    = "user_id"
)

type AuthConfig struct {
	// JWTSecret turns on bearer token checks. Tokens must be HS256 and carry
	// the user id in "sub".
	JWTSecret string
	// DefaultUserID is used when tokens are off and no X-User-ID is sent.
	DefaultUserID string
}

// Auth resolves the calling user and stores it on both the echo context and
// the request context.
func Auth(cfg AuthConfig) echo.MiddlewareFunc {
	secret := []byte(cfg.JWTSecret)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var userID string

			if len(secret) > 0 {
				sub, err := subjectFromRequest(c.Request(), secret)
				if err != nil {
					return c.JSON(http.StatusUnauthorized, map[string]string{
						"error": domain.ErrUnauthorized.Error(),
					})
				}
				userID = sub
			} else {
				userID = strings.TrimSpace(c.Request().Header.Get(UserIDHeader))
				if userID == "" {
					userID = cfg.DefaultUserID
				}
			}

			c.Set(userIDKey, userID)
			ctx := logger.WithUserID(c.Request().Context(), userID)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// UserID returns the user resolved by Auth.
func UserID(c echo.Context) string {
	id, _ := c.Get(userIDKey).(string)
	return id
}

func subjectFromRequest(r *http.Request, secret []byte) (string, error) {
	header := r.Header.Get(echo.HeaderAuthorization)
	tokenString, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || tokenString == "" {
		return "", fmt.Errorf("missing bearer token")
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return "", err
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", fmt.Errorf("token has no subject")
	}
	return sub, nil
}
