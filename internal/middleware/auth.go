package middleware

import (
	"net/http"

	"github.com/anujthakur2004/Fashion-Hub/internal/model"
	"github.com/anujthakur2004/Fashion-Hub/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SessionCookie carries the signed login token; VisitorCookie carries
// the anonymous session id issued before login.
const (
	SessionCookie = "fh_session"
	VisitorCookie = "fh_sid"
)

const (
	contextUser      = "user"
	contextSessionID = "session_id"
)

// Session resolves the caller's identity and session id. A valid signed
// token yields an authenticated user and their session id; otherwise
// the visitor gets (or keeps) an anonymous session id so the cart works
// before login.
func Session(secret string, userRepo repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if user, sid, ok := authenticated(c, secret, userRepo); ok {
				c.Set(contextUser, user)
				c.Set(contextSessionID, sid)
				return next(c)
			}

			c.Set(contextSessionID, visitorSessionID(c))
			return next(c)
		}
	}
}

func authenticated(c echo.Context, secret string, userRepo repository.UserRepository) (*model.User, string, bool) {
	cookie, err := c.Cookie(SessionCookie)
	if err != nil || cookie.Value == "" {
		return nil, "", false
	}

	token, err := jwt.Parse(cookie.Value, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, "", false
	}
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, "", false
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return nil, "", false
	}

	user, err := userRepo.FindByID(c.Request().Context(), uint(userID))
	if err != nil {
		return nil, "", false
	}
	return user, sid, true
}

func visitorSessionID(c echo.Context) string {
	if cookie, err := c.Cookie(VisitorCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	sid := uuid.NewString()
	c.SetCookie(&http.Cookie{
		Name:     VisitorCookie,
		Value:    sid,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sid
}

// RequireUser rejects requests without an authenticated user.
func RequireUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := CurrentUser(c); !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			return next(c)
		}
	}
}

func CurrentUser(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(contextUser).(*model.User)
	return user, ok
}

func SessionID(c echo.Context) string {
	sid, _ := c.Get(contextSessionID).(string)
	return sid
}
