package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"hospital-booking-server/internal/config"
	"hospital-booking-server/internal/models"
	"hospital-booking-server/internal/repository"
	"hospital-booking-server/internal/utils"
)

// SessionCookie is the name of the cookie that carries the signed session token.
const SessionCookie = "session"

const (
	identityKey     = "identity"
	sessionErrorKey = "session_error"
)

// Identity is the authenticated user attached to a request.
type Identity struct {
	UserID    uint   `json:"id"`
	Username  string `json:"username"`
	UserType  string `json:"usertype"`
	Email     string `json:"email"`
	SessionID string `json:"-"`
}

// IsDoctor reports whether the identity may see every booking.
func (i *Identity) IsDoctor() bool {
	return i.UserType == models.UserTypeDoctor
}

// SessionLoader resolves the session cookie into an Identity.
type SessionLoader struct {
	Cfg      *config.Config
	Sessions repository.SessionRepository
	Users    repository.UserRepository
	Log      zerolog.Logger
	Now      func() time.Time
}

// NewSessionLoader creates a SessionLoader.
func NewSessionLoader(cfg *config.Config, repos *repository.Repositories, logger zerolog.Logger) *SessionLoader {
	return &SessionLoader{
		Cfg:      cfg,
		Sessions: repos.Sessions,
		Users:    repos.Users,
		Log:      logger,
		Now:      time.Now,
	}
}

// resolve returns (nil, nil) when the request carries no usable session.
// An error means the stores could not be consulted.
func (l *SessionLoader) resolve(ctx context.Context, token string) (*Identity, error) {
	claims, err := utils.ValidateSession(token, l.Cfg.SecretKey)
	if err != nil {
		return nil, nil
	}
	userID, err := claims.UserID()
	if err != nil {
		return nil, nil
	}

	session, err := l.Sessions.Find(ctx, claims.SessionID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if session.UserID != userID || !session.Active(l.Now()) {
		return nil, nil
	}

	user, err := l.Users.Find(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &Identity{
		UserID:    user.ID,
		Username:  user.Username,
		UserType:  user.UserType,
		Email:     user.Email,
		SessionID: session.ID,
	}, nil
}

// Load attaches the Identity to the context when a valid session cookie is present.
// It never rejects a request.
func (l *SessionLoader) Load() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.Next()
			return
		}

		identity, err := l.resolve(c.Request.Context(), token)
		if err != nil {
			l.Log.Error().Err(err).Msg("failed to load session")
			c.Set(sessionErrorKey, err)
		}
		if identity != nil {
			c.Set(identityKey, identity)
		}
		c.Next()
	}
}

// RequireSession redirects to the login page, keeping the requested URL in
// ?next=, when Load did not attach an Identity. A session that could not be
// checked because a store failed is a server error, not a redirect.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := IdentityFromContext(c); !ok {
			if _, failed := c.Get(sessionErrorKey); failed {
				utils.InternalServerError(c, "Failed to load session")
				c.Abort()
				return
			}
			c.Redirect(http.StatusFound, LoginURL(c.Request.URL.RequestURI()))
			c.Abort()
			return
		}
		c.Next()
	}
}

// LoginURL builds the login location that returns to next after authentication.
func LoginURL(next string) string {
	return "/login?" + url.Values{"next": {next}}.Encode()
}

// IdentityFromContext returns the authenticated user of the request.
func IdentityFromContext(c *gin.Context) (*Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}
	identity, ok := v.(*Identity)
	return identity, ok
}
