package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"hospital-booking-server/internal/config"
	"hospital-booking-server/internal/middleware"
	"hospital-booking-server/internal/models"
	"hospital-booking-server/internal/repository"
	"hospital-booking-server/internal/utils"
)

// AuthHandler handles signup, login and logout.
type AuthHandler struct {
	Users    repository.UserRepository
	Sessions repository.SessionRepository
	Cfg      *config.Config
	Log      zerolog.Logger
	Now      func() time.Time
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(repos *repository.Repositories, cfg *config.Config, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		Users:    repos.Users,
		Sessions: repos.Sessions,
		Cfg:      cfg,
		Log:      logger,
		Now:      time.Now,
	}
}

// SignupRequest represents the signup form. Only the login credentials are
// mandatory; username and usertype are stored as given.
type SignupRequest struct {
	Username string `form:"username" json:"username"`
	UserType string `form:"usertype" json:"usertype"`
	Email    string `form:"email" json:"email" validate:"required"`
	Password string `form:"password" json:"password" validate:"required"`
}

// SignupForm describes the signup form.
func (h *AuthHandler) SignupForm(c *gin.Context) {
	utils.Success(c, "Create an account", gin.H{
		"usertypes": []string{models.UserTypeDoctor, "Patient"},
	})
}

// Signup handles user registration.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if _, err := h.Users.FindByEmail(c.Request.Context(), req.Email); err == nil {
		utils.Flash(c, http.StatusBadRequest, utils.CategoryWarning, "Email Already Exists", nil)
		return
	} else if !errors.Is(err, repository.ErrNotFound) {
		h.Log.Error().Err(err).Msg("signup lookup failed")
		utils.InternalServerError(c, "Database error")
		return
	}

	user := models.User{
		Username: req.Username,
		UserType: req.UserType,
		Email:    req.Email,
	}
	if err := user.SetPassword(req.Password); err != nil {
		utils.InternalServerError(c, "Failed to hash password: "+err.Error())
		return
	}

	if err := h.Users.Insert(c.Request.Context(), &user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			utils.Flash(c, http.StatusBadRequest, utils.CategoryWarning, "Email Already Exists", nil)
			return
		}
		h.Log.Error().Err(err).Msg("signup insert failed")
		utils.InternalServerError(c, "Failed to create user")
		return
	}

	h.Log.Info().Uint("user_id", user.ID).Str("usertype", user.UserType).Msg("user signed up")
	utils.SeeOther(c, "/login")
}

// LoginRequest represents the login form.
type LoginRequest struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

// LoginForm describes the login form and where a successful login returns to.
func (h *AuthHandler) LoginForm(c *gin.Context) {
	utils.Success(c, "Login", gin.H{"next": c.Query("next")})
}

// Login checks credentials and opens a session. Failures never say which
// field was wrong.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	user, err := h.Users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		h.Log.Error().Err(err).Msg("login lookup failed")
		utils.InternalServerError(c, "Database error")
		return
	}
	if user == nil || !user.CheckPassword(req.Password) {
		utils.Flash(c, http.StatusUnauthorized, utils.CategoryDanger, "Invalid Credentials", nil)
		return
	}

	now := h.Now()
	session := models.Session{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		ExpiresAt: now.Add(time.Duration(h.Cfg.SessionTTLHours) * time.Hour),
		CreatedAt: now,
	}
	if err := h.Sessions.Insert(c.Request.Context(), &session); err != nil {
		h.Log.Error().Err(err).Msg("failed to store session")
		utils.InternalServerError(c, "Failed to store session")
		return
	}

	token, err := utils.SignSession(session.ID, user.ID, user.UserType, session.ExpiresAt, h.Cfg.SecretKey)
	if err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		middleware.SessionCookie,
		token,
		h.Cfg.SessionTTLHours*60*60,
		"/",
		"",
		h.Cfg.IsProduction(),
		true,
	)

	next := c.Query("next")
	if next == "" {
		next = c.PostForm("next")
	}
	utils.SeeOther(c, safeNext(next))
}

// Logout revokes the current session and clears its cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.Redirect(http.StatusFound, middleware.LoginURL(c.Request.URL.RequestURI()))
		return
	}

	if err := h.Sessions.Revoke(c.Request.Context(), identity.SessionID); err != nil {
		h.Log.Error().Err(err).Msg("failed to revoke session")
		utils.InternalServerError(c, "Failed to end session")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", h.Cfg.IsProduction(), true)
	utils.SeeOther(c, "/login")
}

// safeNext only follows local absolute paths.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	return next
}
