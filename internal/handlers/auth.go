package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"recipeshare/internal/auth"
	"recipeshare/internal/dto"
	"recipeshare/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles signup, check_session, login and logout.
type AuthHandler struct {
	sessions     auth.SessionStore
	userSvc      *service.UserService
	cookieMaxAge int
}

// NewAuthHandler returns a new AuthHandler. sessionTTL controls the
// cookie max-age and should match the store's TTL.
func NewAuthHandler(sessions auth.SessionStore, userSvc *service.UserService, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{sessions: sessions, userSvc: userSvc, cookieMaxAge: int(sessionTTL.Seconds())}
}

// Signup godoc
// @Summary      Sign up
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SignupRequest  true  "New account"
// @Success      201   {object}  dto.UserView
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.userSvc.Signup(c.Request.Context(), req.Username, req.Password, req.ImageURL, req.Bio)
	if err != nil {
		if errors.Is(err, service.ErrMissingCredentials) || errors.Is(err, service.ErrUsernameTaken) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "signup failed"})
		return
	}
	token, err := h.sessions.Create(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}
	c.SetCookie(auth.SessionCookieName, token, h.cookieMaxAge, "/", "", false, true)
	c.JSON(http.StatusCreated, dto.UserToView(user))
}

// CheckSession godoc
// @Summary      Return the logged-in user
// @Tags         auth
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.UserView
// @Failure      401  {object}  map[string]string
// @Router       /check_session [get]
func (h *AuthHandler) CheckSession(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	user, err := h.userSvc.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			// Session resolved to a user that no longer exists.
			log.Printf("check_session: session maps to missing user id=%d", userID)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session check failed"})
		return
	}
	c.JSON(http.StatusOK, dto.UserToView(user))
}

// Login godoc
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LoginRequest  true  "Credentials"
// @Success      200   {object}  dto.UserView
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrMissingCredentials.Error()})
		return
	}
	user, err := h.userSvc.ValidateCredentials(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}
	token, err := h.sessions.Create(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}
	c.SetCookie(auth.SessionCookieName, token, h.cookieMaxAge, "/", "", false, true)
	c.JSON(http.StatusOK, dto.UserToView(user))
}

// Logout godoc
// @Summary      Logout
// @Tags         auth
// @Security     CookieAuth
// @Success      204
// @Failure      401  {object}  map[string]string
// @Router       /logout [delete]
func (h *AuthHandler) Logout(c *gin.Context) {
	// RequireSession already verified the cookie resolves to a live
	// session, so a logout without one never reaches here.
	token, err := c.Cookie(auth.SessionCookieName)
	if err == nil && token != "" {
		_ = h.sessions.Delete(c.Request.Context(), token)
	}
	c.SetCookie(auth.SessionCookieName, "", -1, "/", "", false, true)
	c.Status(http.StatusNoContent)
}
