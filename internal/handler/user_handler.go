package handler

import (
	"net/http"

	"citizen_registry/internal/model"
	"citizen_registry/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles account, token and self-profile requests
type UserHandler struct {
	auth  service.AuthService
	users service.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(auth service.AuthService, users service.UserService) *UserHandler {
	return &UserHandler{auth: auth, users: users}
}

// Register creates an account. The response carries the public profile and
// never the password.
func (h *UserHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user.Profile())
}

// Login exchanges credentials for a bearer token. Failures are a 400 with a
// single message regardless of which field was wrong.
func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// ListUsers returns the public profiles of every account
func (h *UserHandler) ListUsers(c *gin.Context) {
	profiles, err := h.users.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// CountUsers returns the account total
func (h *UserHandler) CountUsers(c *gin.Context) {
	count, err := h.users.Count(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// Me returns the caller's own profile, resolved from the token only
func (h *UserHandler) Me(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.Me(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user.Profile())
}

// ReplaceMe is the full self-profile update
func (h *UserHandler) ReplaceMe(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req model.ReplaceUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	user, err := h.users.UpdateMe(c.Request.Context(), userID, model.UpdateUserRequest{
		Email:    &req.Email,
		Name:     &req.Name,
		Password: &req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user.Profile())
}

// UpdateMe is the partial self-profile update; a password change re-hashes
func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req model.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	user, err := h.users.UpdateMe(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user.Profile())
}

// DeleteMe hard-deletes the caller's account
func (h *UserHandler) DeleteMe(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	if err := h.users.DeleteMe(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RegisterUserRoutes registers the account routes. Creation, login, listing
// and the counter are public; the self-profile routes require a bearer token.
func (h *UserHandler) RegisterUserRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	users := rg.Group("/users")
	{
		users.POST("", h.Register)
		users.GET("", h.ListUsers)
		users.POST("/token", h.Login)
		users.GET("/count", h.CountUsers)

		me := users.Group("/me")
		me.Use(authMW)
		{
			me.GET("", h.Me)
			me.PUT("", h.ReplaceMe)
			me.PATCH("", h.UpdateMe)
			me.DELETE("", h.DeleteMe)
		}
	}
}
