package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resumescore-backend/internal/sessions"
	"resumescore-backend/internal/shared/server/middleware"
	"resumescore-backend/internal/shared/server/respond"
	"resumescore-backend/internal/users"
)

// Handler exposes email/password auth endpoints.
type Handler struct {
	users    *users.Service
	sessions *sessions.Service
}

// NewHandler constructs an auth Handler.
func NewHandler(usersSvc *users.Service, sessionsSvc *sessions.Service) *Handler {
	return &Handler{users: usersSvc, sessions: sessionsSvc}
}

// RegisterRoutes attaches auth routes to the group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/signup", h.signup)
	rg.POST("/auth/login", h.login)
	rg.POST("/auth/logout", h.logout)
}

type credentialsRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

type userPayload struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
}

func (h *Handler) signup(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.Email, req.Password, req.DisplayName)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrExists):
			respond.Error(c, http.StatusConflict, "An account with this email already exists", nil)
		case errors.Is(err, users.ErrInvalidEmail), errors.Is(err, users.ErrWeakPassword):
			respond.Error(c, http.StatusBadRequest, err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "Signup failed. Please try again.", err)
		}
		return
	}

	h.startSession(c, user)
}

func (h *Handler) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, users.ErrInvalidCredentials) {
			respond.Error(c, http.StatusUnauthorized, "Invalid email or password", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Login failed. Please try again.", err)
		return
	}

	h.startSession(c, user)
}

func (h *Handler) logout(c *gin.Context) {
	token, err := c.Cookie(middleware.SessionCookie)
	if err != nil || token == "" {
		if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
			token = strings.TrimPrefix(header, "Bearer ")
		}
	}
	if token != "" {
		_ = h.sessions.Revoke(c.Request.Context(), token)
	}

	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	respond.OK(c, gin.H{"success": true})
}

func (h *Handler) startSession(c *gin.Context, user users.User) {
	session, err := h.sessions.Issue(c.Request.Context(), user.ID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Could not create session", err)
		return
	}

	c.SetCookie(middleware.SessionCookie, session.Token, h.sessions.TTLSeconds(), "/", "", false, true)
	respond.OK(c, gin.H{
		"success": true,
		"token":   session.Token,
		"user": userPayload{
			ID:          user.ID,
			Email:       user.Email,
			DisplayName: user.DisplayName,
		},
	})
}
