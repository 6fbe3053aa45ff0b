package user

import (
	"errors"

	"github.com/atomtask/core/internal/middleware"
	"github.com/atomtask/core/internal/modules/auth/token"
	"github.com/atomtask/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/users")

	g.POST("", h.register)
	g.POST("/login", h.login)
	g.POST("/logout", authMW, h.logout)
}

// POST /users — register and return the first access token
func (h *Handler) register(c *gin.Context) {
	var dto RegisterDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Email required")
		return
	}

	envelope, err := h.svc.Register(c.Request.Context(), dto.Email)
	if err != nil {
		if errors.Is(err, errEmailTaken) {
			response.Conflict(c, "Email already registered")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, tokenResponse{AccessToken: envelope})
}

// POST /users/login — email-only login
func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Email required")
		return
	}

	envelope, err := h.svc.Login(c.Request.Context(), dto.Email)
	if err != nil {
		if errors.Is(err, errUserNotFound) {
			response.NotFoundMsg(c, "User not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, tokenResponse{AccessToken: envelope})
}

// POST /users/logout — revoke the presented token
func (h *Handler) logout(c *gin.Context) {
	err := h.svc.Logout(c.Request.Context(), middleware.CurrentTokenID(c))
	if err != nil && !errors.Is(err, token.ErrTokenNotFound) {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}
