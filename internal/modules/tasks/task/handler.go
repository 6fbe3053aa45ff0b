package task

import (
	"errors"

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
	g := rg.Group("/tasks", authMW)

	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
	g.PATCH("/:id/complete", h.complete)
}

// GET /tasks
func (h *Handler) list(c *gin.Context) {
	tasks, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, tasks)
}

// GET /tasks/:id
func (h *Handler) get(c *gin.Context) {
	t, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if t == nil {
		response.NotFoundMsg(c, "Task not found")
		return
	}
	response.OK(c, t)
}

// POST /tasks
func (h *Handler) create(c *gin.Context) {
	var dto CreateTaskDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Title required")
		return
	}
	t, err := h.svc.Create(c.Request.Context(), &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, gin.H{"id": t.ID})
}

// PUT /tasks/:id
func (h *Handler) update(c *gin.Context) {
	var dto UpdateTaskDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	h.finish(c, h.svc.Update(c.Request.Context(), c.Param("id"), &dto))
}

// DELETE /tasks/:id
func (h *Handler) delete(c *gin.Context) {
	h.finish(c, h.svc.Delete(c.Request.Context(), c.Param("id")))
}

// PATCH /tasks/:id/complete
func (h *Handler) complete(c *gin.Context) {
	h.finish(c, h.svc.MarkCompleted(c.Request.Context(), c.Param("id")))
}

func (h *Handler) finish(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errTaskNotFound):
		response.NotFoundMsg(c, "Task not found")
	case err != nil:
		response.InternalError(c, err)
	default:
		response.NoContent(c)
	}
}
