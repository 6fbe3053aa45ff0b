package app

import (
	"net/http"

	"github.com/atomtask/core/internal/middleware"
	"github.com/atomtask/core/internal/modules/auth/user"
	"github.com/atomtask/core/internal/modules/tasks/task"
	pkgredis "github.com/atomtask/core/internal/pkg/redis"
	"github.com/atomtask/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(rc *pkgredis.Client) {
	r := a.router
	authMW := middleware.Auth(a.tokens)

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	// Duplicate-write guard only when Redis is configured.
	if rc != nil {
		r.Use(middleware.Idempotence(rc.Raw()))
	}

	root := r.Group("")
	root.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": "pong"})
	})

	// Auth & users
	userRepo := user.NewMongoRepository(a.db)
	user.NewHandler(user.NewService(userRepo, a.tokens)).RegisterRoutes(root, authMW)

	// Tasks
	task.NewHandler(task.NewService(task.NewMongoRepository(a.db))).RegisterRoutes(root, authMW)
}
