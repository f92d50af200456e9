package http

import (
	"time"

	"github.com/labstack/echo/v4"

	middleware "task-time-tracker.com/task-time-tracker/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, rateLimitPerMinute int) {
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	api := e.Group("/api")

	api.GET("/tasks", h.ListTasks)
	api.POST("/tasks", h.CreateTask)
	api.PUT("/tasks/:id", h.UpdateTask)
	api.DELETE("/tasks/:id", h.DeleteTask)

	api.GET("/time-entries", h.ListTimeEntries)
	api.POST("/time-entries", h.LogTime)

	api.GET("/bas-accounts", h.ListAccounts)
	api.POST("/bas-accounts/import", h.ImportAccounts)
	api.GET("/bas-accounts/:id/validate", h.ValidateAccount)

	api.GET("/reports/task-status", h.TaskStatusReport)
	api.GET("/reports/time-by-account", h.TimeByAccountReport)
	api.GET("/reports/time-accuracy", h.TimeAccuracyReport)
	api.GET("/reports/account-report", h.AccountReport)
	api.GET("/reports/accounting-export", h.AccountingExport)
}
