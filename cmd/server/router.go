package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/todo-lists-api/internal/api"
	apiMiddleware "github.com/phrazzld/todo-lists-api/internal/api/middleware"
	"github.com/phrazzld/todo-lists-api/internal/redact"
)

// healthCheckTimeout bounds the store ping made by /health.
const healthCheckTimeout = 2 * time.Second

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	if app.config.Server.Debug {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))

	todoHandler := api.NewTodoHandler(app.store, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/dummy", todoHandler.Dummy)

		r.Route("/lists", func(r chi.Router) {
			r.Get("/", todoHandler.ListLists)
			r.Post("/", todoHandler.CreateList)

			r.Route("/{"+api.ParamListID+"}", func(r chi.Router) {
				r.Get("/", todoHandler.GetList)
				r.Delete("/", todoHandler.DeleteList)
				r.Post("/items", todoHandler.CreateItem)
				r.Post("/items/", todoHandler.CreateItem)
				r.Delete("/items/{"+api.ParamItemID+"}", todoHandler.DeleteItem)
				r.Patch("/checked_state", todoHandler.SetCheckedState)
			})
		})
	})

	r.Get("/health", app.handleHealth)

	return r
}

// handleHealth reports whether the store is reachable.
func (app *application) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	status, body := http.StatusOK, "OK"
	if err := app.store.Ping(ctx); err != nil {
		app.logger.Warn("Health check failed", slog.String("error", redact.Error(err)))
		status, body = http.StatusServiceUnavailable, "Service Unavailable"
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		app.logger.Error("Failed to write health check response", slog.String("error", err.Error()))
	}
}
