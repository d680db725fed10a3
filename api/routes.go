package main

import (
	"net/http"
)

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /v1/healthcheck", app.healthCheckHandler)

	mux.HandleFunc("POST /api/register", app.registerHandler)
	mux.HandleFunc("POST /api/login", app.loginHandler)

	mux.HandleFunc("GET /api/tasks", app.protect(app.listTasksHandler))
	mux.HandleFunc("POST /api/tasks", app.protect(app.createTaskHandler))
	mux.HandleFunc("GET /api/tasks/{id}", app.protect(app.getTaskHandler))
	mux.HandleFunc("PUT /api/tasks/{id}", app.protect(app.updateTaskHandler))
	mux.HandleFunc("DELETE /api/tasks/{id}", app.protect(app.deleteTaskHandler))

	// Known paths with an unsupported method.
	mux.HandleFunc("/v1/healthcheck", methodNotAllowed("GET, HEAD"))
	mux.HandleFunc("/api/register", methodNotAllowed("POST"))
	mux.HandleFunc("/api/login", methodNotAllowed("POST"))
	mux.HandleFunc("/api/tasks", methodNotAllowed("GET, HEAD, POST"))
	mux.HandleFunc("/api/tasks/{id}", methodNotAllowed("GET, HEAD, PUT, DELETE"))

	mux.HandleFunc("/", notFound)

	return app.recoverPanic(app.logRequests(app.enableCORS(mux)))
}

// protect applies bearer authentication when the configuration asks for it.
func (app *application) protect(next http.HandlerFunc) http.HandlerFunc {
	if !app.config.RequireAuth {
		return next
	}
	return app.requireAuthenticatedUser(next)
}
