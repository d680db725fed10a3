package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/harlequingg/tasks-api/internal/task"
)

const maxBodyBytes = 1 << 20

var errEmptyBody = errors.New("request body is empty")

func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	status := "available"
	code := http.StatusOK
	if err := app.store.Ping(r.Context()); err != nil {
		log.Println(err)
		status = "unavailable"
		code = http.StatusServiceUnavailable
	}
	heathCheck := struct {
		Status      string `json:"status"`
		Environment string `json:"environment"`
		Version     string `json:"version"`
	}{
		Status:      status,
		Environment: app.config.Env,
		Version:     version,
	}
	writeJSON(w, code, heathCheck)
}

func (app *application) registerHandler(w http.ResponseWriter, r *http.Request) {
	var input credentials
	if err := readJSON(w, r, &input); err != nil && !errors.Is(err, errEmptyBody) {
		badRequest(w, err.Error())
		return
	}
	if _, err := app.auth.Register(r.Context(), input.Username, input.Password); err != nil {
		errorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, messageResponse{Message: "user registered successfully"})
}

func (app *application) loginHandler(w http.ResponseWriter, r *http.Request) {
	var input credentials
	if err := readJSON(w, r, &input); err != nil && !errors.Is(err, errEmptyBody) {
		badRequest(w, err.Error())
		return
	}
	token, err := app.auth.Login(r.Context(), input.Username, input.Password)
	if err != nil {
		errorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token})
}

func (app *application) listTasksHandler(w http.ResponseWriter, r *http.Request) {
	tasks, err := app.tasks.List(r.Context())
	if err != nil {
		errorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (app *application) getTaskHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := readIDParam(r)
	if !ok {
		notFound(w, r)
		return
	}
	t, err := app.tasks.Get(r.Context(), id)
	if err != nil {
		errorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (app *application) createTaskHandler(w http.ResponseWriter, r *http.Request) {
	var input task.CreateInput
	if err := readJSON(w, r, &input); err != nil && !errors.Is(err, errEmptyBody) {
		badRequest(w, err.Error())
		return
	}
	t, err := app.tasks.Create(r.Context(), input)
	if err != nil {
		errorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

func (app *application) updateTaskHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := readIDParam(r)
	if !ok {
		notFound(w, r)
		return
	}
	// patch stays nil for an empty body or a JSON null.
	var patch *task.Patch
	if err := readJSON(w, r, &patch); err != nil && !errors.Is(err, errEmptyBody) {
		badRequest(w, err.Error())
		return
	}
	t, err := app.tasks.Update(r.Context(), id, patch)
	if err != nil {
		errorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (app *application) deleteTaskHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := readIDParam(r)
	if !ok {
		notFound(w, r)
		return
	}
	if err := app.tasks.Delete(r.Context(), id); err != nil {
		errorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// readIDParam parses the {id} path segment. Only unsigned decimal integers
// match, so anything else is treated as an unknown URL.
func readIDParam(r *http.Request) (int64, bool) {
	raw := r.PathValue("id")
	if raw == "" || raw[0] == '+' || raw[0] == '-' {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// readJSON decodes a single JSON value from the body into dst. It returns
// errEmptyBody when the client sent nothing.
func readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	err := dec.Decode(dst)
	if err != nil {
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		var maxBytesErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return errEmptyBody
		case errors.As(err, &syntaxErr):
			return fmt.Errorf("failed to decode JSON object: malformed JSON at offset %d", syntaxErr.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("failed to decode JSON object: body ends unexpectedly")
		case errors.As(err, &typeErr):
			if typeErr.Field != "" {
				return fmt.Errorf("failed to decode JSON object: field %q must be a %s", typeErr.Field, jsonKind(typeErr.Type.Kind().String()))
			}
			return errors.New("failed to decode JSON object: body must be a JSON object")
		case errors.As(err, &maxBytesErr):
			return fmt.Errorf("failed to decode JSON object: body must not be larger than %d bytes", maxBytesErr.Limit)
		default:
			return fmt.Errorf("failed to decode JSON object: %w", err)
		}
	}
	if dec.More() {
		return errors.New("failed to decode JSON object: body must contain a single JSON value")
	}
	return nil
}

func jsonKind(goKind string) string {
	if goKind == "bool" {
		return "boolean"
	}
	return goKind
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		log.Println(err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
	w.Write([]byte("\n"))
}
