package main

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/harlequingg/tasks-api/internal/apperr"
)

func statusFor(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindValidation, apperr.KindConflict:
		return http.StatusBadRequest
	case apperr.KindAuth:
		return http.StatusUnauthorized
	case apperr.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// errorResponse renders err with the status its kind maps to. Server side
// faults are logged and their text is still returned to the client.
func errorResponse(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		log.Printf("%s %s: %v", r.Method, r.URL.Path, err)
	}
	writeError(w, status, err.Error())
}

func writeError(w http.ResponseWriter, status int, description string) {
	h := w.Header()
	h.Del("Content-Length")
	h.Set("Content-Type", "application/json")
	h.Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(errorBody{
		Code:        status,
		Name:        http.StatusText(status),
		Description: description,
	})
	if err != nil {
		log.Println(err)
	}
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound,
		"The requested URL was not found on the server. If you entered the URL manually please check your spelling and try again.")
}

func methodNotAllowed(allow string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", allow)
		writeError(w, http.StatusMethodNotAllowed, "The method is not allowed for the requested URL.")
	}
}

func badRequest(w http.ResponseWriter, description string) {
	writeError(w, http.StatusBadRequest, description)
}
