package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/goliatone/go-sigstudio/pkg/imaging"
)

type HTTPError interface {
	error
	StatusCode() int
}

type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

func badRequest(err error) error {
	return StatusError{Code: http.StatusBadRequest, Err: err}
}

type errorResponse struct {
	Error string `json:"error"`
}

// statusFor maps an error to its response code. Errors without a status
// become 500s.
func statusFor(err error) int {
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		return httpErr.StatusCode()
	}
	var maxErr *http.MaxBytesError
	switch {
	case errors.Is(err, imaging.ErrTooLarge), errors.As(err, &maxErr):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, imaging.ErrNotImage):
		return http.StatusUnsupportedMediaType
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	_ = enc.Encode(payload)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := statusFor(err)
	message := err.Error()
	if code >= http.StatusInternalServerError {
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
		message = http.StatusText(code)
	}
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		message = imaging.ErrTooLarge.Error()
	}
	writeJSON(w, code, errorResponse{Error: message})
}
