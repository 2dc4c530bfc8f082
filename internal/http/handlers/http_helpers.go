package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const (
	listPath     = "/Products"
	maxBodyBytes = 1 << 20
)

// readJSON decodes a single JSON value of at most maxBodyBytes into data.
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(data); err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("body must have only a single json value")
	}
	return nil
}

// writeJSON writes data as the JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, data any) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}
	return nil
}

func isJSONRequest(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

// productIDParam reports false when the route carries no usable id.
func productIDParam(r *http.Request) (int, bool) {
	idStr := chi.URLParam(r, "id")
	if idStr == "" {
		return 0, false
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, false
	}
	return id, true
}

func redirectToList(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, listPath, http.StatusFound)
}

func requestLogger(r *http.Request) *zap.Logger {
	return logger.With(zap.String("request_id", middleware.GetReqID(r.Context())))
}

func serverError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	requestLogger(r).Error(msg, zap.Error(err))
	http.Error(w, msg, http.StatusInternalServerError)
}
