package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/wellness-hub/wellness/internal/service"
	"github.com/wellness-hub/wellness/internal/storage"
)

var errInvalidRequest = errors.New("invalid request")

func writeOK(w http.ResponseWriter, code int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		log.WithError(err).Error("failed to marshal response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(data)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeOK(w, code, Error{Error: msg})
}

func writeInternalErrorf(ctx context.Context, w http.ResponseWriter, format string, args ...interface{}) {
	log.WithField("request_id", middleware.GetReqID(ctx)).Errorf(format, args...)
	writeError(w, http.StatusInternalServerError, "internal error")
}

// writeServiceError maps sentinel errors to status codes. what names the subject in a 404 message.
func writeServiceError(ctx context.Context, w http.ResponseWriter, err error, what string) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, storage.ErrNotFound):
		writeError(w, http.StatusNotFound, fmt.Sprintf("%s not found", what))
	case errors.Is(err, storage.ErrAlreadyExists):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeInternalErrorf(ctx, w, "%s: %s", what, err.Error())
	}
}

func (s server) decode(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %s", errInvalidRequest, err.Error())
	}

	if err := s.v.Struct(v); err != nil {
		return fmt.Errorf("%w: %s", errInvalidRequest, err.Error())
	}

	return nil
}
