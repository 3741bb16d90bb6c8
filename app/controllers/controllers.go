// Package controllers translates HTTP requests into service calls and
// service results into JSON envelopes.
package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/freshbasket/app/services"
	"github.com/shashiranjanraj/freshbasket/pkg/logger"
	"github.com/shashiranjanraj/freshbasket/pkg/response"
)

// respondError maps the service error taxonomy onto HTTP statuses. Anything
// unrecognised is a 500 with a generic body; the cause goes to the log only.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch e := err.(type) {
	case *services.ValidationError:
		response.ValidationError(w, e.Fields)
	case *services.NotFoundError:
		response.NotFound(w, e.Error())
	case *services.ConflictError:
		response.Conflict(w, e.Reason, e.Message)
	default:
		logger.WithCtx(r.Context()).Error("request failed", "error", err)
		response.Internal(w)
	}
}

// uintParam reads a positive integer chi URL parameter.
func uintParam(r *http.Request, name string) (uint, bool) {
	v, err := strconv.ParseUint(chi.URLParam(r, name), 10, 32)
	if err != nil || v == 0 {
		return 0, false
	}
	return uint(v), true
}

// uintQuery reads a positive integer query parameter.
func uintQuery(r *http.Request, name string) (uint, bool) {
	v, err := strconv.ParseUint(r.URL.Query().Get(name), 10, 32)
	if err != nil || v == 0 {
		return 0, false
	}
	return uint(v), true
}
