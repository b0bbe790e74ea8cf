package handler

import (
	"errors"
	"net/http"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/domain"
	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/httputil"
)

// handleError converts domain errors to HTTP responses. Validation
// failures from ozzo carry per-field messages into the 400 body.
func handleError(w http.ResponseWriter, err error) {
	var fieldErrs validation.Errors

	switch {
	case errors.As(err, &fieldErrs):
		httputil.RespondErrorWithExtras(w, http.StatusBadRequest, "validation error", map[string]interface{}{
			"errors": fieldErrorList(fieldErrs),
		})
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUnavailable):
		httputil.RespondError(w, http.StatusInternalServerError, err.Error())
	default:
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}

type fieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// fieldErrorList flattens ozzo's field->error map into a stable,
// path-sorted list.
func fieldErrorList(errs validation.Errors) []fieldError {
	list := make([]fieldError, 0, len(errs))
	for path, err := range errs {
		list = append(list, fieldError{Path: path, Message: err.Error()})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Path < list[j].Path })
	return list
}
