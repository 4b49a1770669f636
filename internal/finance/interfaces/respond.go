package interfaces

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	financeErrors "github.com/sebuszqo/FinanceTracker/internal/finance/errors"
)

type RespondJSONFunc func(w http.ResponseWriter, status int, payload interface{})

type RespondErrorFunc func(w http.ResponseWriter, status int, message string)

func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("JSON encoding error")
	}
}

// RespondError writes the error envelope. detail repeats message for clients
// that read the FastAPI-style field.
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, map[string]interface{}{
		"status":  "error",
		"message": message,
		"detail":  message,
		"code":    status,
	})
}

var errMalformedBody = errors.New("Invalid request body")

// decodeBody separates unparsable JSON from JSON of the wrong shape; the latter
// is reported as a validation error.
func decodeBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) || errors.As(err, &syntaxErr) {
			return errMalformedBody
		}
		if financeErrors.IsValidationError(err) {
			return err
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return financeErrors.NewValidationError(fmt.Sprintf("Invalid value for field '%s'", typeErr.Field))
		}
		return financeErrors.NewValidationError(err.Error())
	}
	return nil
}

func parsePathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		return 0, financeErrors.NewValidationError(fmt.Sprintf("Invalid %s: must be an integer", name))
	}
	return id, nil
}

// respondServiceError maps the error taxonomy onto HTTP status codes. Errors
// outside the taxonomy are logged and answered with fallback.
func respondServiceError(w http.ResponseWriter, r *http.Request, respondError RespondErrorFunc, err error, fallback string) {
	switch {
	case errors.Is(err, errMalformedBody):
		respondError(w, http.StatusBadRequest, err.Error())
	case financeErrors.IsValidationError(err):
		respondError(w, http.StatusUnprocessableEntity, err.Error())
	case financeErrors.IsReferenceError(err):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, financeErrors.ErrCategoryNameTaken):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, financeErrors.ErrCategoryNotFound), errors.Is(err, financeErrors.ErrTransactionNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, financeErrors.ErrCategoryInUse):
		respondError(w, http.StatusConflict, err.Error())
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg(fallback)
		respondError(w, http.StatusInternalServerError, fallback)
	}
}
