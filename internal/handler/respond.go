package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vaultpass/passcheck-go/internal/classifier"
	"github.com/vaultpass/passcheck-go/internal/crypto"
	"github.com/vaultpass/passcheck-go/internal/service"
	"github.com/vaultpass/passcheck-go/internal/wordlist"
)

const maxBodyBytes = 1 << 20 // 1MB

// decodeBody decodes an optional JSON body into v. It writes the error
// response itself and reports whether the handler should continue.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Body == nil || r.Body == http.NoBody {
		return true
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return false
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return false
	}
	return true
}

// writeError maps service errors to HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case isValidationError(err):
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
	case isUnavailableError(err):
		writeJSON(w, http.StatusServiceUnavailable, errorResponse("service temporarily unavailable"))
	case errors.Is(err, classifier.ErrClassification):
		writeJSON(w, http.StatusBadGateway, errorResponse("classification failed"))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
	}
}

func isValidationError(err error) bool {
	return errors.Is(err, crypto.ErrLengthOutOfRange) ||
		errors.Is(err, crypto.ErrWordCountOutOfRange) ||
		errors.Is(err, service.ErrPasswordRequired)
}

func isUnavailableError(err error) bool {
	return errors.Is(err, wordlist.ErrFileUnavailable) ||
		errors.Is(err, wordlist.ErrEmptyList) ||
		errors.Is(err, classifier.ErrArtifactUnavailable)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}
