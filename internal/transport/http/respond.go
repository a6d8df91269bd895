package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"

	derrors "lawmate/pkg/domain-errors"
)

// writeJSON writes a JSON response body. Encoding failures after the header is
// out cannot be recovered, so they are swallowed.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError centralizes domain error translation to HTTP responses so every
// handler emits the same JSON error envelope.
func writeError(w http.ResponseWriter, err error) {
	code := derrors.CodeOf(err)
	message := "internal error"
	var de *derrors.Error
	if errors.As(err, &de) {
		message = de.Message
	}
	writeJSON(w, derrors.HTTPStatus(code), map[string]string{
		"error": message,
		"code":  string(code),
	})
}

// decodeJSON parses a request body into dst, normalizing failures into a
// single bad-request error.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return derrors.New(derrors.CodeBadRequest, "invalid request body")
	}
	return nil
}
