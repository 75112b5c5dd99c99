// Package respond writes JSON responses and funnels every error through a
// single classifier so all failure bodies share the {"message": ...} shape.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"newsboard/internal/domain/entity"
	"newsboard/internal/infra/dberr"
)

type errorBody struct {
	Message string `json:"message"`
}

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Headers are already sent at this point; log and move on.
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Error classifies err and writes the matching {"message": ...} body.
//
// Domain errors carry their own status and message and pass through
// unchanged. Store errors are mapped by SQLSTATE. Anything else is
// opaque to the client: the sanitized detail is logged and the body says
// only that something went wrong.
func Error(w http.ResponseWriter, err error) {
	var domainErr *entity.Error
	if errors.As(err, &domainErr) {
		JSON(w, domainErr.Status, errorBody{Message: domainErr.Message})
		return
	}

	if status, message, ok := dberr.Classify(err); ok {
		JSON(w, status, errorBody{Message: message})
		return
	}

	slog.Default().Error("unhandled error",
		slog.String("error", Sanitize(err)))
	JSON(w, http.StatusInternalServerError, errorBody{Message: "Ooops something went wrong!"})
}
