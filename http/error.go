package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fwojciec/fale"
)

// codes maps application error codes to HTTP status codes.
var codes = map[string]int{
	fale.EINVALID:  http.StatusBadRequest,
	fale.ENOTFOUND: http.StatusNotFound,
	fale.EFETCH:    http.StatusInternalServerError,
	fale.EINTERNAL: http.StatusInternalServerError,
}

// ErrorStatusCode returns the associated HTTP status code for a fale error code.
func ErrorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error writes err as a JSON error response. Internal errors are logged
// and their details hidden from the client.
func (s *Server) Error(w http.ResponseWriter, r *http.Request, err error) {
	code, message := fale.ErrorCode(err), fale.ErrorMessage(err)

	if code == fale.EINTERNAL {
		s.Logger.Error("http error",
			"method", r.Method,
			"path", r.URL.Path,
			"err", err,
		)
	}

	writeJSON(w, ErrorStatusCode(code), &ErrorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Error("encode response", "err", err)
	}
}
