package server

import (
	"encoding/json"
	"errors"
	"net/http"

	mwerrors "github.com/matzehuels/mazewalk/pkg/errors"
	"github.com/matzehuels/mazewalk/pkg/history"
	"github.com/matzehuels/mazewalk/pkg/observability"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// statusFor maps an error to its HTTP status.
func statusFor(err error) int {
	if errors.Is(err, history.ErrNotFound) {
		return http.StatusNotFound
	}
	switch code := mwerrors.GetCode(err); {
	case mwerrors.IsValidation(err):
		return http.StatusBadRequest
	case code == mwerrors.ErrCodeNotFound, code == mwerrors.ErrCodeRunNotFound, code == mwerrors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case code == mwerrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case code == mwerrors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	case code == mwerrors.ErrCodeNetwork:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// codeFor returns the error code reported to clients.
func codeFor(err error) mwerrors.Code {
	if errors.Is(err, history.ErrNotFound) {
		return mwerrors.ErrCodeRunNotFound
	}
	if code := mwerrors.GetCode(err); code != "" {
		return code
	}
	return mwerrors.ErrCodeInternal
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := mwerrors.UserMessage(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "error", err)
		observability.HTTP().OnError(r.Context(), r.Method, r.URL.Path, err)
		msg = "internal error"
	}
	writeJSON(w, status, errorResponse{Code: string(codeFor(err)), Message: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
