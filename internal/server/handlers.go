package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"ecakir/fintext/internal/logging"
	"ecakir/fintext/internal/parseerror"
	"ecakir/fintext/internal/pipeline"
)

type parseRequest struct {
	Text string `json:"text"`
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-ID")
	if userID == "" {
		writeError(w, http.StatusBadRequest, errorDetail{
			Code:    "MISSING_USER",
			Message: "X-User-ID header is required",
		})
		return
	}

	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errorDetail{
			Code:    "BAD_REQUEST",
			Message: "request body must be JSON with a \"text\" field",
		})
		return
	}

	result, err := s.parser.ParseAndCreate(r.Context(), userID, req.Text)
	if err != nil {
		status, detail := classifyError(err)
		if status >= http.StatusInternalServerError {
			s.logger.WithError(err).WithFields(
				logging.Field{Key: logging.FieldUser, Value: userID},
				logging.Field{Key: logging.FieldCode, Value: detail.Code},
			).Error("Parse request failed")
		}
		writeError(w, status, detail)
		return
	}

	// A low-confidence parse is a normal outcome, not an error.
	writeJSON(w, http.StatusOK, result)
}

// classifyError maps pipeline errors onto HTTP statuses via their stable
// codes.
func classifyError(err error) (int, errorDetail) {
	if errors.Is(err, pipeline.ErrEmptyText) || errors.Is(err, pipeline.ErrTextTooLong) {
		return http.StatusBadRequest, errorDetail{Code: "BAD_REQUEST", Message: err.Error()}
	}

	code := parseerror.CodeOf(err)
	detail := errorDetail{Code: code, Message: err.Error(), Retryable: parseerror.Retryable(err)}

	switch code {
	case parseerror.CodeExtractionTimeout:
		return http.StatusGatewayTimeout, detail
	case parseerror.CodeExtractionUnparseable,
		parseerror.CodeExtractionIncomplete,
		parseerror.CodeTypeUndetermined:
		return http.StatusUnprocessableEntity, detail
	default:
		// Account-integrity and unexpected errors stay opaque.
		detail.Message = "internal error"
		return http.StatusInternalServerError, detail
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, detail errorDetail) {
	writeJSON(w, status, errorBody{Error: detail})
}
