package handler

import (
	"io"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"vocabstream-api/internal/usecase"
)

const maxBodyBytes = 1 << 20

// ServeHTTP adapts the Lambda handler to net/http, so the local development
// server runs the exact routing, validation, and response shapes that ship on
// Lambda. Request bodies are capped at maxBodyBytes; a truncated body no
// longer parses as JSON and is rejected as INVALID_REQUEST.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	headers := make(map[string]string, len(r.Header))
	for k, vals := range r.Header {
		if len(vals) > 0 {
			headers[k] = vals[0]
		}
	}
	corrID := correlationID(headers)

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeResponse(w, h.respondError(http.StatusBadRequest, string(usecase.ErrorInvalidRequest), "unreadable_body", corrID))
		return
	}

	resp, err := h.Handle(r.Context(), events.APIGatewayProxyRequest{
		HTTPMethod: r.Method,
		Path:       r.URL.Path,
		Headers:    headers,
		Body:       string(body),
	})
	if err != nil {
		writeResponse(w, h.respondError(http.StatusInternalServerError, string(usecase.ErrorInternal), "", corrID))
		return
	}

	writeResponse(w, resp)
}

// writeResponse copies a Lambda proxy response onto the ResponseWriter, so
// error paths and regular responses share one rendering.
func writeResponse(w http.ResponseWriter, resp events.APIGatewayProxyResponse) {
	for k, v := range resp.Headers {
		w.Header().Set(k, v)
	}
	w.WriteHeader(resp.StatusCode)
	if resp.Body != "" {
		_, _ = io.WriteString(w, resp.Body)
	}
}
