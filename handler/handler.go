package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"

	"vocabstream-api/internal/usecase"
)

const (
	pathHealth = "/"
	pathChat   = "/api/chat"

	correlationHeader    = "X-Correlation-Id"
	defaultAllowedOrigin = "https://vocabstream.vercel.app"
)

// ChatUseCase is the single operation the handler dispatches to.
type ChatUseCase interface {
	Chat(ctx context.Context, in usecase.ChatInput) (usecase.ChatOutput, error)
}

// Handler translates API Gateway events into use case calls and renders the
// outcome as JSON responses. Every response, errors included, carries CORS
// headers and a correlation id.
type Handler struct {
	uc            ChatUseCase
	allowedOrigin string
}

type Option func(*Handler)

// WithAllowedOrigin overrides the origin echoed in CORS response headers.
func WithAllowedOrigin(origin string) Option {
	return func(h *Handler) {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			h.allowedOrigin = origin
		}
	}
}

func NewHandler(uc ChatUseCase, opts ...Option) (*Handler, error) {
	if uc == nil {
		return nil, errors.New("handler: use case must not be nil")
	}
	h := &Handler{
		uc:            uc,
		allowedOrigin: defaultAllowedOrigin,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

type chatRequest struct {
	Message   string `json:"message"`
	Level     string `json:"level"`
	Specialty string `json:"specialty"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

type healthResponse struct {
	Status string `json:"status"`
}

type errorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}

func (h *Handler) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	corrID := correlationID(event.Headers)

	if event.HTTPMethod == http.MethodOptions {
		return h.respondEmpty(http.StatusNoContent, corrID), nil
	}

	switch {
	case event.HTTPMethod == http.MethodGet && event.Path == pathHealth:
		return h.respondJSON(http.StatusOK, healthResponse{Status: "ok"}, corrID), nil
	case event.HTTPMethod == http.MethodPost && event.Path == pathChat:
		return h.handleChat(ctx, event, corrID), nil
	case event.Path == pathHealth || event.Path == pathChat:
		return h.respondError(http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "", corrID), nil
	}
	return h.respondError(http.StatusNotFound, "NOT_FOUND", "", corrID), nil
}

func (h *Handler) handleChat(ctx context.Context, event events.APIGatewayProxyRequest, corrID string) events.APIGatewayProxyResponse {
	var req chatRequest
	if err := json.Unmarshal([]byte(event.Body), &req); err != nil {
		return h.respondError(http.StatusBadRequest, string(usecase.ErrorInvalidRequest), "malformed_json", corrID)
	}

	start := time.Now()
	out, err := h.uc.Chat(ctx, usecase.ChatInput{
		Message:   req.Message,
		Level:     req.Level,
		Specialty: req.Specialty,
	})
	if err != nil {
		return h.respondChatError(err, corrID)
	}

	slog.Info("chat turn completed",
		"level", req.Level,
		"elapsed_ms", time.Since(start).Milliseconds(),
		"correlation_id", corrID,
	)
	return h.respondJSON(http.StatusOK, chatResponse{Reply: out.Reply}, corrID)
}

func (h *Handler) respondChatError(err error, corrID string) events.APIGatewayProxyResponse {
	var ucErr *usecase.Error
	if !errors.As(err, &ucErr) {
		slog.Error("chat request failed", "err", err, "correlation_id", corrID)
		return h.respondError(http.StatusInternalServerError, string(usecase.ErrorInternal), "", corrID)
	}

	status := statusForCode(ucErr.Code)
	if status >= http.StatusInternalServerError {
		slog.Error("chat request failed",
			"code", ucErr.Code, "reason", ucErr.Reason, "err", ucErr.Err, "correlation_id", corrID)
	} else {
		slog.Info("chat request rejected",
			"code", ucErr.Code, "reason", ucErr.Reason, "correlation_id", corrID)
	}
	return h.respondError(status, string(ucErr.Code), ucErr.Reason, corrID)
}

func statusForCode(code usecase.ErrorCode) int {
	switch code {
	case usecase.ErrorInvalidRequest:
		return http.StatusBadRequest
	case usecase.ErrorUpstreamTimeout:
		return http.StatusGatewayTimeout
	case usecase.ErrorUpstreamUnavailable, usecase.ErrorUpstream, usecase.ErrorUpstreamProtocol:
		return http.StatusBadGateway
	case usecase.ErrorConfiguration, usecase.ErrorInternal:
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

func (h *Handler) baseHeaders(corrID string) map[string]string {
	return map[string]string{
		"Access-Control-Allow-Origin":      h.allowedOrigin,
		"Access-Control-Allow-Methods":     "GET,POST,OPTIONS",
		"Access-Control-Allow-Headers":     "Content-Type,X-Correlation-Id",
		"Access-Control-Allow-Credentials": "true",
		correlationHeader:                  corrID,
	}
}

func (h *Handler) respondEmpty(status int, corrID string) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    h.baseHeaders(corrID),
	}
}

func (h *Handler) respondJSON(status int, payload any, corrID string) events.APIGatewayProxyResponse {
	headers := h.baseHeaders(corrID)
	headers["Content-Type"] = "application/json"

	body, err := json.Marshal(payload)
	if err != nil {
		slog.Error("marshal response body", "err", err, "correlation_id", corrID)
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Headers:    headers,
			Body:       `{"error":"INTERNAL_ERROR"}`,
		}
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    headers,
		Body:       string(body),
	}
}

func (h *Handler) respondError(status int, code, reason, corrID string) events.APIGatewayProxyResponse {
	return h.respondJSON(status, errorResponse{Error: code, Reason: reason}, corrID)
}

// correlationID returns the caller-provided correlation id, or mints one. API
// Gateway does not canonicalize header casing, so the lookup is case-insensitive.
func correlationID(headers map[string]string) string {
	for k, v := range headers {
		if strings.EqualFold(k, correlationHeader) && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return uuid.NewString()
}
