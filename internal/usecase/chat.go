package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"vocabstream-api/internal/domain"
	"vocabstream-api/internal/integrations/openai"
)

const (
	defaultModel           = "gpt-4o-mini"
	defaultGenerateTimeout = 30 * time.Second
	defaultMaxMessageLen   = 2000
	maxSpecialtyLen        = 200
)

type LLMClient interface {
	Chat(ctx context.Context, model string, messages []domain.ChatMessage) (string, error)
}

type httpStatusCoder interface {
	HTTPStatusCode() int
}

// ChatService turns one validated conversation request into exactly one
// generation call. It holds no per-request state, so a single instance serves
// concurrent requests.
type ChatService struct {
	llm             LLMClient
	model           string
	generateTimeout time.Duration
	maxMessageLen   int
}

type ChatInput struct {
	Message   string
	Level     string
	Specialty string
}

type ChatOutput struct {
	Reply string
}

func NewChatService(llm LLMClient, model string, generateTimeout time.Duration, maxMessageLen int) (*ChatService, error) {
	if llm == nil {
		return nil, errors.New("usecase: llm client must not be nil")
	}
	model = strings.TrimSpace(model)
	if model == "" {
		model = defaultModel
	}
	if generateTimeout <= 0 {
		generateTimeout = defaultGenerateTimeout
	}
	if maxMessageLen <= 0 {
		maxMessageLen = defaultMaxMessageLen
	}
	return &ChatService{
		llm:             llm,
		model:           model,
		generateTimeout: generateTimeout,
		maxMessageLen:   maxMessageLen,
	}, nil
}

// Chat validates the request, composes the prompt, and dispatches it to the
// generation service under the configured timeout. Validation failures return
// before any network call happens.
func (s *ChatService) Chat(ctx context.Context, in ChatInput) (ChatOutput, error) {
	message := strings.TrimSpace(in.Message)
	if message == "" {
		return ChatOutput{}, newError(ErrorInvalidRequest, "empty_message", nil)
	}
	if len(message) > s.maxMessageLen {
		return ChatOutput{}, newError(ErrorInvalidRequest, "message_too_long", nil)
	}
	level, err := domain.ParseLevel(in.Level)
	if err != nil {
		if errors.Is(err, domain.ErrLevelMissing) {
			return ChatOutput{}, newError(ErrorInvalidRequest, "missing_level", err)
		}
		return ChatOutput{}, newError(ErrorInvalidRequest, "unknown_level", err)
	}
	specialty := normalizeSpecialty(in.Specialty)
	if len(specialty) > maxSpecialtyLen {
		return ChatOutput{}, newError(ErrorInvalidRequest, "specialty_too_long", nil)
	}

	genCtx, cancel := context.WithTimeout(ctx, s.generateTimeout)
	defer cancel()

	reply, err := s.llm.Chat(genCtx, s.model, BuildPromptMessages(level, specialty, message))
	if err != nil {
		return ChatOutput{}, classifyLLMError(err)
	}

	return ChatOutput{Reply: reply}, nil
}

// classifyLLMError folds generation client failures into the service taxonomy
// so the boundary can pick a response status without touching transport
// details.
func classifyLLMError(err error) *Error {
	switch {
	case errors.Is(err, openai.ErrMissingCredential):
		return newError(ErrorConfiguration, "missing_credential", err)
	case errors.Is(err, openai.ErrTimeout):
		return newError(ErrorUpstreamTimeout, "openai_timeout", err)
	case errors.Is(err, openai.ErrUnreachable):
		return newError(ErrorUpstreamUnavailable, "openai_unavailable", err)
	case errors.Is(err, openai.ErrMalformedResponse):
		return newError(ErrorUpstreamProtocol, "openai_malformed_response", err)
	}
	if isUpstreamStatusError(err) {
		return newError(ErrorUpstream, "openai_error", err)
	}
	return newError(ErrorInternal, "llm_error", err)
}

func isUpstreamStatusError(err error) bool {
	var statusErr httpStatusCoder
	return errors.As(err, &statusErr)
}
