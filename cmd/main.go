package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsssm "github.com/aws/aws-sdk-go-v2/service/ssm"

	"vocabstream-api/handler"
	"vocabstream-api/internal/config"
	"vocabstream-api/internal/integrations/openai"
	"vocabstream-api/internal/integrations/paramstore"
	"vocabstream-api/internal/logging"
	"vocabstream-api/internal/usecase"
)

func main() {
	ctx := context.Background()

	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	// ---- Credential resolution (startup only) ----
	apiKey, err := resolveAPIKey(ctx, cfg)
	if err != nil {
		slog.Error("failed to resolve OpenAI API key", "err", err)
		os.Exit(1)
	}

	// ---- Clients ----
	clientOpts := []openai.Option{}
	if cfg.OpenAIBaseURL != "" {
		clientOpts = append(clientOpts, openai.WithBaseURL(cfg.OpenAIBaseURL))
	}
	openaiClient, err := openai.NewClient(apiKey, clientOpts...)
	if err != nil {
		slog.Error("failed to create OpenAI client", "err", err)
		os.Exit(1)
	}

	// ---- Handler ----
	chatService, err := usecase.NewChatService(openaiClient, cfg.OpenAIModel, cfg.GenerateTimeout, cfg.MaxMessageLen)
	if err != nil {
		slog.Error("failed to create chat service", "err", err)
		os.Exit(1)
	}

	h, err := handler.NewHandler(chatService, handler.WithAllowedOrigin(cfg.AllowedOrigin))
	if err != nil {
		slog.Error("failed to create handler", "err", err)
		os.Exit(1)
	}

	lambda.Start(h.Handle)
}

// resolveAPIKey prefers a directly supplied key and otherwise reads it from
// SSM under PARAM_PREFIX. Either way the process refuses to serve without one.
func resolveAPIKey(ctx context.Context, cfg config.Config) (string, error) {
	if cfg.OpenAIAPIKey != "" {
		return cfg.OpenAIAPIKey, nil
	}
	if strings.TrimSpace(cfg.ParamPrefix) == "" {
		return "", fmt.Errorf("%w: neither OPENAI_API_KEY nor PARAM_PREFIX is set", openai.ErrMissingCredential)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return "", err
	}
	ssmClient, err := paramstore.New(awsssm.NewFromConfig(awsCfg))
	if err != nil {
		return "", err
	}
	return openai.ResolveAPIKey(ctx, ssmClient, paramstore.APIKeyName(cfg.ParamPrefix))
}
