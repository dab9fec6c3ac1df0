package main

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	orchestration "github.com/polliant/megagent-core/core"
	imagepollinations "github.com/polliant/megagent-core/core/imagegen/pollinations"
	llmpollinations "github.com/polliant/megagent-core/core/llms/pollinations"
	speechpollinations "github.com/polliant/megagent-core/core/texttospeech/pollinations"
	"github.com/polliant/megagent-core/internal/config"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func setupLogging(w io.Writer, level string) {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel})))
}

// newOrchestrator builds the orchestrator with provider clients configured
// from cfg.
func newOrchestrator(cfg *config.Config) *orchestration.Orchestrator {
	httpClient := &http.Client{
		Timeout: cfg.RequestTimeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport,
			otelhttp.WithSpanNameFormatter(func(operationName string, request *http.Request) string {
				return operationName + " " + request.URL.Path
			}),
		),
	}

	return orchestration.NewOrchestrator(
		orchestration.WithStreamingLLM(llmpollinations.NewClient(
			llmpollinations.WithBaseURL(cfg.TextBaseURL),
			llmpollinations.WithHTTPClient(httpClient),
		)),
		orchestration.WithImageClient(imagepollinations.NewClient(
			imagepollinations.WithBaseURL(cfg.ImageBaseURL),
		)),
		orchestration.WithSpeechClient(speechpollinations.NewClient(
			speechpollinations.WithBaseURL(cfg.TextBaseURL),
		)),
		orchestration.WithMaxHistoryTurns(cfg.MaxHistoryTurns),
		orchestration.WithPromptWindowTurns(cfg.PromptWindowTurns),
		orchestration.WithDefaultModels(orchestration.ModelSelection{
			Text:      cfg.TextModel,
			Search:    cfg.SearchModel,
			Reasoning: cfg.ReasoningModel,
			Image:     cfg.ImageModel,
			Voice:     cfg.AudioVoice,
		}),
	)
}
