package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"resume-styler/internal/documents"
	"resume-styler/internal/generatedresumes"
	"resume-styler/internal/llm"
	"resume-styler/internal/llm/gemini"
	"resume-styler/internal/llm/openai"
	"resume-styler/internal/shared/config"
	"resume-styler/internal/shared/server"
	"resume-styler/internal/shared/telemetry"
	"resume-styler/resume/render"
	"resume-styler/resume/service"
)

// chromeTimeout bounds a single headless print.
const chromeTimeout = 45 * time.Second

// App holds shared dependencies.
type App struct {
	Config                  config.Config
	Router                  *gin.Engine
	LLM                     llm.Client
	Renderer                render.Renderer
	Extractor               *service.Extractor
	DocumentsService        *documents.Service
	GeneratedResumesService *generatedresumes.Service
	DocumentsHandler        *documents.Handler
	GeneratedResumesHandler *generatedresumes.Handler
}

// Build wires dependencies and routes from cfg.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	telemetry.SetLevel(cfg.LogLevel)

	llmClient, err := BuildLLM(context.Background(), cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:   cfg,
		LLM:      llmClient,
		Renderer: BuildRenderer(cfg),
	}
	app.Extractor = service.NewExtractor(llmClient)
	app.DocumentsService = &documents.Service{
		Extractor:      app.Extractor,
		MaxUploadBytes: cfg.MaxUploadBytes,
	}
	app.GeneratedResumesService = &generatedresumes.Service{Renderer: app.Renderer}
	app.DocumentsHandler = documents.NewHandler(app.DocumentsService)
	app.GeneratedResumesHandler = generatedresumes.NewHandler(app.GeneratedResumesService)

	if app.DocumentsHandler == nil || app.GeneratedResumesHandler == nil {
		_ = CloseLLM(llmClient)
		return nil, errors.New("failed to initialize handlers")
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:                 app.Config,
		DocumentHandler:        app.DocumentsHandler,
		GeneratedResumeHandler: app.GeneratedResumesHandler,
	})

	telemetry.Info("bootstrap.ready", map[string]any{
		"env":           cfg.Env,
		"llm_provider":  cfg.LLMProvider,
		"llm_model":     cfg.LLMModel,
		"render_engine": cfg.RenderEngine,
	})
	return app, nil
}

// Close releases provider connections held by the app.
func (a *App) Close() error {
	if a == nil {
		return nil
	}
	return CloseLLM(a.LLM)
}

// CloseLLM closes client when the provider holds a connection.
func CloseLLM(client llm.Client) error {
	if c, ok := client.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// BuildLLM returns the configured provider client. Provider "none" yields a
// placeholder that reports the extractor as unavailable.
func BuildLLM(ctx context.Context, cfg config.Config) (llm.Client, error) {
	switch cfg.LLMProvider {
	case "openai":
		client, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel)
		if err != nil {
			return nil, err
		}
		return client, nil
	case "gemini":
		if strings.TrimSpace(cfg.GeminiProject) == "" {
			if isDevLike(cfg.Env) {
				telemetry.Warn("bootstrap.llm_disabled", map[string]any{"reason": "GEMINI_PROJECT empty"})
				return llm.PlaceholderClient{}, nil
			}
			return nil, fmt.Errorf("GEMINI_PROJECT is required for LLM_PROVIDER=gemini")
		}
		return gemini.NewClient(ctx, gemini.Options{
			Project:         cfg.GeminiProject,
			Location:        cfg.GeminiLocation,
			Model:           cfg.LLMModel,
			CredentialsFile: cfg.GeminiCredentialsFile,
		})
	default:
		return llm.PlaceholderClient{}, nil
	}
}

// BuildRenderer selects the PDF engine.
func BuildRenderer(cfg config.Config) render.Renderer {
	if cfg.RenderEngine == "chrome" {
		return render.Renderer{PDF: render.ChromePrinter{ExecPath: cfg.ChromePath, Timeout: chromeTimeout}}
	}
	return render.Renderer{PDF: render.PDFWriter{}}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
