package llm

import (
	"context"
	"fmt"
	"log/slog"

	"pricing-panel/internal/pkg/config"
	"pricing-panel/internal/pkg/errs"
	"pricing-panel/internal/usecase/shared"

	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/flow/agent"
	"github.com/cloudwego/eino/flow/agent/react"
	"github.com/cloudwego/eino/schema"
	"google.golang.org/genai"
)

var ErrEmptyCompletion = errs.New("model returned an empty completion")

const jsonMIMEType = "application/json"

func NewGenAIClient(ctx context.Context, cfg config.LLMConfig) (*genai.Client, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions.BaseURL = cfg.BaseURL
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("error creating Gemini client: %w", err)
	}
	return client, nil
}

// GeminiGenerator makes exactly one model request per Generate call when no
// tools are given. With tools it runs a ReAct loop so the model can call them
// before answering.
type GeminiGenerator struct {
	client *genai.Client
	cfg    config.LLMConfig
	logger *slog.Logger
}

func NewGeminiGenerator(client *genai.Client, cfg config.LLMConfig, logger *slog.Logger) *GeminiGenerator {
	return &GeminiGenerator{client: client, cfg: cfg, logger: logger}
}

var _ shared.TextGenerator = (*GeminiGenerator)(nil)

func (g *GeminiGenerator) ModelName() string {
	return g.cfg.Model
}

func (g *GeminiGenerator) Generate(ctx context.Context, req shared.GenerationRequest) (string, error) {
	if g.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.Timeout)
		defer cancel()
	}

	var (
		text string
		err  error
	)
	if len(req.Tools) == 0 {
		text, err = g.generateDirect(ctx, req)
	} else {
		text, err = g.generateWithTools(ctx, req)
	}
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}

func (g *GeminiGenerator) generateDirect(ctx context.Context, req shared.GenerationRequest) (string, error) {
	system, contents := toGenAIContents(req.Messages)

	genCfg := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr(req.Temperature),
		SystemInstruction: system,
	}
	if g.cfg.MaxTokens > 0 {
		genCfg.MaxOutputTokens = int32(g.cfg.MaxTokens)
	}
	if req.JSONOnly {
		genCfg.ResponseMIMEType = jsonMIMEType
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.cfg.Model, contents, genCfg)
	if err != nil {
		return "", errs.Wrap(err, "gemini generate content")
	}
	if resp.UsageMetadata != nil {
		g.logger.Debug("gemini usage",
			"model", g.cfg.Model,
			"prompt_tokens", resp.UsageMetadata.PromptTokenCount,
			"completion_tokens", resp.UsageMetadata.CandidatesTokenCount)
	}
	return resp.Text(), nil
}

// generateWithTools cannot ask for a JSON response type: Gemini rejects
// function calling combined with a JSON MIME type. The prompt carries the
// format instead and the caller parses strictly.
func (g *GeminiGenerator) generateWithTools(ctx context.Context, req shared.GenerationRequest) (string, error) {
	temperature := req.Temperature
	modelCfg := &gemini.Config{
		Client:      g.client,
		Model:       g.cfg.Model,
		Temperature: &temperature,
	}
	if g.cfg.MaxTokens > 0 {
		maxTokens := g.cfg.MaxTokens
		modelCfg.MaxTokens = &maxTokens
	}

	chatModel, err := gemini.NewChatModel(ctx, modelCfg)
	if err != nil {
		return "", errs.Wrap(err, "create gemini chat model")
	}

	ag, err := react.NewAgent(ctx, &react.AgentConfig{
		ToolCallingModel: chatModel,
		ToolsConfig: compose.ToolsNodeConfig{
			Tools:               req.Tools,
			UnknownToolsHandler: unknownToolHandler(g.logger),
		},
		MaxStep: g.maxSteps(),
	})
	if err != nil {
		return "", errs.Wrap(err, "create react agent")
	}

	out, err := ag.Generate(ctx, req.Messages, agent.WithComposeOptions(compose.WithCallbacks(NewObserver(g.logger))))
	if err != nil {
		return "", errs.Wrap(err, "react agent generate")
	}
	if out == nil {
		return "", ErrEmptyCompletion
	}
	return out.Content, nil
}

func (g *GeminiGenerator) maxSteps() int {
	if g.cfg.MaxSteps > 0 {
		return g.cfg.MaxSteps
	}
	return 8
}

func toGenAIContents(msgs []*schema.Message) (*genai.Content, []*genai.Content) {
	var system *genai.Content
	contents := make([]*genai.Content, 0, len(msgs))
	for _, m := range msgs {
		if m == nil {
			continue
		}
		switch m.Role {
		case schema.System:
			system = genai.NewContentFromText(m.Content, genai.RoleUser)
		case schema.Assistant:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		}
	}
	return system, contents
}

func unknownToolHandler(logger *slog.Logger) func(ctx context.Context, name, input string) (string, error) {
	return func(_ context.Context, name, input string) (string, error) {
		logger.Warn("model called an unknown tool", "tool_name", name, "arguments", input)
		return fmt.Sprintf("{\"error\":\"unknown_tool\",\"name\":%q}", name), nil
	}
}
