package llm

import (
	"context"
	"log/slog"

	einocb "github.com/cloudwego/eino/callbacks"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/tool"
	callbackHelper "github.com/cloudwego/eino/utils/callbacks"
)

// NewObserver logs model and tool lifecycle events of an agent run.
func NewObserver(logger *slog.Logger) einocb.Handler {
	return callbackHelper.NewHandlerHelper().
		ChatModel(&callbackHelper.ModelCallbackHandler{
			OnEnd: func(ctx context.Context, info *einocb.RunInfo, output *model.CallbackOutput) context.Context {
				if output != nil && output.TokenUsage != nil {
					logger.Debug("model step finished",
						"component", info.Name,
						"prompt_tokens", output.TokenUsage.PromptTokens,
						"completion_tokens", output.TokenUsage.CompletionTokens)
				}
				return ctx
			},
			OnError: func(ctx context.Context, info *einocb.RunInfo, err error) context.Context {
				logger.Warn("model step failed", "component", info.Name, "error", err)
				return ctx
			},
		}).
		Tool(&callbackHelper.ToolCallbackHandler{
			OnStart: func(ctx context.Context, info *einocb.RunInfo, input *tool.CallbackInput) context.Context {
				args := ""
				if input != nil {
					args = input.ArgumentsInJSON
				}
				logger.Info("tool call", "tool", info.Name, "arguments", args)
				return ctx
			},
			OnError: func(ctx context.Context, info *einocb.RunInfo, err error) context.Context {
				logger.Warn("tool call failed", "tool", info.Name, "error", err)
				return ctx
			},
		}).
		Handler()
}
