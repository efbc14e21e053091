package prompts

import (
	"context"
	_ "embed"
	"fmt"

	"pricing-panel/internal/domain/promotion"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"
)

//go:embed template/system.txt
var systemPrompt string

//go:embed template/search_augmented.txt
var searchAugmentedPrompt string

//go:embed template/knowledge_only.txt
var knowledgeOnlyPrompt string

// RenderPromotion builds the system and user messages for mode.
func RenderPromotion(ctx context.Context, mode promotion.Mode, req promotion.Request, today string) ([]*schema.Message, error) {
	user := knowledgeOnlyPrompt
	if mode == promotion.ModeSearchAugmented {
		user = searchAugmentedPrompt
	}

	tpl := prompt.FromMessages(
		schema.GoTemplate,
		schema.SystemMessage(systemPrompt),
		schema.UserMessage(user),
	)
	vars := map[string]any{
		"Today":        today,
		"ProductName":  req.ProductName,
		"Category":     req.Category,
		"CurrentPrice": req.CurrentPrice.StringFixed(2),
	}
	msgs, err := tpl.Format(ctx, vars)
	if err != nil {
		return nil, fmt.Errorf("promotion prompt render: %w", err)
	}
	if len(msgs) != 2 {
		return nil, fmt.Errorf("promotion prompt render: expected 2 messages, got %d", len(msgs))
	}
	return msgs, nil
}
