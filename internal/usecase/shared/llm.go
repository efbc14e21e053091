package shared

import (
	"context"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"
)

// ToolSession is a live connection to a tool server. Close must be safe to
// call more than once.
type ToolSession interface {
	Tools() []tool.BaseTool
	Close() error
}

// ToolCapability is the outcome of tool negotiation: either a usable session
// or the reason there is none.
type ToolCapability struct {
	session ToolSession
	reason  string
}

func ToolsAvailable(session ToolSession) ToolCapability {
	return ToolCapability{session: session}
}

func ToolsUnavailable(reason string) ToolCapability {
	return ToolCapability{reason: reason}
}

func (c ToolCapability) Session() (ToolSession, bool) {
	return c.session, c.session != nil
}

func (c ToolCapability) Reason() string {
	return c.reason
}

// Close releases the session if there is one; otherwise it does nothing.
func (c ToolCapability) Close() error {
	if c.session == nil {
		return nil
	}
	return c.session.Close()
}

type SearchToolNegotiator interface {
	// Negotiate never fails; connection problems come back as ToolsUnavailable.
	Negotiate(ctx context.Context) ToolCapability
}

type GenerationRequest struct {
	Messages    []*schema.Message
	Tools       []tool.BaseTool
	Temperature float32
	JSONOnly    bool
}

type TextGenerator interface {
	Generate(ctx context.Context, req GenerationRequest) (string, error)
	ModelName() string
}
