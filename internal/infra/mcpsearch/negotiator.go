package mcpsearch

import (
	"context"
	"log/slog"
	"sync"

	"pricing-panel/internal/pkg/config"
	"pricing-panel/internal/pkg/errs"
	"pricing-panel/internal/usecase/shared"

	einomcp "github.com/cloudwego/eino-ext/components/tool/mcp"
	"github.com/cloudwego/eino/components/tool"
	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
)

const (
	clientName    = "pricing-panel"
	clientVersion = "1.0.0"

	reasonNotConfigured = "search credentials not configured"
)

var ErrNoTools = errs.New("tool server exposes no tools")

// SessionStarter opens a tool session. The default starts the configured
// stdio server as a subprocess.
type SessionStarter func(ctx context.Context, cfg config.SearchConfig) (shared.ToolSession, error)

// Negotiator decides per request whether the search tool can be offered to the model.
type Negotiator struct {
	cfg    config.SearchConfig
	start  SessionStarter
	logger *slog.Logger
}

func NewNegotiator(cfg config.SearchConfig, logger *slog.Logger) *Negotiator {
	return NewNegotiatorWithStarter(cfg, StartStdioSession, logger)
}

func NewNegotiatorWithStarter(cfg config.SearchConfig, start SessionStarter, logger *slog.Logger) *Negotiator {
	return &Negotiator{cfg: cfg, start: start, logger: logger}
}

var _ shared.SearchToolNegotiator = (*Negotiator)(nil)

func (n *Negotiator) Negotiate(ctx context.Context) shared.ToolCapability {
	if !n.cfg.Enabled() {
		return shared.ToolsUnavailable(reasonNotConfigured)
	}

	startCtx := ctx
	if n.cfg.StartTimeout > 0 {
		var cancel context.CancelFunc
		startCtx, cancel = context.WithTimeout(ctx, n.cfg.StartTimeout)
		defer cancel()
	}

	session, err := n.start(startCtx, n.cfg)
	if err != nil {
		n.logger.Warn("search tool unavailable, continuing without it", "error", err.Error())
		return shared.ToolsUnavailable(err.Error())
	}
	return shared.ToolsAvailable(session)
}

// StartStdioSession spawns the search server, performs the MCP handshake and
// loads its tools. The subprocess is stopped again on any failure.
func StartStdioSession(ctx context.Context, cfg config.SearchConfig) (shared.ToolSession, error) {
	env := []string{
		"GOOGLE_API_KEY=" + cfg.APIKey,
		"GOOGLE_SEARCH_ENGINE_ID=" + cfg.EngineID,
	}
	cli, err := client.NewStdioMCPClient(cfg.Command, env, cfg.Args...)
	if err != nil {
		return nil, errs.Wrap(err, "start search tool server")
	}
	session := &stdioSession{cli: cli}

	initReq := mcp.InitializeRequest{}
	initReq.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initReq.Params.ClientInfo = mcp.Implementation{Name: clientName, Version: clientVersion}
	if _, err := cli.Initialize(ctx, initReq); err != nil {
		_ = session.Close()
		return nil, errs.Wrap(err, "initialize search tool session")
	}

	tools, err := einomcp.GetTools(ctx, &einomcp.Config{Cli: cli})
	if err != nil {
		_ = session.Close()
		return nil, errs.Wrap(err, "list search tools")
	}
	if len(tools) == 0 {
		_ = session.Close()
		return nil, ErrNoTools
	}
	session.tools = tools
	return session, nil
}

type stdioSession struct {
	cli      *client.Client
	tools    []tool.BaseTool
	once     sync.Once
	closeErr error
}

func (s *stdioSession) Tools() []tool.BaseTool {
	return s.tools
}

func (s *stdioSession) Close() error {
	s.once.Do(func() {
		s.closeErr = s.cli.Close()
	})
	return s.closeErr
}
