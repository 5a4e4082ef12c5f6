package mcp

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"
	"sync"

	"github.com/jcdickinson/ferrisdoc/internal/docs"
	"github.com/jcdickinson/ferrisdoc/internal/generate"
	"github.com/jcdickinson/ferrisdoc/internal/render"
	"github.com/jcdickinson/ferrisdoc/internal/rpc"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

//go:embed instructions.md
var instructions string

type Server struct {
	mcpServer *server.MCPServer
	docRoot   string
	runner    *generate.Runner
	logger    *slog.Logger

	mu      sync.Mutex
	stopped bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewServer builds the MCP endpoint over the documentation under docRoot.
// runner may be nil, in which case generate_docs is not offered.
func NewServer(docRoot string, runner *generate.Runner, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{docRoot: docRoot, runner: runner, logger: logger}

	mcpServer := server.NewMCPServer(
		"ferrisdoc",
		"0.1.0",
		server.WithInstructions(instructions),
		server.WithToolCapabilities(true),
	)

	s.registerTools(mcpServer)

	s.mcpServer = mcpServer
	return s
}

func (s *Server) registerTools(mcpServer *server.MCPServer) {
	mcpServer.AddTool(
		mcp.NewTool("list_crates",
			mcp.WithDescription("List all available Rust crates"),
		),
		s.handleListCrates,
	)

	mcpServer.AddTool(
		mcp.NewTool("lookup_crate",
			mcp.WithDescription("Lookup information about a specific Rust crate"),
			mcp.WithString("name",
				mcp.Description("The name of the Rust crate"),
				mcp.Required(),
			),
			mcp.WithNumber("limit",
				mcp.Description("Maximum number of items to return (default: no limit)"),
			),
			mcp.WithNumber("offset",
				mcp.Description("Number of items to skip for pagination (default: 0)"),
			),
			mcp.WithString("item_type",
				mcp.Description("Filter by item type: function, struct, enum, trait, macro, type, constant, module"),
			),
			mcp.WithString("query",
				mcp.Description("Search term to filter items by name or description"),
			),
		),
		s.handleLookupCrate,
	)

	if s.runner != nil {
		mcpServer.AddTool(
			mcp.NewTool("generate_docs",
				mcp.WithDescription("Generate documentation for the current project with cargo doc"),
				mcp.WithArray("flags",
					mcp.Description("Additional flags passed to cargo doc (e.g. --no-deps)"),
					mcp.Items(map[string]interface{}{"type": "string"}),
				),
			),
			s.handleGenerateDocs,
		)
	}
}

func (s *Server) handleListCrates(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	crates, err := docs.ListCrates(s.docRoot)
	if err != nil {
		s.logger.Warn("list_crates failed", "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("failed to list crates: %v", err)), nil
	}
	s.logger.Info("list_crates", "count", len(crates))
	return mcp.NewToolResultText(strings.Join(crates, "\n")), nil
}

func (s *Server) handleLookupCrate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	lookupReq, err := parseLookupRequest(req.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	doc, err := docs.Lookup(s.docRoot, lookupReq.Name, lookupReq.Query())
	if err != nil {
		s.logger.Warn("lookup_crate failed", "crate", lookupReq.Name, "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("failed to lookup crate '%s': %v", lookupReq.Name, err)), nil
	}
	s.logger.Info("lookup_crate", "crate", lookupReq.Name, "items", len(doc.Items))

	out, err := render.String(doc, render.FormatJSON)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(out), nil
}

func (s *Server) handleGenerateDocs(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var genReq rpc.GenerateRequest
	if flagsRaw, ok := req.GetArguments()["flags"]; ok && flagsRaw != nil {
		flagsJSON, err := json.Marshal(flagsRaw)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid flags parameter: %v", err)), nil
		}
		if err := json.Unmarshal(flagsJSON, &genReq.Flags); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid flags format: %v", err)), nil
		}
	}

	out, err := s.runner.Run(ctx, genReq.Flags...)
	if err != nil {
		s.logger.Warn("generate_docs failed", "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("failed to generate documentation: %v", err)), nil
	}
	return mcp.NewToolResultText(out), nil
}

func parseLookupRequest(args map[string]any) (rpc.LookupRequest, error) {
	var r rpc.LookupRequest

	name, _ := args["name"].(string)
	if name == "" {
		return r, fmt.Errorf("missing required parameter: name")
	}
	r.Name = name
	r.ItemType, _ = args["item_type"].(string)
	r.Query, _ = args["query"].(string)

	var err error
	if r.Limit, err = countArg(args, "limit"); err != nil {
		return r, err
	}
	if r.Offset, err = countArg(args, "offset"); err != nil {
		return r, err
	}
	return r, nil
}

// countArg reads an optional non-negative integer argument. JSON numbers
// arrive as float64.
func countArg(args map[string]any, key string) (*int, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return nil, nil
	}
	f, ok := raw.(float64)
	if !ok || f < 0 || f != math.Trunc(f) {
		return nil, fmt.Errorf("invalid %s parameter: must be a non-negative integer", key)
	}
	n := int(f)
	return &n, nil
}

// Run serves MCP over stdin/stdout until ctx is cancelled, Shutdown is
// called, or the client closes stdin.
func (s *Server) Run(ctx context.Context) error {
	return s.Serve(ctx, os.Stdin, os.Stdout)
}

// Serve is Run over an arbitrary transport.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return nil
	}
	done := make(chan struct{})
	s.cancel, s.done = cancel, done
	s.mu.Unlock()
	defer close(done)

	stdio := server.NewStdioServer(s.mcpServer)
	stdio.SetErrorLogger(slog.NewLogLogger(s.logger.Handler(), slog.LevelError))

	err := stdio.Listen(ctx, in, out)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Shutdown stops a running Serve and waits for it to return, or for ctx to
// expire. A Serve that has not started yet returns immediately.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.stopped = true
	cancel, done := s.cancel, s.done
	s.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
