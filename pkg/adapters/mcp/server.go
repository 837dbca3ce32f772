package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/friendly"
	"github.com/aretw0/friendly/pkg/docs"
)

// ReferenceResponse is the structured result of the get_reference tool.
type ReferenceResponse struct {
	Class       string       `json:"class" jsonschema_description:"Documented class name"`
	Member      string       `json:"member" jsonschema_description:"Member name"`
	Description string       `json:"description" jsonschema_description:"Reference description"`
	Params      []docs.Param `json:"params,omitempty" jsonschema_description:"Documented parameters"`
	Overloads   int          `json:"overloads" jsonschema_description:"Number of alternative signatures"`
	Help        string       `json:"help" jsonschema_description:"Help text attached to the wrapped method"`
	URL         string       `json:"url" jsonschema_description:"Online reference page"`
}

// ClassEntry is one element of the friendly://classes resource.
type ClassEntry struct {
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

// Server exposes an engine's reference documentation as an MCP Server.
type Server struct {
	engine    *friendly.Engine
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine *friendly.Engine) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("friendly-mcp", strings.TrimSpace(friendly.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops it when
// ctx is cancelled.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	// TOOL: get_reference
	referenceTool := mcp.NewTool("get_reference",
		mcp.WithDescription("Get the reference entry and help text for a documented member."),
		mcp.WithString("class", mcp.Required(), mcp.Description("Documented class name, e.g. p5 or p5.Vector")),
		mcp.WithString("member", mcp.Required(), mcp.Description("Member name, e.g. ellipse")),
		mcp.WithOutputSchema[ReferenceResponse](),
	)
	s.mcpServer.AddTool(referenceTool, mcp.NewStructuredToolHandler(s.handleGetReference))

	// TOOL: list_classes
	s.mcpServer.AddTool(mcp.NewTool("list_classes",
		mcp.WithDescription("List the documented classes and their members."),
	), s.handleListClasses)

	// TOOL: lint_docs
	s.mcpServer.AddTool(mcp.NewTool("lint_docs",
		mcp.WithDescription("Report duplicate, unnamed and unrecognized documentation entries."),
	), s.handleLint)
}

func (s *Server) handleGetReference(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ReferenceResponse, error) {
	class, _ := args["class"].(string)
	member, _ := args["member"].(string)

	item, ok := s.engine.Docs().Lookup(class, member)
	if !ok {
		return ReferenceResponse{}, fmt.Errorf("no reference for %s.%s", class, member)
	}

	ref := s.engine.Reference()
	return ReferenceResponse{
		Class:       item.Class,
		Member:      item.Name,
		Description: item.Description,
		Params:      item.Params,
		Overloads:   len(item.Overloads),
		Help:        ref.Help(item),
		URL:         ref.URL(item),
	}, nil
}

func (s *Server) handleListClasses(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.Marshal(s.classes())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode failed: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) handleLint(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	diags := docs.Lint(s.engine.Docs(), s.engine.Namespace().Name())
	if len(diags) == 0 {
		return mcp.NewToolResultText("no problems found"), nil
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = d.String()
	}
	return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
}

func (s *Server) classes() []ClassEntry {
	classes := s.engine.Docs()
	out := make([]ClassEntry, 0, len(classes.ClassNames()))
	for _, name := range classes.ClassNames() {
		entry := ClassEntry{Name: name, Members: []string{}}
		seen := make(map[string]bool)
		for _, item := range classes.Members(name) {
			if !seen[item.Name] {
				seen[item.Name] = true
				entry.Members = append(entry.Members, item.Name)
			}
		}
		out = append(out, entry)
	}
	return out
}

func (s *Server) registerResources() {
	// EXPOSE: friendly://classes
	s.mcpServer.AddResource(mcp.NewResource("friendly://classes", "Documented Classes",
		mcp.WithMIMEType("application/json"),
	), s.readClasses)

	// EXPOSE: friendly://report
	s.mcpServer.AddResource(mcp.NewResource("friendly://report", "Proxying Report",
		mcp.WithMIMEType("application/json"),
	), s.readReport)
}

func (s *Server) readClasses(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource("friendly://classes", s.classes())
}

func (s *Server) readReport(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource("friendly://report", s.engine.Report())
}

func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	jsonBytes, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", uri, err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}
