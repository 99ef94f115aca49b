package cmd

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"

	"github.com/dmezquita/workspacectl/internal/geometry"
	"github.com/dmezquita/workspacectl/internal/launcher"
	"github.com/dmezquita/workspacectl/internal/monitor"
	"github.com/dmezquita/workspacectl/internal/platform"
	"github.com/dmezquita/workspacectl/internal/template"
	"github.com/dmezquita/workspacectl/internal/version"
)

// mcpServer wraps the MCP server with the platform provider. Launches
// are serialized: concurrent launch_template calls would break the
// per-group window attribution that the scheduler guarantees within a
// single run.
type mcpServer struct {
	provider *platform.Provider
	launchMu sync.Mutex
	mcp      *mcpserver.MCPServer
}

// newMCPServer creates and configures an MCP server with all
// workspacectl tools.
func newMCPServer() (*mcpServer, error) {
	provider, err := platform.NewProvider()
	if err != nil {
		return nil, err
	}

	s := &mcpServer{provider: provider}
	s.mcp = mcpserver.NewMCPServer("workspacectl", version.Version)
	s.registerTools()
	return s, nil
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(transport string, port int) error {
	switch transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", transport)
	}
}

func (s *mcpServer) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("list_templates",
			mcp.WithDescription("List available workspace templates with their descriptions"),
		),
		s.handleListTemplates,
	)

	s.mcp.AddTool(
		mcp.NewTool("list_monitors",
			mcp.WithDescription("List detected monitors with name, pixel geometry and primary marker"),
		),
		s.handleListMonitors,
	)

	s.mcp.AddTool(
		mcp.NewTool("resolve_position",
			mcp.WithDescription("Resolve a position spec (shortcut name or anchor/axis tokens) to an absolute pixel rectangle on a monitor"),
			mcp.WithString("position", mcp.Description("Position spec, e.g. 'left-third' or 'tr w:1/3 h:100%'"), mcp.Required()),
			mcp.WithString("monitor", mcp.Description("Monitor name (default: primary)")),
		),
		s.handleResolvePosition,
	)

	s.mcp.AddTool(
		mcp.NewTool("launch_template",
			mcp.WithDescription("Launch a workspace template: start its applications and arrange their windows. Returns one outcome per window."),
			mcp.WithString("template", mcp.Description("Template name"), mcp.Required()),
			mcp.WithNumber("timeout", mcp.Description("Seconds to wait for each new window (default 5)")),
		),
		s.handleLaunchTemplate,
	)
}

// toolYAML serializes a result for an MCP text response.
func toolYAML(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(b)
}

// StringParam reads a string tool argument with a default.
func StringParam(params map[string]interface{}, key, def string) string {
	if v, ok := params[key].(string); ok && v != "" {
		return v
	}
	return def
}

// NumberParam reads a numeric tool argument with a default.
func NumberParam(params map[string]interface{}, key string, def float64) float64 {
	if v, ok := params[key].(float64); ok {
		return v
	}
	return def
}

func (s *mcpServer) handleListTemplates(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	infos, err := template.List()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(toolYAML(TemplatesResult{Dir: template.Dir(), Templates: infos})), nil
}

func (s *mcpServer) handleListMonitors(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	registry, err := monitor.Detect(s.provider.Monitors)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	infos := make([]MonitorInfo, 0, len(registry.Names()))
	for _, name := range registry.Names() {
		infos = append(infos, MonitorInfo{
			Name:    name,
			Rect:    registry.Lookup(name),
			Primary: name == registry.Primary(),
		})
	}
	return mcp.NewToolResultText(toolYAML(infos)), nil
}

func (s *mcpServer) handleResolvePosition(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	position := StringParam(params, "position", "")
	if position == "" {
		return mcp.NewToolResultError("position is required"), nil
	}
	monName := StringParam(params, "monitor", "primary")

	registry, err := monitor.Detect(s.provider.Monitors)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	rect, err := geometry.Resolve(geometry.Sym(position), registry.Lookup(monName))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(toolYAML(ResolveResult{Position: position, Monitor: monName, Rect: rect})), nil
}

func (s *mcpServer) handleLaunchTemplate(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	name := StringParam(params, "template", "")
	if name == "" {
		return mcp.NewToolResultError("template is required"), nil
	}

	tpl, err := template.Load(name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.launchMu.Lock()
	defer s.launchMu.Unlock()

	registry, err := monitor.Detect(s.provider.Monitors)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	sched := launcher.New(s.provider, registry)
	if timeout := NumberParam(params, "timeout", 0); timeout > 0 {
		sched.DiscoveryTimeout = time.Duration(timeout * float64(time.Second))
	}
	outcomes := sched.Run(tpl.Windows)

	result := LaunchResult{Template: tpl.Name, Windows: outcomes}
	for _, out := range outcomes {
		if !out.OK {
			result.Failed++
		}
	}
	if result.Failed > 0 {
		return mcp.NewToolResultError(toolYAML(result)), nil
	}
	return mcp.NewToolResultText(toolYAML(result)), nil
}
