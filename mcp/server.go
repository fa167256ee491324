// Package mcp exposes device automation as Model Context Protocol tools over
// stdio, for use by MCP-capable clients.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/droidctl/droidctl/commands"
)

// App is the surface the MCP tools call into. It mirrors the command layer so
// tests can substitute a mock without touching adb.
type App interface {
	Devices(showAll bool) *commands.CommandResponse
	Screenshot(req commands.ScreenshotRequest) *commands.CommandResponse
	Tap(req commands.TapRequest) *commands.CommandResponse
	LongPress(req commands.LongPressRequest) *commands.CommandResponse
	Swipe(req commands.SwipeRequest) *commands.CommandResponse
	Text(req commands.TextRequest) *commands.CommandResponse
	Button(req commands.ButtonRequest) *commands.CommandResponse
	KeyEvent(req commands.KeyEventRequest) *commands.CommandResponse
	Inspect(req commands.InspectRequest) *commands.CommandResponse
	Find(req commands.FindRequest) *commands.CommandResponse
	TapElement(req commands.TapElementRequest) *commands.CommandResponse
	WaitFor(req commands.WaitForRequest) *commands.CommandResponse
	LaunchApp(req commands.AppRequest) *commands.CommandResponse
	TerminateApp(req commands.AppRequest) *commands.CommandResponse
	Doctor() *commands.CommandResponse
}

// commandApp backs App with the real command layer.
type commandApp struct {
	version string
}

func (a commandApp) Devices(showAll bool) *commands.CommandResponse {
	return commands.DevicesCommand(showAll)
}

func (a commandApp) Screenshot(req commands.ScreenshotRequest) *commands.CommandResponse {
	return commands.ScreenshotCommand(req)
}

func (a commandApp) Tap(req commands.TapRequest) *commands.CommandResponse {
	return commands.TapCommand(req)
}

func (a commandApp) LongPress(req commands.LongPressRequest) *commands.CommandResponse {
	return commands.LongPressCommand(req)
}

func (a commandApp) Swipe(req commands.SwipeRequest) *commands.CommandResponse {
	return commands.SwipeCommand(req)
}

func (a commandApp) Text(req commands.TextRequest) *commands.CommandResponse {
	return commands.TextCommand(req)
}

func (a commandApp) Button(req commands.ButtonRequest) *commands.CommandResponse {
	return commands.ButtonCommand(req)
}

func (a commandApp) KeyEvent(req commands.KeyEventRequest) *commands.CommandResponse {
	return commands.KeyEventCommand(req)
}

func (a commandApp) Inspect(req commands.InspectRequest) *commands.CommandResponse {
	return commands.InspectCommand(req)
}

func (a commandApp) Find(req commands.FindRequest) *commands.CommandResponse {
	return commands.FindCommand(req)
}

func (a commandApp) TapElement(req commands.TapElementRequest) *commands.CommandResponse {
	return commands.TapElementCommand(req)
}

func (a commandApp) WaitFor(req commands.WaitForRequest) *commands.CommandResponse {
	return commands.WaitForCommand(req)
}

func (a commandApp) LaunchApp(req commands.AppRequest) *commands.CommandResponse {
	return commands.LaunchAppCommand(req)
}

func (a commandApp) TerminateApp(req commands.AppRequest) *commands.CommandResponse {
	return commands.TerminateAppCommand(req)
}

func (a commandApp) Doctor() *commands.CommandResponse {
	return commands.DoctorCommand(a.version)
}

// Server wraps the MCP server and its tool registrations
type Server struct {
	app    App
	server *server.MCPServer
}

// NewServer creates an MCP server with all droidctl tools registered
func NewServer(app App, version string) *Server {
	mcpServer := server.NewMCPServer(
		"droidctl",
		version,
		server.WithToolCapabilities(true),
		server.WithLogging(),
	)

	s := &Server{
		app:    app,
		server: mcpServer,
	}

	s.registerDeviceTools()
	s.registerInputTools()
	s.registerUITools()
	s.registerAppTools()

	return s
}

// Serve runs an MCP server over stdio until stdin closes or the process is
// interrupted.
func Serve(version string) error {
	s := NewServer(commandApp{version: version}, version)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)

	go func() {
		<-sigChan
		cancel()
	}()

	stdio := server.NewStdioServer(s.server)
	return stdio.Listen(ctx, os.Stdin, os.Stdout)
}

// resultFromResponse converts a command response into a tool result. Command
// failures surface as tool errors, not protocol errors, so the client sees
// the message.
func resultFromResponse(response *commands.CommandResponse) (*mcp.CallToolResult, error) {
	if response.Status == "error" {
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent(response.Error),
			},
			IsError: true,
		}, nil
	}

	if response.Data == nil {
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent("ok"),
			},
		}, nil
	}

	jsonData, err := json.MarshalIndent(response.Data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(string(jsonData)),
		},
	}, nil
}

// stringArg reads an optional string argument
func stringArg(args map[string]interface{}, key string) string {
	v, _ := args[key].(string)
	return v
}

// intArg reads an integer argument. JSON numbers arrive as float64.
func intArg(args map[string]interface{}, key string) (int, bool) {
	v, ok := args[key].(float64)
	if !ok {
		return 0, false
	}
	return int(v), true
}

// boolArg reads an optional boolean argument
func boolArg(args map[string]interface{}, key string) bool {
	v, _ := args[key].(bool)
	return v
}
