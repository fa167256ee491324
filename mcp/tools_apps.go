package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/droidctl/droidctl/commands"
)

// registerAppTools registers app lifecycle tools
func (s *Server) registerAppTools() {
	s.server.AddTool(
		mcp.NewTool("android_launch_app",
			mcp.WithDescription("Launch an app by package name"),
			mcp.WithString("device",
				mcp.Description("Device serial. Omit to use the active device."),
			),
			mcp.WithString("package",
				mcp.Required(),
				mcp.Description("Package name (e.g. com.android.settings)"),
			),
		),
		s.handleLaunchApp,
	)

	s.server.AddTool(
		mcp.NewTool("android_terminate_app",
			mcp.WithDescription("Force-stop an app by package name"),
			mcp.WithString("device",
				mcp.Description("Device serial. Omit to use the active device."),
			),
			mcp.WithString("package",
				mcp.Required(),
				mcp.Description("Package name to stop"),
			),
		),
		s.handleTerminateApp,
	)
}

func (s *Server) handleLaunchApp(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	pkg := stringArg(args, "package")
	if pkg == "" {
		return nil, fmt.Errorf("package is required")
	}

	return resultFromResponse(s.app.LaunchApp(commands.AppRequest{
		Device:  stringArg(args, "device"),
		Package: pkg,
	}))
}

func (s *Server) handleTerminateApp(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	pkg := stringArg(args, "package")
	if pkg == "" {
		return nil, fmt.Errorf("package is required")
	}

	return resultFromResponse(s.app.TerminateApp(commands.AppRequest{
		Device:  stringArg(args, "device"),
		Package: pkg,
	}))
}
