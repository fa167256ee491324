package mcp

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/droidctl/droidctl/commands"
)

// registerInputTools registers touch and keyboard input tools
func (s *Server) registerInputTools() {
	s.server.AddTool(
		mcp.NewTool("android_tap",
			mcp.WithDescription("Tap the screen at the given coordinates"),
			mcp.WithString("device",
				mcp.Description("Device serial. Omit to use the active device."),
			),
			mcp.WithNumber("x",
				mcp.Required(),
				mcp.Description("X coordinate in pixels"),
			),
			mcp.WithNumber("y",
				mcp.Required(),
				mcp.Description("Y coordinate in pixels"),
			),
		),
		s.handleTap,
	)

	s.server.AddTool(
		mcp.NewTool("android_longpress",
			mcp.WithDescription("Long press the screen at the given coordinates"),
			mcp.WithString("device",
				mcp.Description("Device serial. Omit to use the active device."),
			),
			mcp.WithNumber("x",
				mcp.Required(),
				mcp.Description("X coordinate in pixels"),
			),
			mcp.WithNumber("y",
				mcp.Required(),
				mcp.Description("Y coordinate in pixels"),
			),
		),
		s.handleLongPress,
	)

	s.server.AddTool(
		mcp.NewTool("android_swipe",
			mcp.WithDescription("Swipe from one point to another"),
			mcp.WithString("device",
				mcp.Description("Device serial. Omit to use the active device."),
			),
			mcp.WithNumber("x1",
				mcp.Required(),
				mcp.Description("Start X coordinate in pixels"),
			),
			mcp.WithNumber("y1",
				mcp.Required(),
				mcp.Description("Start Y coordinate in pixels"),
			),
			mcp.WithNumber("x2",
				mcp.Required(),
				mcp.Description("End X coordinate in pixels"),
			),
			mcp.WithNumber("y2",
				mcp.Required(),
				mcp.Description("End Y coordinate in pixels"),
			),
			mcp.WithNumber("duration",
				mcp.Description("Swipe duration in milliseconds (default: 300)"),
			),
		),
		s.handleSwipe,
	)

	s.server.AddTool(
		mcp.NewTool("android_text",
			mcp.WithDescription("Type text into the focused input field. ASCII only."),
			mcp.WithString("device",
				mcp.Description("Device serial. Omit to use the active device."),
			),
			mcp.WithString("text",
				mcp.Required(),
				mcp.Description("Text to type"),
			),
		),
		s.handleText,
	)

	s.server.AddTool(
		mcp.NewTool("android_button",
			mcp.WithDescription("Press a hardware button: home, back, menu, enter, delete, power, volume_up, volume_down"),
			mcp.WithString("device",
				mcp.Description("Device serial. Omit to use the active device."),
			),
			mcp.WithString("button",
				mcp.Required(),
				mcp.Description("Button name"),
			),
		),
		s.handleButton,
	)

	s.server.AddTool(
		mcp.NewTool("android_keyevent",
			mcp.WithDescription("Send a raw Android keycode to the device"),
			mcp.WithString("device",
				mcp.Description("Device serial. Omit to use the active device."),
			),
			mcp.WithNumber("keycode",
				mcp.Required(),
				mcp.Description("Android keycode number (e.g. 66 for ENTER)"),
			),
		),
		s.handleKeyEvent,
	)
}

func (s *Server) handleTap(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	x, ok := intArg(args, "x")
	if !ok {
		return nil, fmt.Errorf("x is required")
	}
	y, ok := intArg(args, "y")
	if !ok {
		return nil, fmt.Errorf("y is required")
	}

	return resultFromResponse(s.app.Tap(commands.TapRequest{
		Device: stringArg(args, "device"),
		X:      x,
		Y:      y,
	}))
}

func (s *Server) handleLongPress(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	x, ok := intArg(args, "x")
	if !ok {
		return nil, fmt.Errorf("x is required")
	}
	y, ok := intArg(args, "y")
	if !ok {
		return nil, fmt.Errorf("y is required")
	}

	return resultFromResponse(s.app.LongPress(commands.LongPressRequest{
		Device: stringArg(args, "device"),
		X:      x,
		Y:      y,
	}))
}

func (s *Server) handleSwipe(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	req := commands.SwipeRequest{Device: stringArg(args, "device")}

	var ok bool
	if req.X1, ok = intArg(args, "x1"); !ok {
		return nil, fmt.Errorf("x1 is required")
	}
	if req.Y1, ok = intArg(args, "y1"); !ok {
		return nil, fmt.Errorf("y1 is required")
	}
	if req.X2, ok = intArg(args, "x2"); !ok {
		return nil, fmt.Errorf("x2 is required")
	}
	if req.Y2, ok = intArg(args, "y2"); !ok {
		return nil, fmt.Errorf("y2 is required")
	}
	if duration, ok := intArg(args, "duration"); ok {
		req.DurationMs = duration
	}

	return resultFromResponse(s.app.Swipe(req))
}

func (s *Server) handleText(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	text := stringArg(args, "text")
	if text == "" {
		return nil, fmt.Errorf("text is required")
	}

	return resultFromResponse(s.app.Text(commands.TextRequest{
		Device: stringArg(args, "device"),
		Text:   text,
	}))
}

func (s *Server) handleButton(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	button := stringArg(args, "button")
	if button == "" {
		return nil, fmt.Errorf("button is required")
	}

	return resultFromResponse(s.app.Button(commands.ButtonRequest{
		Device: stringArg(args, "device"),
		Button: button,
	}))
}

func (s *Server) handleKeyEvent(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	keycode, ok := intArg(args, "keycode")
	if !ok {
		return nil, fmt.Errorf("keycode is required")
	}

	return resultFromResponse(s.app.KeyEvent(commands.KeyEventRequest{
		Device:  stringArg(args, "device"),
		Keycode: strconv.Itoa(keycode),
	}))
}
