package mcp

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/droidctl/droidctl/commands"
)

// registerDeviceTools registers device listing, screenshot and diagnostics
// tools
func (s *Server) registerDeviceTools() {
	s.server.AddTool(
		mcp.NewTool("android_devices",
			mcp.WithDescription("List connected Android devices and emulators"),
			mcp.WithBoolean("all",
				mcp.Description("Include offline emulators known to the local AVD manager"),
			),
		),
		s.handleDevices,
	)

	s.server.AddTool(
		mcp.NewTool("android_screenshot",
			mcp.WithDescription("Take a screenshot of the device screen, returned as an image"),
			mcp.WithString("device",
				mcp.Description("Device serial. Omit to use the active device."),
			),
			mcp.WithString("format",
				mcp.Description("Image format, 'png' (default) or 'jpeg'"),
			),
			mcp.WithNumber("quality",
				mcp.Description("JPEG quality 1-100 (default: 90)"),
			),
		),
		s.handleScreenshot,
	)

	s.server.AddTool(
		mcp.NewTool("android_doctor",
			mcp.WithDescription("Check the local environment: adb path and version, ANDROID_HOME, connected devices, active device resolution"),
		),
		s.handleDoctor,
	)
}

func (s *Server) handleDevices(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	return resultFromResponse(s.app.Devices(boolArg(args, "all")))
}

func (s *Server) handleScreenshot(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	req := commands.ScreenshotRequest{
		Device:     stringArg(args, "device"),
		Format:     stringArg(args, "format"),
		OutputPath: "-",
	}
	if quality, ok := intArg(args, "quality"); ok {
		req.Quality = quality
	}

	response := s.app.Screenshot(req)
	if response.Status == "error" {
		return resultFromResponse(response)
	}

	shot, ok := response.Data.(commands.ScreenshotResponse)
	if !ok {
		return nil, fmt.Errorf("unexpected screenshot result type %T", response.Data)
	}

	// sanity check the payload before handing it to the client
	if _, err := base64.StdEncoding.DecodeString(shot.Data); err != nil {
		return nil, fmt.Errorf("invalid screenshot data: %w", err)
	}

	mimeType := "image/png"
	if shot.Format == "jpeg" {
		mimeType = "image/jpeg"
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewImageContent(shot.Data, mimeType),
		},
	}, nil
}

func (s *Server) handleDoctor(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return resultFromResponse(s.app.Doctor())
}
