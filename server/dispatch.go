package server

import (
	"encoding/json"
	"fmt"

	"github.com/droidctl/droidctl/commands"
)

// HandlerFunc is the signature for JSON-RPC method handlers
type HandlerFunc func(params json.RawMessage) (interface{}, error)

// GetMethodRegistry returns a map of method names to handler functions
// This is used by the HTTP endpoint, the WebSocket endpoint and embedded clients
func GetMethodRegistry() map[string]HandlerFunc {
	return map[string]HandlerFunc{
		"devices":           handleDevicesList,
		"device_set_active": handleDeviceSetActive,
		"device_active":     handleDeviceActive,
		"device_reboot":     handleDeviceReboot,
		"screenshot":        handleScreenshot,
		"io_tap":            handleIoTap,
		"io_longpress":      handleIoLongPress,
		"io_swipe":          handleIoSwipe,
		"io_text":           handleIoText,
		"io_button":         handleIoButton,
		"io_keyevent":       handleIoKeyEvent,
		"ui_dump":           handleUIDump,
		"ui_find":           handleUIFind,
		"ui_tap_element":    handleUITapElement,
		"ui_wait":           handleUIWait,
		"apps_launch":       handleAppsLaunch,
		"apps_terminate":    handleAppsTerminate,
		"doctor":            handleDoctor,
	}
}

// Execute dispatches a method call using the registry
// This is the main entry point for embedded clients
func Execute(method string, params json.RawMessage) (interface{}, error) {
	registry := GetMethodRegistry()

	handler, exists := registry[method]
	if !exists {
		return nil, fmt.Errorf("method not found: %s", method)
	}

	return handler(params)
}

// unmarshalParams decodes params into req, tolerating an absent params
// object so methods with all-optional fields work with no params at all.
func unmarshalParams(params json.RawMessage, req interface{}, fields string) error {
	if len(params) == 0 {
		return nil
	}
	if err := json.Unmarshal(params, req); err != nil {
		return fmt.Errorf("invalid parameters: %v. Expected fields: %s", err, fields)
	}
	return nil
}

// resultOf converts a command response into the registry's (result, error)
// convention.
func resultOf(response *commands.CommandResponse) (interface{}, error) {
	if response.Status == "error" {
		return nil, fmt.Errorf("%s", response.Error)
	}
	if response.Data == nil {
		return okResponse, nil
	}
	return response.Data, nil
}

func handleDevicesList(params json.RawMessage) (interface{}, error) {
	// server always shows all devices, offline AVDs included
	return resultOf(commands.DevicesCommand(true))
}

type deviceParams struct {
	Device string `json:"device"`
}

func handleDeviceSetActive(params json.RawMessage) (interface{}, error) {
	var p deviceParams
	if err := unmarshalParams(params, &p, "device"); err != nil {
		return nil, err
	}
	if p.Device == "" {
		return nil, fmt.Errorf("'device' is required (use \"auto\" to clear the override)")
	}

	return resultOf(commands.SetActiveDeviceCommand(p.Device))
}

func handleDeviceActive(params json.RawMessage) (interface{}, error) {
	return resultOf(commands.ActiveDeviceCommand())
}

func handleDeviceReboot(params json.RawMessage) (interface{}, error) {
	var p deviceParams
	if err := unmarshalParams(params, &p, "device"); err != nil {
		return nil, err
	}

	return resultOf(commands.RebootCommand(p.Device))
}

type screenshotParams struct {
	Device  string `json:"device"`
	Format  string `json:"format,omitempty"`  // "png" or "jpeg"
	Quality int    `json:"quality,omitempty"` // 1-100, only used for JPEG
}

func handleScreenshot(params json.RawMessage) (interface{}, error) {
	var p screenshotParams
	if err := unmarshalParams(params, &p, "device, format, quality"); err != nil {
		return nil, err
	}

	response := commands.ScreenshotCommand(commands.ScreenshotRequest{
		Device:     p.Device,
		Format:     p.Format,
		Quality:    p.Quality,
		OutputPath: "-", // always return base64 data for server
	})
	if response.Status == "error" {
		return nil, fmt.Errorf("%s", response.Error)
	}

	screenshotResp, ok := response.Data.(commands.ScreenshotResponse)
	if !ok {
		return nil, fmt.Errorf("unexpected response format")
	}

	return map[string]interface{}{
		"format": screenshotResp.Format,
		"data":   fmt.Sprintf("data:image/%s;base64,%s", screenshotResp.Format, screenshotResp.Data),
	}, nil
}

func handleIoTap(params json.RawMessage) (interface{}, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("'params' is required with fields: device, x, y")
	}

	var req commands.TapRequest
	if err := unmarshalParams(params, &req, "device, x, y"); err != nil {
		return nil, err
	}

	return resultOf(commands.TapCommand(req))
}

func handleIoLongPress(params json.RawMessage) (interface{}, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("'params' is required with fields: device, x, y")
	}

	var req commands.LongPressRequest
	if err := unmarshalParams(params, &req, "device, x, y"); err != nil {
		return nil, err
	}

	return resultOf(commands.LongPressCommand(req))
}

func handleIoSwipe(params json.RawMessage) (interface{}, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("'params' is required with fields: device, x1, y1, x2, y2")
	}

	// coordinates must be present, a zero-valued default is not a swipe
	var rawParams map[string]interface{}
	if err := json.Unmarshal(params, &rawParams); err != nil {
		return nil, fmt.Errorf("invalid parameters format")
	}
	for _, field := range []string{"x1", "y1", "x2", "y2"} {
		if _, exists := rawParams[field]; !exists {
			return nil, fmt.Errorf("'%s' is required", field)
		}
	}

	var req commands.SwipeRequest
	if err := unmarshalParams(params, &req, "device, x1, y1, x2, y2, durationMs"); err != nil {
		return nil, err
	}

	return resultOf(commands.SwipeCommand(req))
}

func handleIoText(params json.RawMessage) (interface{}, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("'params' is required with fields: device, text")
	}

	var req commands.TextRequest
	if err := unmarshalParams(params, &req, "device, text"); err != nil {
		return nil, err
	}

	return resultOf(commands.TextCommand(req))
}

func handleIoButton(params json.RawMessage) (interface{}, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("'params' is required with fields: device, button")
	}

	var req commands.ButtonRequest
	if err := unmarshalParams(params, &req, "device, button"); err != nil {
		return nil, err
	}

	return resultOf(commands.ButtonCommand(req))
}

func handleIoKeyEvent(params json.RawMessage) (interface{}, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("'params' is required with fields: device, keycode")
	}

	var req commands.KeyEventRequest
	if err := unmarshalParams(params, &req, "device, keycode"); err != nil {
		return nil, err
	}

	return resultOf(commands.KeyEventCommand(req))
}

func handleUIDump(params json.RawMessage) (interface{}, error) {
	var req commands.InspectRequest
	if err := unmarshalParams(params, &req, "device, interactiveOnly"); err != nil {
		return nil, err
	}

	return resultOf(commands.InspectCommand(req))
}

func handleUIFind(params json.RawMessage) (interface{}, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("'params' is required with fields: device, criteria")
	}

	var req commands.FindRequest
	if err := unmarshalParams(params, &req, "device, criteria"); err != nil {
		return nil, err
	}

	return resultOf(commands.FindCommand(req))
}

func handleUITapElement(params json.RawMessage) (interface{}, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("'params' is required with fields: device, criteria")
	}

	var req commands.TapElementRequest
	if err := unmarshalParams(params, &req, "device, criteria"); err != nil {
		return nil, err
	}

	return resultOf(commands.TapElementCommand(req))
}

func handleUIWait(params json.RawMessage) (interface{}, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("'params' is required with fields: device, criteria, timeoutMs, intervalMs")
	}

	var req commands.WaitForRequest
	if err := unmarshalParams(params, &req, "device, criteria, timeoutMs, intervalMs"); err != nil {
		return nil, err
	}

	return resultOf(commands.WaitForCommand(req))
}

func handleAppsLaunch(params json.RawMessage) (interface{}, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("'params' is required with fields: device, package")
	}

	var req commands.AppRequest
	if err := unmarshalParams(params, &req, "device, package"); err != nil {
		return nil, err
	}

	return resultOf(commands.LaunchAppCommand(req))
}

func handleAppsTerminate(params json.RawMessage) (interface{}, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("'params' is required with fields: device, package")
	}

	var req commands.AppRequest
	if err := unmarshalParams(params, &req, "device, package"); err != nil {
		return nil, err
	}

	return resultOf(commands.TerminateAppCommand(req))
}

func handleDoctor(params json.RawMessage) (interface{}, error) {
	return resultOf(commands.DoctorCommand(Version))
}
