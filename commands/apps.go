package commands

import (
	"fmt"
)

// AppRequest represents the parameters for app-related commands
type AppRequest struct {
	Device  string `json:"device"`
	Package string `json:"package"`
}

// LaunchAppCommand launches an app on the specified device
func LaunchAppCommand(req AppRequest) *CommandResponse {
	if req.Package == "" {
		return NewErrorResponse(fmt.Errorf("package name is required"))
	}

	device, err := ResolveDevice(req.Device)
	if err != nil {
		return NewErrorResponse(err)
	}

	if err := device.LaunchApp(req.Package); err != nil {
		return NewErrorResponse(err)
	}

	return NewSuccessResponse(map[string]interface{}{
		"message": fmt.Sprintf("Launched app '%s' on device %s", req.Package, device.Serial()),
	})
}

// TerminateAppCommand terminates an app on the specified device
func TerminateAppCommand(req AppRequest) *CommandResponse {
	if req.Package == "" {
		return NewErrorResponse(fmt.Errorf("package name is required"))
	}

	device, err := ResolveDevice(req.Device)
	if err != nil {
		return NewErrorResponse(err)
	}

	if err := device.TerminateApp(req.Package); err != nil {
		return NewErrorResponse(err)
	}

	return NewSuccessResponse(map[string]interface{}{
		"message": fmt.Sprintf("Terminated app '%s' on device %s", req.Package, device.Serial()),
	})
}
