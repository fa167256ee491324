package commands

import (
	"github.com/droidctl/droidctl/devices"
	"github.com/droidctl/droidctl/utils"
)

// CommandResponse represents a standardized response format for all commands
type CommandResponse struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// NewSuccessResponse creates a success response
func NewSuccessResponse(data interface{}) *CommandResponse {
	return &CommandResponse{
		Status: "ok",
		Data:   data,
	}
}

// NewErrorResponse creates an error response
func NewErrorResponse(err error) *CommandResponse {
	return &CommandResponse{
		Status: "error",
		Error:  err.Error(),
	}
}

// session owns device-selection state for this process. It is set once at
// startup via SetSession; both the CLI and the RPC server route every
// command through it.
var session = devices.NewSession()

// SetSession replaces the process-wide device session. Tests install
// sessions with fake device listers.
func SetSession(s *devices.Session) {
	session = s
}

// Session returns the process-wide device session.
func Session() *devices.Session {
	return session
}

// ResolveDevice picks the target device for one command. A non-empty serial
// takes precedence over the session override and environment default.
func ResolveDevice(serial string) (*devices.AndroidDevice, error) {
	res, err := session.Resolve(serial)
	if err != nil {
		return nil, err
	}

	if res.Warning != "" {
		// resolution warnings matter even without --verbose
		utils.Info("%s", res.Warning)
	}

	return devices.FindDevice(res.Serial)
}
