package commands

import (
	"fmt"

	"github.com/droidctl/droidctl/devices"
)

// DevicesCommand lists all connected devices. With showAll, offline AVDs
// that exist on disk are included.
func DevicesCommand(showAll bool) *CommandResponse {
	deviceInfoList, err := devices.GetDeviceInfoList(showAll)
	if err != nil {
		return NewErrorResponse(err)
	}

	return NewSuccessResponse(map[string]interface{}{
		"devices": deviceInfoList,
	})
}

// SetActiveDeviceCommand installs a process-wide device override for all
// subsequent commands. The value "auto" clears it.
func SetActiveDeviceCommand(serial string) *CommandResponse {
	session.SetOverride(serial)

	if session.Override() == "" {
		return NewSuccessResponse(map[string]interface{}{
			"message": "Device override cleared, auto-detection active",
		})
	}

	return NewSuccessResponse(map[string]interface{}{
		"message": fmt.Sprintf("Active device set to %s", serial),
	})
}

// ActiveDeviceCommand reports which device subsequent commands will target.
func ActiveDeviceCommand() *CommandResponse {
	res, err := session.Resolve("")
	if err != nil {
		return NewErrorResponse(err)
	}

	return NewSuccessResponse(res)
}

// RebootCommand reboots the specified device.
func RebootCommand(serial string) *CommandResponse {
	device, err := ResolveDevice(serial)
	if err != nil {
		return NewErrorResponse(err)
	}

	if err := device.Reboot(); err != nil {
		return NewErrorResponse(fmt.Errorf("failed to reboot device %s: %v", device.Serial(), err))
	}

	return NewSuccessResponse(map[string]interface{}{
		"message": fmt.Sprintf("Rebooting device %s", device.Serial()),
	})
}
