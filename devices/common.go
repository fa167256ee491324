package devices

import (
	"strings"

	"github.com/droidctl/droidctl/utils"
)

// DeviceInfo is the JSON-friendly device record returned by listings.
type DeviceInfo struct {
	Serial  string `json:"serial"`
	Name    string `json:"name"`
	State   string `json:"state"`
	Type    string `json:"type"`
	Version string `json:"version,omitempty"`
}

func (d *AndroidDevice) Info() DeviceInfo {
	return DeviceInfo{
		Serial:  d.Serial(),
		Name:    d.Name(),
		State:   d.State(),
		Type:    d.DeviceType(),
		Version: d.Version(),
	}
}

// GetDeviceInfoList returns all devices known to adb plus Android Virtual
// Devices that exist on disk but are not running.
func GetDeviceInfoList(includeOffline bool) ([]DeviceInfo, error) {
	connected, err := ListDevices()
	if err != nil {
		return nil, err
	}

	all := make([]*AndroidDevice, 0, len(connected))
	onlineIDs := make(map[string]bool)
	for _, d := range connected {
		all = append(all, d)
		if d.Online() {
			// emulator serials look like "emulator-5554"; the AVD id is
			// what getOfflineAndroidEmulators matches against
			onlineIDs[d.AvdID()] = true
		}
	}

	if includeOffline {
		offline, err := getOfflineAndroidEmulators(onlineIDs)
		if err != nil {
			utils.Verbose("Warning: failed to enumerate offline AVDs: %v", err)
		} else {
			all = append(all, offline...)
		}
	}

	infos := make([]DeviceInfo, len(all))
	for i, d := range all {
		infos[i] = d.Info()
	}

	return infos, nil
}

// AvdID returns the AVD identifier for a running emulator, or the serial for
// physical devices.
func (d *AndroidDevice) AvdID() string {
	if d.DeviceType() != "emulator" || !d.Online() {
		return d.serial
	}

	output, err := d.RunCommand("emu", "avd", "name")
	if err != nil {
		utils.Verbose("avd name lookup failed for %s: %v", d.serial, err)
		return d.serial
	}

	// output is the AVD name on the first line followed by "OK"
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return d.serial
	}
	return strings.TrimSpace(lines[0])
}
