package devices

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/droidctl/droidctl/devices/uidump"
	"github.com/droidctl/droidctl/utils"
)

const (
	// adbCommandTimeout bounds every adb invocation against a device.
	adbCommandTimeout = 30 * time.Second

	// uiDumpRemotePath is where uiautomator writes the hierarchy snapshot
	// on the device before we cat it back.
	uiDumpRemotePath = "/sdcard/ui_dump.xml"

	defaultSwipeDurationMs = 300
	longPressDurationMs    = 800
)

// ErrADBNotFound marks the "adb is not installed or not on PATH" failure so
// callers can give actionable advice instead of a raw exec error.
var ErrADBNotFound = errors.New("adb executable not found in PATH")

// modelNames caches getprop lookups per serial; device models don't change
// mid-session and the lookup costs a full adb round-trip.
var modelNames, _ = lru.New[string, string](64)

// AndroidDevice is a single attached device or emulator, addressed by its
// adb serial.
type AndroidDevice struct {
	serial  string
	name    string
	state   string
	details string
	version string
}

func (d *AndroidDevice) Serial() string { return d.serial }

func (d *AndroidDevice) State() string { return d.state }

func (d *AndroidDevice) Details() string { return d.details }

func (d *AndroidDevice) Version() string { return d.version }

// Online reports whether adb considers the device attached and ready.
// Other states (offline, unauthorized) cannot execute shell commands.
func (d *AndroidDevice) Online() bool { return d.state == "device" }

func (d *AndroidDevice) DeviceType() string {
	if strings.HasPrefix(d.serial, "emulator-") {
		return "emulator"
	}
	return "real"
}

// Name returns the human-readable device name, resolving the product model
// lazily for online devices.
func (d *AndroidDevice) Name() string {
	if d.name != "" {
		return d.name
	}
	if d.Online() {
		d.name = d.ModelName()
	} else {
		d.name = d.serial
	}
	return d.name
}

// ModelName returns the product model reported by the device, falling back
// to the serial when the lookup fails.
func (d *AndroidDevice) ModelName() string {
	if name, ok := modelNames.Get(d.serial); ok {
		return name
	}

	output, err := d.RunCommand("shell", "getprop", "ro.product.model")
	if err != nil {
		utils.Verbose("model lookup failed for %s: %v", d.serial, err)
		return d.serial
	}

	name := strings.TrimSpace(output)
	if name == "" {
		return d.serial
	}

	modelNames.Add(d.serial, name)
	return name
}

// RunCommand runs an adb command against this device and returns its decoded
// text output. Failures carry the command output for diagnosis.
func (d *AndroidDevice) RunCommand(args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), adbCommandTimeout)
	defer cancel()

	cmdArgs := append([]string{"-s", d.serial}, args...)
	cmd := exec.CommandContext(ctx, "adb", cmdArgs...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return string(output), wrapAdbError(ctx, err, output)
	}

	return string(output), nil
}

// RunBinaryCommand runs an adb command and returns its raw stdout, keeping
// stderr out of the stream so binary payloads (screenshots) stay intact.
func (d *AndroidDevice) RunBinaryCommand(args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), adbCommandTimeout)
	defer cancel()

	cmdArgs := append([]string{"-s", d.serial}, args...)
	cmd := exec.CommandContext(ctx, "adb", cmdArgs...)
	output, err := cmd.Output()
	if err != nil {
		return nil, wrapAdbError(ctx, err, nil)
	}

	return output, nil
}

func wrapAdbError(ctx context.Context, err error, output []byte) error {
	if errors.Is(err, exec.ErrNotFound) {
		return ErrADBNotFound
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("adb command timed out after %s", adbCommandTimeout)
	}
	if len(output) > 0 {
		return fmt.Errorf("adb command failed: %v\nOutput: %s", err, strings.TrimSpace(string(output)))
	}
	return fmt.Errorf("adb command failed: %v", err)
}

// TakeScreenshot captures the screen as PNG bytes.
func (d *AndroidDevice) TakeScreenshot() ([]byte, error) {
	data, err := d.RunBinaryCommand("exec-out", "screencap", "-p")
	if err != nil {
		return nil, fmt.Errorf("failed to take screenshot: %v", err)
	}
	return data, nil
}

// Tap simulates a tap at (x, y).
func (d *AndroidDevice) Tap(x, y int) error {
	_, err := d.RunCommand("shell", "input", "tap", fmt.Sprintf("%d", x), fmt.Sprintf("%d", y))
	return err
}

// LongPress is a swipe that starts and ends at the same point.
func (d *AndroidDevice) LongPress(x, y int) error {
	_, err := d.RunCommand("shell", "input", "swipe",
		fmt.Sprintf("%d", x), fmt.Sprintf("%d", y),
		fmt.Sprintf("%d", x), fmt.Sprintf("%d", y),
		fmt.Sprintf("%d", longPressDurationMs))
	return err
}

// Swipe drags from (x1, y1) to (x2, y2) over durationMs milliseconds.
// A non-positive duration uses the default.
func (d *AndroidDevice) Swipe(x1, y1, x2, y2, durationMs int) error {
	if durationMs <= 0 {
		durationMs = defaultSwipeDurationMs
	}
	_, err := d.RunCommand("shell", "input", "swipe",
		fmt.Sprintf("%d", x1), fmt.Sprintf("%d", y1),
		fmt.Sprintf("%d", x2), fmt.Sprintf("%d", y2),
		fmt.Sprintf("%d", durationMs))
	return err
}

// SendKeys types text into the focused element. Non-ASCII text cannot be
// delivered through `input text` and is rejected.
func (d *AndroidDevice) SendKeys(text string) error {
	if !isAscii(text) {
		return fmt.Errorf("input text only supports ASCII characters")
	}
	_, err := d.RunCommand("shell", "input", "text", escapeShellText(text))
	return err
}

var buttonKeycodes = map[string]string{
	"home":        "3",
	"back":        "4",
	"menu":        "82",
	"enter":       "66",
	"delete":      "67",
	"power":       "26",
	"volume_up":   "24",
	"volume_down": "25",
}

// PressButton presses a named hardware button. Names are case-insensitive.
func (d *AndroidDevice) PressButton(key string) error {
	keycode, ok := buttonKeycodes[strings.ToLower(key)]
	if !ok {
		return fmt.Errorf("unsupported button %q, expected one of: %s", key, strings.Join(buttonNames(), ", "))
	}
	return d.KeyEvent(keycode)
}

// KeyEvent sends a raw Android keycode.
func (d *AndroidDevice) KeyEvent(keycode string) error {
	output, err := d.RunCommand("shell", "input", "keyevent", keycode)
	if err != nil {
		return fmt.Errorf("failed to send keyevent %s: %v\nOutput: %s", keycode, err, output)
	}
	return nil
}

func buttonNames() []string {
	names := make([]string, 0, len(buttonKeycodes))
	for name := range buttonKeycodes {
		names = append(names, name)
	}
	return names
}

// Reboot reboots the device.
func (d *AndroidDevice) Reboot() error {
	_, err := d.RunCommand("reboot")
	return err
}

// LaunchApp starts the launcher activity of the given package.
func (d *AndroidDevice) LaunchApp(packageName string) error {
	output, err := d.RunCommand("shell", "monkey", "-p", packageName, "-c", "android.intent.category.LAUNCHER", "1")
	if err != nil {
		return fmt.Errorf("failed to launch app %s: %v\nOutput: %s", packageName, err, output)
	}
	return nil
}

// TerminateApp force-stops the given package.
func (d *AndroidDevice) TerminateApp(packageName string) error {
	output, err := d.RunCommand("shell", "am", "force-stop", packageName)
	if err != nil {
		return fmt.Errorf("failed to terminate app %s: %v\nOutput: %s", packageName, err, output)
	}
	return nil
}

// DumpUI snapshots the current widget hierarchy and parses it into a flat
// element list. Dump and read happen in a single shell invocation; && makes
// sure cat only runs after a successful dump.
func (d *AndroidDevice) DumpUI() ([]uidump.Element, error) {
	command := fmt.Sprintf("uiautomator dump %s && cat %s", uiDumpRemotePath, uiDumpRemotePath)
	output, err := d.RunCommand("shell", command)
	if err != nil {
		return nil, fmt.Errorf("failed to dump UI hierarchy: %v", err)
	}

	// uiautomator prints "UI hierchary dumped to: ..." before the file
	// contents on some builds; skip ahead to the XML prolog
	if idx := strings.Index(output, "<?xml"); idx != -1 {
		output = output[idx:]
	}

	return uidump.Parse(output), nil
}

// isAscii reports whether every rune in text fits 7-bit ASCII.
func isAscii(text string) bool {
	for _, r := range text {
		if r > 127 {
			return false
		}
	}
	return true
}

// escapeShellText escapes text for `adb shell input text`, which splits on
// unescaped whitespace and shell metacharacters.
func escapeShellText(text string) string {
	var b strings.Builder
	for _, r := range text {
		switch r {
		case ' ', '\'', '"', ';', '|', '&', '(', ')', '$', '*', '<', '>', '`', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ListDevices enumerates all devices known to adb, including offline and
// unauthorized ones. The caller filters by state.
func ListDevices() ([]*AndroidDevice, error) {
	cmd := exec.Command("adb", "devices", "-l")
	output, err := cmd.CombinedOutput()
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, ErrADBNotFound
		}
		return nil, fmt.Errorf("failed to run 'adb devices': %v", err)
	}

	return parseAdbDevicesOutput(string(output)), nil
}

// parseAdbDevicesOutput parses `adb devices -l` output. The first line is a
// header; every following non-empty line is "<serial> <state> [details...]".
func parseAdbDevicesOutput(output string) []*AndroidDevice {
	var devices []*AndroidDevice

	lines := strings.Split(output, "\n")
	for i := 1; i < len(lines); i++ {
		parts := strings.Fields(strings.TrimSpace(lines[i]))
		if len(parts) < 2 {
			continue
		}

		devices = append(devices, &AndroidDevice{
			serial:  parts[0],
			state:   parts[1],
			details: strings.Join(parts[2:], " "),
		})
	}

	return devices
}

// OnlineDevices returns only the devices in state "device".
func OnlineDevices() ([]*AndroidDevice, error) {
	all, err := ListDevices()
	if err != nil {
		return nil, err
	}

	var online []*AndroidDevice
	for _, d := range all {
		if d.Online() {
			online = append(online, d)
		}
	}
	return online, nil
}

// FindDevice returns the online device with the given serial.
func FindDevice(serial string) (*AndroidDevice, error) {
	online, err := OnlineDevices()
	if err != nil {
		return nil, err
	}

	for _, d := range online {
		if d.serial == serial {
			return d, nil
		}
	}

	return nil, &ResolutionError{
		Reason:    fmt.Sprintf("device %q is not connected", serial),
		Available: serials(online),
	}
}
