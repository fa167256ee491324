package devices

import (
	"testing"
)

func TestIsAscii(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"empty string", "", true},
		{"simple ascii", "hello world", true},
		{"numbers and punctuation", "abc123!@#", true},
		{"newlines and tabs", "hello\nworld\t!", true},
		{"unicode emoji", "hello 🌍", false},
		{"chinese characters", "你好", false},
		{"accented characters", "café", false},
		{"max ascii char", string(rune(127)), true},
		{"first non-ascii char", string(rune(128)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isAscii(tt.text); got != tt.want {
				t.Errorf("isAscii(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestEscapeShellText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"simple text", "hello", "hello"},
		{"text with spaces", "hello world", "hello\\ world"},
		{"single quote", "it's", "it\\'s"},
		{"double quote", `say "hi"`, `say\ \"hi\"`},
		{"semicolons", "a;b", "a\\;b"},
		{"pipes", "a|b", "a\\|b"},
		{"ampersands", "a&b", "a\\&b"},
		{"parentheses", "(test)", "\\(test\\)"},
		{"dollar sign", "$HOME", "\\$HOME"},
		{"asterisk", "*.txt", "\\*.txt"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeShellText(tt.text); got != tt.want {
				t.Errorf("escapeShellText(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseAdbDevicesOutput(t *testing.T) {
	output := "List of devices attached\n" +
		"emulator-5554\tdevice product:sdk_gphone64_arm64 model:sdk_gphone64_arm64\n" +
		"R5CR1234567\tunauthorized\n" +
		"0a1b2c3d\toffline\n" +
		"\n"

	devices := parseAdbDevicesOutput(output)

	if len(devices) != 3 {
		t.Fatalf("expected 3 devices, got %d", len(devices))
	}

	if devices[0].Serial() != "emulator-5554" {
		t.Errorf("devices[0].Serial() = %q, want %q", devices[0].Serial(), "emulator-5554")
	}
	if !devices[0].Online() {
		t.Error("devices[0] should be online")
	}
	if devices[0].Details() != "product:sdk_gphone64_arm64 model:sdk_gphone64_arm64" {
		t.Errorf("devices[0].Details() = %q", devices[0].Details())
	}

	if devices[1].State() != "unauthorized" {
		t.Errorf("devices[1].State() = %q, want %q", devices[1].State(), "unauthorized")
	}
	if devices[1].Online() {
		t.Error("unauthorized device should not be online")
	}

	if devices[2].State() != "offline" {
		t.Errorf("devices[2].State() = %q, want %q", devices[2].State(), "offline")
	}
}

func TestParseAdbDevicesOutput_Empty(t *testing.T) {
	devices := parseAdbDevicesOutput("List of devices attached\n\n")
	if len(devices) != 0 {
		t.Errorf("expected no devices, got %d", len(devices))
	}
}

func TestAndroidDevice_DeviceType(t *testing.T) {
	tests := []struct {
		name   string
		serial string
		want   string
	}{
		{"emulator serial", "emulator-5554", "emulator"},
		{"real device serial", "R5CR1234567", "real"},
		{"ip address serial", "192.168.1.5:5555", "real"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &AndroidDevice{serial: tt.serial}
			if got := d.DeviceType(); got != tt.want {
				t.Errorf("DeviceType() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAndroidDevice_AccessorMethods(t *testing.T) {
	d := &AndroidDevice{
		serial:  "test-serial",
		name:    "Test Device",
		version: "14.0",
		state:   "device",
		details: "model:Pixel_7",
	}

	if d.Serial() != "test-serial" {
		t.Errorf("Serial() = %q, want %q", d.Serial(), "test-serial")
	}
	if d.Name() != "Test Device" {
		t.Errorf("Name() = %q, want %q", d.Name(), "Test Device")
	}
	if d.Version() != "14.0" {
		t.Errorf("Version() = %q, want %q", d.Version(), "14.0")
	}
	if d.State() != "device" {
		t.Errorf("State() = %q, want %q", d.State(), "device")
	}
	if d.Details() != "model:Pixel_7" {
		t.Errorf("Details() = %q, want %q", d.Details(), "model:Pixel_7")
	}
	if !d.Online() {
		t.Error("Online() should be true for state \"device\"")
	}
}

func TestAndroidDevice_Name_OfflineFallsBackToSerial(t *testing.T) {
	d := &AndroidDevice{serial: "0a1b2c3d", state: "offline"}

	if got := d.Name(); got != "0a1b2c3d" {
		t.Errorf("Name() = %q, want serial fallback", got)
	}
}

func TestButtonKeycodes(t *testing.T) {
	expected := map[string]string{
		"home":        "3",
		"back":        "4",
		"power":       "26",
		"volume_up":   "24",
		"volume_down": "25",
	}

	for name, keycode := range expected {
		if got, ok := buttonKeycodes[name]; !ok || got != keycode {
			t.Errorf("buttonKeycodes[%q] = %q, want %q", name, got, keycode)
		}
	}
}

func TestAndroidDevice_PressButton_Unsupported(t *testing.T) {
	d := &AndroidDevice{serial: "test", state: "device"}

	err := d.PressButton("definitely_not_a_button")
	if err == nil {
		t.Error("expected error for unsupported button")
	}
}

func TestAndroidDevice_SendKeys_RejectsNonAscii(t *testing.T) {
	d := &AndroidDevice{serial: "test", state: "device"}

	err := d.SendKeys("héllo")
	if err == nil {
		t.Error("expected error for non-ASCII text")
	}
}

func TestAndroidDevice_Info(t *testing.T) {
	d := &AndroidDevice{
		serial:  "emulator-5554",
		name:    "Pixel 7",
		state:   "device",
		version: "14.0",
	}

	info := d.Info()
	if info.Serial != "emulator-5554" {
		t.Errorf("Info().Serial = %q", info.Serial)
	}
	if info.Type != "emulator" {
		t.Errorf("Info().Type = %q, want %q", info.Type, "emulator")
	}
	if info.Version != "14.0" {
		t.Errorf("Info().Version = %q, want %q", info.Version, "14.0")
	}
}
