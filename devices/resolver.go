package devices

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/droidctl/droidctl/utils"
)

// EnvDeviceVar names the environment variable read once at startup as the
// lowest-precedence device default.
const EnvDeviceVar = "DROIDCTL_DEVICE"

// autoToken is the case-insensitive sentinel meaning "no preference".
const autoToken = "auto"

// Resolution is the outcome of picking a target serial. Source records which
// precedence level won: "explicit", "override", "env" or "auto". Warning is
// set when resolution substituted a different device than the one requested.
type Resolution struct {
	Serial  string `json:"serial"`
	Source  string `json:"source"`
	Warning string `json:"warning,omitempty"`
}

// ResolutionError reports that no unambiguous target device exists. It
// carries the online serials so callers can tell the user what to pick from.
type ResolutionError struct {
	Reason    string
	Available []string
}

func (e *ResolutionError) Error() string {
	if len(e.Available) == 0 {
		return e.Reason
	}
	return fmt.Sprintf("%s (available: %s)", e.Reason, strings.Join(e.Available, ", "))
}

// Session owns the process-wide device-selection state: a settable override,
// the environment default captured at construction, and a memoized
// resolution. All access is serialized; RPC handlers share one Session.
type Session struct {
	mu         sync.Mutex
	override   string
	envDefault string
	cached     *Resolution

	// listOnline is swappable in tests; defaults to live adb enumeration.
	listOnline func() ([]*AndroidDevice, error)
}

// NewSession creates a Session with the environment default read from
// DROIDCTL_DEVICE.
func NewSession() *Session {
	return &Session{
		envDefault: strings.TrimSpace(os.Getenv(EnvDeviceVar)),
		listOnline: OnlineDevices,
	}
}

// SetOverride installs a process-wide device override. The value "auto"
// (any casing) or an empty string clears the override. The memoized
// resolution is invalidated either way.
func (s *Session) SetOverride(serial string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	serial = strings.TrimSpace(serial)
	if strings.EqualFold(serial, autoToken) {
		serial = ""
	}

	s.override = serial
	s.cached = nil

	if serial == "" {
		utils.Verbose("device override cleared")
	} else {
		utils.Verbose("device override set to %s", serial)
	}
}

// Override returns the current process-wide override, or "" when unset.
func (s *Session) Override() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.override
}

// Resolve picks the target serial for one call. A non-empty explicit serial
// takes precedence over everything, is validated against the online device
// list and is never cached. With no explicit serial the override, then the
// environment default, then auto-detection decide; that result is memoized
// until the override changes.
func (s *Session) Resolve(explicit string) (*Resolution, error) {
	explicit = strings.TrimSpace(explicit)
	if strings.EqualFold(explicit, autoToken) {
		explicit = ""
	}

	if explicit != "" {
		return s.resolveExplicit(explicit)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil {
		return s.cached, nil
	}

	res, err := s.resolveLocked()
	if err != nil {
		return nil, err
	}

	s.cached = res
	return res, nil
}

// ResolveDiagnostic is the non-strict variant used by health checks: a
// resolution failure comes back as data instead of an error. Command
// execution failures (adb missing) still propagate as errors.
func (s *Session) ResolveDiagnostic() (*Resolution, string, error) {
	res, err := s.Resolve("")
	if err == nil {
		return res, "", nil
	}

	var resErr *ResolutionError
	if errors.As(err, &resErr) {
		return nil, resErr.Error(), nil
	}

	return nil, "", err
}

func (s *Session) resolveExplicit(serial string) (*Resolution, error) {
	online, err := s.listOnline()
	if err != nil {
		return nil, err
	}

	for _, d := range online {
		if d.Serial() == serial {
			return &Resolution{Serial: serial, Source: "explicit"}, nil
		}
	}

	return nil, &ResolutionError{
		Reason:    fmt.Sprintf("device %q is not connected", serial),
		Available: serials(online),
	}
}

func (s *Session) resolveLocked() (*Resolution, error) {
	requested := s.override
	source := "override"
	if requested == "" {
		requested = s.envDefault
		source = "env"
	}

	online, err := s.listOnline()
	if err != nil {
		return nil, err
	}

	if requested != "" {
		for _, d := range online {
			if d.Serial() == requested {
				return &Resolution{Serial: requested, Source: source}, nil
			}
		}

		// requested device is gone; a single online device is an
		// unambiguous substitute
		if len(online) == 1 {
			fallback := online[0].Serial()
			return &Resolution{
				Serial:  fallback,
				Source:  source,
				Warning: fmt.Sprintf("device %q is not connected, using %q instead", requested, fallback),
			}, nil
		}

		return nil, &ResolutionError{
			Reason:    fmt.Sprintf("device %q is not connected", requested),
			Available: serials(online),
		}
	}

	switch len(online) {
	case 0:
		return nil, &ResolutionError{Reason: "no devices detected"}
	case 1:
		return &Resolution{Serial: online[0].Serial(), Source: "auto"}, nil
	default:
		return nil, &ResolutionError{
			Reason:    fmt.Sprintf("%d devices connected, specify one with --device or device.set_active", len(online)),
			Available: serials(online),
		}
	}
}

func serials(devices []*AndroidDevice) []string {
	out := make([]string, 0, len(devices))
	for _, d := range devices {
		out = append(out, d.Serial())
	}
	return out
}
