package commands

import (
	"fmt"
	"time"

	"github.com/droidctl/droidctl/devices/uidump"
)

// InspectRequest represents the parameters for dumping the UI tree
type InspectRequest struct {
	Device          string `json:"device"`
	InteractiveOnly bool   `json:"interactiveOnly,omitempty"`
}

// InspectResponse carries the parsed element list plus a one-line digest.
type InspectResponse struct {
	Elements []uidump.Element `json:"elements"`
	Summary  string           `json:"summary"`
}

// FindRequest represents the parameters for an element search
type FindRequest struct {
	Device   string          `json:"device"`
	Criteria uidump.Criteria `json:"criteria"`
}

// FindResponse carries the matching elements in document order.
type FindResponse struct {
	Count    int              `json:"count"`
	Elements []uidump.Element `json:"elements"`
}

// TapElementRequest taps the center of the first element matching the
// criteria.
type TapElementRequest struct {
	Device   string          `json:"device"`
	Criteria uidump.Criteria `json:"criteria"`
}

// WaitForRequest polls until an element matching the criteria appears.
type WaitForRequest struct {
	Device     string          `json:"device"`
	Criteria   uidump.Criteria `json:"criteria"`
	TimeoutMs  int             `json:"timeoutMs,omitempty"`
	IntervalMs int             `json:"intervalMs,omitempty"`
}

const (
	defaultWaitTimeoutMs  = 10000
	defaultWaitIntervalMs = 500
)

// fetchElements runs the stabilization loop against a live device dump.
func fetchElements(serial string, interactiveOnly bool) ([]uidump.Element, error) {
	device, err := ResolveDevice(serial)
	if err != nil {
		return nil, err
	}

	return uidump.FetchStable(device.DumpUI, uidump.StableOptions{
		InteractiveOnly: interactiveOnly,
	})
}

// InspectCommand dumps the UI tree from the specified device
func InspectCommand(req InspectRequest) *CommandResponse {
	elements, err := fetchElements(req.Device, req.InteractiveOnly)
	if err != nil {
		return NewErrorResponse(err)
	}

	return NewSuccessResponse(InspectResponse{
		Elements: elements,
		Summary:  uidump.Summarize(elements),
	})
}

// FindCommand searches the current UI tree for elements matching the
// criteria. Zero matches is a normal result, not an error.
func FindCommand(req FindRequest) *CommandResponse {
	elements, err := fetchElements(req.Device, false)
	if err != nil {
		return NewErrorResponse(err)
	}

	matches := uidump.Find(elements, req.Criteria)
	return NewSuccessResponse(FindResponse{
		Count:    len(matches),
		Elements: matches,
	})
}

// TapElementCommand finds the first element matching the criteria and taps
// its center. An element with degenerate bounds is refused rather than
// tapped blindly.
func TapElementCommand(req TapElementRequest) *CommandResponse {
	if req.Criteria.IsEmpty() {
		return NewErrorResponse(fmt.Errorf("at least one search criterion is required"))
	}

	device, err := ResolveDevice(req.Device)
	if err != nil {
		return NewErrorResponse(err)
	}

	elements, err := uidump.FetchStable(device.DumpUI, uidump.StableOptions{})
	if err != nil {
		return NewErrorResponse(err)
	}

	matches := uidump.Find(elements, req.Criteria)
	if len(matches) == 0 {
		return NewErrorResponse(fmt.Errorf("no element matches the given criteria"))
	}

	target := matches[0]
	if !target.Bounds.Valid() {
		return NewErrorResponse(fmt.Errorf("element %q has invalid bounds %s, refusing to tap", target.Label(), target.Bounds))
	}

	if err := device.Tap(target.Center.X, target.Center.Y); err != nil {
		return NewErrorResponse(fmt.Errorf("failed to tap element %q: %v", target.Label(), err))
	}

	return NewSuccessResponse(map[string]interface{}{
		"message": fmt.Sprintf("Tapped %q at (%d,%d)", target.Label(), target.Center.X, target.Center.Y),
		"element": target,
	})
}

// waitOptions controls the polling loop. Sleep and Now are injectable so
// tests run without wall-clock delays.
type waitOptions struct {
	Timeout  time.Duration
	Interval time.Duration
	Sleep    func(time.Duration)
	Now      func() time.Time
}

// waitForMatch polls fetch until an element matching the criteria appears or
// the timeout expires. Total wait is bounded; there is no indefinite retry.
func waitForMatch(fetch uidump.FetchFunc, criteria uidump.Criteria, opts waitOptions) *CommandResponse {
	sleep := opts.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	deadline := now().Add(opts.Timeout)
	for {
		elements, err := fetch()
		if err != nil {
			return NewErrorResponse(err)
		}

		matches := uidump.Find(elements, criteria)
		if len(matches) > 0 {
			return NewSuccessResponse(FindResponse{
				Count:    len(matches),
				Elements: matches,
			})
		}

		if now().Add(opts.Interval).After(deadline) {
			return NewErrorResponse(fmt.Errorf("no matching element appeared within %s", opts.Timeout))
		}
		sleep(opts.Interval)
	}
}

// WaitForCommand polls the UI of the specified device until an element
// matching the criteria appears or the timeout expires.
func WaitForCommand(req WaitForRequest) *CommandResponse {
	if req.Criteria.IsEmpty() {
		return NewErrorResponse(fmt.Errorf("at least one search criterion is required"))
	}

	timeout := time.Duration(req.TimeoutMs) * time.Millisecond
	if timeout <= 0 {
		timeout = defaultWaitTimeoutMs * time.Millisecond
	}
	interval := time.Duration(req.IntervalMs) * time.Millisecond
	if interval <= 0 {
		interval = defaultWaitIntervalMs * time.Millisecond
	}

	device, err := ResolveDevice(req.Device)
	if err != nil {
		return NewErrorResponse(err)
	}

	return waitForMatch(device.DumpUI, req.Criteria, waitOptions{
		Timeout:  timeout,
		Interval: interval,
	})
}
