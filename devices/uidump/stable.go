package uidump

import (
	"strings"
	"time"
)

const (
	// DefaultStableAttempts bounds the re-sample loop.
	DefaultStableAttempts = 3
	// DefaultStableDelay is the pause between re-samples.
	DefaultStableDelay = 400 * time.Millisecond
)

// FetchFunc produces a fresh element list, typically by dumping and parsing
// the UI hierarchy of a device.
type FetchFunc func() ([]Element, error)

// StableOptions controls the stabilization loop. The zero value uses the
// defaults; Sleep is injectable so tests run without wall-clock delays.
type StableOptions struct {
	Attempts        int
	Delay           time.Duration
	InteractiveOnly bool
	Sleep           func(time.Duration)
}

// FetchStable re-samples the UI until a fetch looks settled or attempts run
// out. A snapshot is unstable when it is empty, when every element is a
// progress indicator, or, if InteractiveOnly is set, when it has no
// interactive element. On exhaustion the last snapshot is returned as a
// best-effort result; fetch errors propagate immediately.
func FetchStable(fetch FetchFunc, opts StableOptions) ([]Element, error) {
	attempts := opts.Attempts
	if attempts <= 0 {
		attempts = DefaultStableAttempts
	}
	delay := opts.Delay
	if delay <= 0 {
		delay = DefaultStableDelay
	}
	sleep := opts.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	var elements []Element
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			sleep(delay)
		}

		var err error
		elements, err = fetch()
		if err != nil {
			return nil, err
		}

		if isStable(elements, opts.InteractiveOnly) {
			return elements, nil
		}
	}

	return elements, nil
}

func isStable(elements []Element, interactiveOnly bool) bool {
	if len(elements) == 0 {
		return false
	}
	if onlyProgress(elements) {
		return false
	}
	if interactiveOnly {
		for _, e := range elements {
			if e.Interactive() {
				return true
			}
		}
		return false
	}
	return true
}

// onlyProgress reports whether every element looks like a loading spinner.
// The class-name substring check is a widget-toolkit convention; an empty
// list counts as "only progress" vacuously.
func onlyProgress(elements []Element) bool {
	for _, e := range elements {
		if !strings.Contains(strings.ToLower(e.Class), "progressbar") {
			return false
		}
	}
	return true
}
