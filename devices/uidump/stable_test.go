package uidump

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedFetch returns the given snapshots in order, repeating the last one
// when the script runs out.
func scriptedFetch(snapshots ...[]Element) (FetchFunc, *int) {
	calls := 0
	fetch := func() ([]Element, error) {
		i := calls
		if i >= len(snapshots) {
			i = len(snapshots) - 1
		}
		calls++
		return snapshots[i], nil
	}
	return fetch, &calls
}

func noSleep(time.Duration) {}

func TestFetchStable_FirstAttemptStable(t *testing.T) {
	stable := []Element{{Text: "ready", Class: "android.widget.TextView"}}
	fetch, calls := scriptedFetch(stable)

	got, err := FetchStable(fetch, StableOptions{Sleep: noSleep})
	require.NoError(t, err)
	assert.Equal(t, stable, got)
	assert.Equal(t, 1, *calls)
}

func TestFetchStable_RetriesEmptySnapshots(t *testing.T) {
	stable := []Element{{Text: "loaded", Class: "android.widget.TextView"}}
	fetch, calls := scriptedFetch(nil, nil, stable)

	got, err := FetchStable(fetch, StableOptions{Sleep: noSleep})
	require.NoError(t, err)
	assert.Equal(t, stable, got)
	assert.Equal(t, 3, *calls)
}

func TestFetchStable_RetriesProgressOnlySnapshots(t *testing.T) {
	loading := []Element{
		{Class: "android.widget.ProgressBar"},
		{Class: "com.custom.FancyProgressBar"},
	}
	stable := []Element{{Class: "android.widget.Button", Clickable: true}}
	fetch, calls := scriptedFetch(loading, stable)

	got, err := FetchStable(fetch, StableOptions{Sleep: noSleep})
	require.NoError(t, err)
	assert.Equal(t, stable, got)
	assert.Equal(t, 2, *calls)
}

func TestFetchStable_ProgressMixedWithContentIsStable(t *testing.T) {
	mixed := []Element{
		{Class: "android.widget.ProgressBar"},
		{Class: "android.widget.TextView", Text: "partial"},
	}
	fetch, calls := scriptedFetch(mixed)

	got, err := FetchStable(fetch, StableOptions{Sleep: noSleep})
	require.NoError(t, err)
	assert.Equal(t, mixed, got)
	assert.Equal(t, 1, *calls)
}

func TestFetchStable_InteractiveOnly(t *testing.T) {
	static := []Element{{Class: "android.widget.TextView", Text: "label"}}
	interactive := []Element{{Class: "android.widget.Button", Clickable: true}}
	fetch, calls := scriptedFetch(static, interactive)

	got, err := FetchStable(fetch, StableOptions{InteractiveOnly: true, Sleep: noSleep})
	require.NoError(t, err)
	assert.Equal(t, interactive, got)
	assert.Equal(t, 2, *calls)
}

func TestFetchStable_ExhaustionReturnsLastSnapshot(t *testing.T) {
	loading := []Element{{Class: "android.widget.ProgressBar"}}
	fetch, calls := scriptedFetch(loading)

	got, err := FetchStable(fetch, StableOptions{Sleep: noSleep})
	require.NoError(t, err)
	assert.Equal(t, loading, got, "best-effort snapshot on exhaustion, not an error")
	assert.Equal(t, DefaultStableAttempts, *calls)
}

func TestFetchStable_SleepsBetweenAttemptsOnly(t *testing.T) {
	var slept []time.Duration
	fetch, _ := scriptedFetch(nil)

	_, err := FetchStable(fetch, StableOptions{
		Attempts: 4,
		Delay:    25 * time.Millisecond,
		Sleep:    func(d time.Duration) { slept = append(slept, d) },
	})
	require.NoError(t, err)
	assert.Equal(t, []time.Duration{25 * time.Millisecond, 25 * time.Millisecond, 25 * time.Millisecond}, slept)
}

func TestFetchStable_FetchErrorPropagates(t *testing.T) {
	fetchErr := errors.New("adb: device offline")
	calls := 0
	fetch := func() ([]Element, error) {
		calls++
		return nil, fetchErr
	}

	_, err := FetchStable(fetch, StableOptions{Sleep: noSleep})
	assert.ErrorIs(t, err, fetchErr)
	assert.Equal(t, 1, calls, "command failures are not retried by the stabilization loop")
}
