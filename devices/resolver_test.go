package devices

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession(envDefault string, serials ...string) *Session {
	return &Session{
		envDefault: envDefault,
		listOnline: func() ([]*AndroidDevice, error) {
			devices := make([]*AndroidDevice, 0, len(serials))
			for _, s := range serials {
				devices = append(devices, &AndroidDevice{serial: s, state: "device"})
			}
			return devices, nil
		},
	}
}

func TestResolve_AutoSingleDevice(t *testing.T) {
	s := testSession("", "emulator-5554")

	res, err := s.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "emulator-5554", res.Serial)
	assert.Equal(t, "auto", res.Source)
	assert.Empty(t, res.Warning)
}

func TestResolve_NoDevices(t *testing.T) {
	s := testSession("")

	_, err := s.Resolve("")
	require.Error(t, err)

	var resErr *ResolutionError
	require.True(t, errors.As(err, &resErr))
	assert.Contains(t, resErr.Reason, "no devices detected")
	assert.Empty(t, resErr.Available)
}

func TestResolve_MultipleDevicesAmbiguous(t *testing.T) {
	s := testSession("", "emulator-5554", "R5CR1234567")

	_, err := s.Resolve("")
	require.Error(t, err)

	var resErr *ResolutionError
	require.True(t, errors.As(err, &resErr))
	assert.Equal(t, []string{"emulator-5554", "R5CR1234567"}, resErr.Available)
	assert.Contains(t, err.Error(), "emulator-5554")
	assert.Contains(t, err.Error(), "R5CR1234567")
}

func TestResolve_EnvDefault(t *testing.T) {
	s := testSession("R5CR1234567", "emulator-5554", "R5CR1234567")

	res, err := s.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "R5CR1234567", res.Serial)
	assert.Equal(t, "env", res.Source)
}

func TestResolve_OverrideBeatsEnv(t *testing.T) {
	s := testSession("R5CR1234567", "emulator-5554", "R5CR1234567")
	s.SetOverride("emulator-5554")

	res, err := s.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "emulator-5554", res.Serial)
	assert.Equal(t, "override", res.Source)
}

func TestResolve_ExplicitBeatsOverride(t *testing.T) {
	s := testSession("", "emulator-5554", "R5CR1234567")
	s.SetOverride("emulator-5554")

	res, err := s.Resolve("R5CR1234567")
	require.NoError(t, err)
	assert.Equal(t, "R5CR1234567", res.Serial)
	assert.Equal(t, "explicit", res.Source)
}

func TestResolve_ExplicitNotConnected(t *testing.T) {
	s := testSession("", "emulator-5554", "R5CR1234567")

	_, err := s.Resolve("gone-device")
	require.Error(t, err)

	var resErr *ResolutionError
	require.True(t, errors.As(err, &resErr))
	assert.Equal(t, []string{"emulator-5554", "R5CR1234567"}, resErr.Available)
}

func TestResolve_ExplicitNoFallback(t *testing.T) {
	// explicit serials are strict: a single online device is not substituted
	s := testSession("", "emulator-5554")

	_, err := s.Resolve("gone-device")
	require.Error(t, err)
}

func TestResolve_RequestedMissingFallsBackToOnlyDevice(t *testing.T) {
	s := testSession("", "emulator-5554")
	s.SetOverride("gone-device")

	res, err := s.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "emulator-5554", res.Serial)
	assert.NotEmpty(t, res.Warning)
	assert.Contains(t, res.Warning, "gone-device")
}

func TestResolve_RequestedMissingManyOnline(t *testing.T) {
	s := testSession("", "emulator-5554", "R5CR1234567")
	s.SetOverride("gone-device")

	_, err := s.Resolve("")
	require.Error(t, err)

	var resErr *ResolutionError
	require.True(t, errors.As(err, &resErr))
	assert.Len(t, resErr.Available, 2)
}

func TestResolve_AutoTokenClearsExplicit(t *testing.T) {
	s := testSession("", "emulator-5554")

	res, err := s.Resolve("AUTO")
	require.NoError(t, err)
	assert.Equal(t, "emulator-5554", res.Serial)
	assert.Equal(t, "auto", res.Source)
}

func TestSetOverride_AutoTokenClears(t *testing.T) {
	s := testSession("", "emulator-5554")

	s.SetOverride("some-device")
	assert.Equal(t, "some-device", s.Override())

	s.SetOverride("Auto")
	assert.Empty(t, s.Override())
}

func TestResolve_CachesUntilOverrideChanges(t *testing.T) {
	calls := 0
	s := &Session{
		listOnline: func() ([]*AndroidDevice, error) {
			calls++
			return []*AndroidDevice{{serial: "emulator-5554", state: "device"}}, nil
		},
	}

	_, err := s.Resolve("")
	require.NoError(t, err)
	_, err = s.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "second resolve should hit the memo")

	s.SetOverride("emulator-5554")
	_, err = s.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, 2, calls, "SetOverride must invalidate the memo")
}

func TestResolve_ExplicitBypassesCache(t *testing.T) {
	calls := 0
	s := &Session{
		listOnline: func() ([]*AndroidDevice, error) {
			calls++
			return []*AndroidDevice{{serial: "emulator-5554", state: "device"}}, nil
		},
	}

	_, err := s.Resolve("")
	require.NoError(t, err)

	_, err = s.Resolve("emulator-5554")
	require.NoError(t, err)
	assert.Equal(t, 2, calls, "explicit resolve must not reuse the memo")

	// and must not have polluted it either
	_, err = s.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestResolve_EnumerationErrorPropagates(t *testing.T) {
	enumErr := errors.New("adb exploded")
	s := &Session{
		listOnline: func() ([]*AndroidDevice, error) {
			return nil, enumErr
		},
	}

	_, err := s.Resolve("")
	assert.ErrorIs(t, err, enumErr)

	_, err = s.Resolve("some-device")
	assert.ErrorIs(t, err, enumErr)
}

func TestResolveDiagnostic_ErrorAsData(t *testing.T) {
	s := testSession("")

	res, diag, err := s.ResolveDiagnostic()
	require.NoError(t, err)
	assert.Nil(t, res)
	assert.Contains(t, diag, "no devices detected")
}

func TestResolveDiagnostic_Success(t *testing.T) {
	s := testSession("", "emulator-5554")

	res, diag, err := s.ResolveDiagnostic()
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "emulator-5554", res.Serial)
	assert.Empty(t, diag)
}

func TestResolveDiagnostic_CommandErrorStillPropagates(t *testing.T) {
	enumErr := errors.New("adb not found")
	s := &Session{
		listOnline: func() ([]*AndroidDevice, error) {
			return nil, enumErr
		},
	}

	_, _, err := s.ResolveDiagnostic()
	assert.ErrorIs(t, err, enumErr)
}

func TestResolutionError_Error(t *testing.T) {
	e := &ResolutionError{Reason: "no match", Available: []string{"a", "b"}}
	assert.Equal(t, "no match (available: a, b)", e.Error())

	e = &ResolutionError{Reason: "no devices detected"}
	assert.Equal(t, "no devices detected", e.Error())
}
