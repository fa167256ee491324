package mcp

import (
	"sync"

	"github.com/droidctl/droidctl/commands"
)

// MockCall records a method call for verification
type MockCall struct {
	Method string
	Args   []interface{}
}

// MockApp is a canned-response implementation of App for testing. Each
// method records its call and returns the response registered under the
// method name, or a generic success response when none is registered.
type MockApp struct {
	mu        sync.Mutex
	Calls     []MockCall
	Responses map[string]*commands.CommandResponse
}

// NewMockApp creates a MockApp with no canned responses
func NewMockApp() *MockApp {
	return &MockApp{
		Calls:     make([]MockCall, 0),
		Responses: make(map[string]*commands.CommandResponse),
	}
}

// Respond registers the response returned for the given method
func (m *MockApp) Respond(method string, response *commands.CommandResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Responses[method] = response
}

// LastCall returns the most recent recorded call, or nil
func (m *MockApp) LastCall() *MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Calls) == 0 {
		return nil
	}
	call := m.Calls[len(m.Calls)-1]
	return &call
}

func (m *MockApp) record(method string, args ...interface{}) *commands.CommandResponse {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, MockCall{Method: method, Args: args})
	if response, ok := m.Responses[method]; ok {
		return response
	}
	return commands.NewSuccessResponse(map[string]interface{}{"method": method})
}

func (m *MockApp) Devices(showAll bool) *commands.CommandResponse {
	return m.record("Devices", showAll)
}

func (m *MockApp) Screenshot(req commands.ScreenshotRequest) *commands.CommandResponse {
	return m.record("Screenshot", req)
}

func (m *MockApp) Tap(req commands.TapRequest) *commands.CommandResponse {
	return m.record("Tap", req)
}

func (m *MockApp) LongPress(req commands.LongPressRequest) *commands.CommandResponse {
	return m.record("LongPress", req)
}

func (m *MockApp) Swipe(req commands.SwipeRequest) *commands.CommandResponse {
	return m.record("Swipe", req)
}

func (m *MockApp) Text(req commands.TextRequest) *commands.CommandResponse {
	return m.record("Text", req)
}

func (m *MockApp) Button(req commands.ButtonRequest) *commands.CommandResponse {
	return m.record("Button", req)
}

func (m *MockApp) KeyEvent(req commands.KeyEventRequest) *commands.CommandResponse {
	return m.record("KeyEvent", req)
}

func (m *MockApp) Inspect(req commands.InspectRequest) *commands.CommandResponse {
	return m.record("Inspect", req)
}

func (m *MockApp) Find(req commands.FindRequest) *commands.CommandResponse {
	return m.record("Find", req)
}

func (m *MockApp) TapElement(req commands.TapElementRequest) *commands.CommandResponse {
	return m.record("TapElement", req)
}

func (m *MockApp) WaitFor(req commands.WaitForRequest) *commands.CommandResponse {
	return m.record("WaitFor", req)
}

func (m *MockApp) LaunchApp(req commands.AppRequest) *commands.CommandResponse {
	return m.record("LaunchApp", req)
}

func (m *MockApp) TerminateApp(req commands.AppRequest) *commands.CommandResponse {
	return m.record("TerminateApp", req)
}

func (m *MockApp) Doctor() *commands.CommandResponse {
	return m.record("Doctor")
}
