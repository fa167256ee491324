package commands

import (
	"fmt"
)

// TapRequest represents the parameters for a tap command
type TapRequest struct {
	Device string `json:"device"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
}

// LongPressRequest represents the parameters for a long press command
type LongPressRequest struct {
	Device string `json:"device"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
}

// SwipeRequest represents the parameters for a swipe command
type SwipeRequest struct {
	Device     string `json:"device"`
	X1         int    `json:"x1"`
	Y1         int    `json:"y1"`
	X2         int    `json:"x2"`
	Y2         int    `json:"y2"`
	DurationMs int    `json:"durationMs,omitempty"`
}

// TextRequest represents the parameters for a text input command
type TextRequest struct {
	Device string `json:"device"`
	Text   string `json:"text"`
}

// ButtonRequest represents the parameters for a button press command
type ButtonRequest struct {
	Device string `json:"device"`
	Button string `json:"button"`
}

// KeyEventRequest represents the parameters for a raw keycode command
type KeyEventRequest struct {
	Device  string `json:"device"`
	Keycode string `json:"keycode"`
}

// TapCommand performs a tap operation on the specified device
func TapCommand(req TapRequest) *CommandResponse {
	if req.X < 0 || req.Y < 0 {
		return NewErrorResponse(fmt.Errorf("x and y coordinates must be non-negative, got x=%d, y=%d", req.X, req.Y))
	}

	device, err := ResolveDevice(req.Device)
	if err != nil {
		return NewErrorResponse(err)
	}

	if err := device.Tap(req.X, req.Y); err != nil {
		return NewErrorResponse(fmt.Errorf("failed to tap on device %s: %v", device.Serial(), err))
	}

	return NewSuccessResponse(map[string]interface{}{
		"message": fmt.Sprintf("Tapped on device %s at (%d,%d)", device.Serial(), req.X, req.Y),
	})
}

// LongPressCommand performs a long press operation on the specified device
func LongPressCommand(req LongPressRequest) *CommandResponse {
	if req.X < 0 || req.Y < 0 {
		return NewErrorResponse(fmt.Errorf("x and y coordinates must be non-negative, got x=%d, y=%d", req.X, req.Y))
	}

	device, err := ResolveDevice(req.Device)
	if err != nil {
		return NewErrorResponse(err)
	}

	if err := device.LongPress(req.X, req.Y); err != nil {
		return NewErrorResponse(fmt.Errorf("failed to long press on device %s: %v", device.Serial(), err))
	}

	return NewSuccessResponse(map[string]interface{}{
		"message": fmt.Sprintf("Long pressed on device %s at (%d,%d)", device.Serial(), req.X, req.Y),
	})
}

// SwipeCommand performs a swipe operation on the specified device
func SwipeCommand(req SwipeRequest) *CommandResponse {
	device, err := ResolveDevice(req.Device)
	if err != nil {
		return NewErrorResponse(err)
	}

	if err := device.Swipe(req.X1, req.Y1, req.X2, req.Y2, req.DurationMs); err != nil {
		return NewErrorResponse(fmt.Errorf("failed to swipe on device %s: %v", device.Serial(), err))
	}

	return NewSuccessResponse(map[string]interface{}{
		"message": fmt.Sprintf("Swiped on device %s from (%d,%d) to (%d,%d)", device.Serial(), req.X1, req.Y1, req.X2, req.Y2),
	})
}

// TextCommand sends text input to the specified device
func TextCommand(req TextRequest) *CommandResponse {
	if req.Text == "" {
		return NewErrorResponse(fmt.Errorf("text is required"))
	}

	device, err := ResolveDevice(req.Device)
	if err != nil {
		return NewErrorResponse(err)
	}

	if err := device.SendKeys(req.Text); err != nil {
		return NewErrorResponse(fmt.Errorf("failed to send text to device %s: %v", device.Serial(), err))
	}

	return NewSuccessResponse(map[string]interface{}{
		"message": fmt.Sprintf("Sent text to device %s", device.Serial()),
	})
}

// ButtonCommand presses a hardware button on the specified device
func ButtonCommand(req ButtonRequest) *CommandResponse {
	if req.Button == "" {
		return NewErrorResponse(fmt.Errorf("button name is required"))
	}

	device, err := ResolveDevice(req.Device)
	if err != nil {
		return NewErrorResponse(err)
	}

	if err := device.PressButton(req.Button); err != nil {
		return NewErrorResponse(err)
	}

	return NewSuccessResponse(map[string]interface{}{
		"message": fmt.Sprintf("Pressed button '%s' on device %s", req.Button, device.Serial()),
	})
}

// KeyEventCommand sends a raw Android keycode to the specified device
func KeyEventCommand(req KeyEventRequest) *CommandResponse {
	if req.Keycode == "" {
		return NewErrorResponse(fmt.Errorf("keycode is required"))
	}

	device, err := ResolveDevice(req.Device)
	if err != nil {
		return NewErrorResponse(err)
	}

	if err := device.KeyEvent(req.Keycode); err != nil {
		return NewErrorResponse(err)
	}

	return NewSuccessResponse(map[string]interface{}{
		"message": fmt.Sprintf("Sent keyevent %s to device %s", req.Keycode, device.Serial()),
	})
}
