package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/droidctl/droidctl/commands"
)

var ioCmd = &cobra.Command{
	Use:   "io",
	Short: "Input/output operations with devices",
	Long:  `Perform input/output operations like tapping, pressing buttons, and sending text to devices.`,
}

func parseCoords(coordsStr string, count int) ([]int, error) {
	parts := strings.Split(coordsStr, ",")
	if len(parts) != count {
		return nil, fmt.Errorf("invalid coordinate format. Expected %d comma-separated integers, got '%s'", count, coordsStr)
	}

	coords := make([]int, count)
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate value '%s', must be an integer", part)
		}
		coords[i] = n
	}

	return coords, nil
}

// reportResponse prints a command response and converts error responses
// into a non-zero exit.
func reportResponse(response *commands.CommandResponse) error {
	printJson(response)
	if response.Status == "error" {
		return fmt.Errorf("%s", response.Error)
	}
	return nil
}

var ioTapCmd = &cobra.Command{
	Use:   "tap [x,y]",
	Short: "Tap on a device screen at the given coordinates",
	Long:  `Sends a tap event to the specified device at the given x,y coordinates. Coordinates should be provided as a single string "x,y".`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		coords, err := parseCoords(args[0], 2)
		if err != nil {
			return reportResponse(commands.NewErrorResponse(err))
		}

		return reportResponse(commands.TapCommand(commands.TapRequest{
			Device: deviceSerial,
			X:      coords[0],
			Y:      coords[1],
		}))
	},
}

var ioLongPressCmd = &cobra.Command{
	Use:   "longpress [x,y]",
	Short: "Long press on a device screen at the given coordinates",
	Long:  `Sends a long press event to the specified device at the given x,y coordinates. Coordinates should be provided as a single string "x,y".`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		coords, err := parseCoords(args[0], 2)
		if err != nil {
			return reportResponse(commands.NewErrorResponse(err))
		}

		return reportResponse(commands.LongPressCommand(commands.LongPressRequest{
			Device: deviceSerial,
			X:      coords[0],
			Y:      coords[1],
		}))
	},
}

var ioSwipeCmd = &cobra.Command{
	Use:   "swipe [x1,y1,x2,y2]",
	Short: "Swipe on a device screen from one point to another",
	Long:  `Sends a swipe gesture to the specified device from coordinates x1,y1 to x2,y2. Coordinates should be provided as a single string "x1,y1,x2,y2".`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		coords, err := parseCoords(args[0], 4)
		if err != nil {
			return reportResponse(commands.NewErrorResponse(err))
		}

		return reportResponse(commands.SwipeCommand(commands.SwipeRequest{
			Device:     deviceSerial,
			X1:         coords[0],
			Y1:         coords[1],
			X2:         coords[2],
			Y2:         coords[3],
			DurationMs: swipeDurationMs,
		}))
	},
}

var ioButtonCmd = &cobra.Command{
	Use:   "button [button_name]",
	Short: "Press a hardware button on a device",
	Long:  `Sends a hardware button press event to the specified device (e.g., "home", "back", "volume_up", "power"). Button names are case-insensitive.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return reportResponse(commands.ButtonCommand(commands.ButtonRequest{
			Device: deviceSerial,
			Button: args[0],
		}))
	},
}

var ioKeyEventCmd = &cobra.Command{
	Use:   "keyevent [keycode]",
	Short: "Send a raw Android keycode to a device",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return reportResponse(commands.KeyEventCommand(commands.KeyEventRequest{
			Device:  deviceSerial,
			Keycode: args[0],
		}))
	},
}

var ioTextCmd = &cobra.Command{
	Use:   "text [text]",
	Short: "Send text input to a device",
	Long:  `Sends text input to the currently focused element on the specified device.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return reportResponse(commands.TextCommand(commands.TextRequest{
			Device: deviceSerial,
			Text:   args[0],
		}))
	},
}

func init() {
	rootCmd.AddCommand(ioCmd)

	// add io subcommands
	ioCmd.AddCommand(ioTapCmd)
	ioCmd.AddCommand(ioLongPressCmd)
	ioCmd.AddCommand(ioSwipeCmd)
	ioCmd.AddCommand(ioButtonCmd)
	ioCmd.AddCommand(ioKeyEventCmd)
	ioCmd.AddCommand(ioTextCmd)

	// io command flags
	for _, cmd := range []*cobra.Command{ioTapCmd, ioLongPressCmd, ioSwipeCmd, ioButtonCmd, ioKeyEventCmd, ioTextCmd} {
		cmd.Flags().StringVar(&deviceSerial, "device", "", "serial of the device to target")
	}
	ioSwipeCmd.Flags().IntVar(&swipeDurationMs, "duration", 0, "swipe duration in milliseconds")
}
