package cli

import (
	"github.com/spf13/cobra"

	"github.com/droidctl/droidctl/commands"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List connected devices",
	Long:  `List all Android devices and emulators known to adb. With --all, AVDs that exist on disk but are not running are included.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return reportResponse(commands.DevicesCommand(showAllDevices))
	},
}

var useCmd = &cobra.Command{
	Use:   "use [serial]",
	Short: "Set the active device for subsequent commands",
	Long:  `Sets a process-wide device override used by the server and MCP modes. Pass "auto" to clear the override and return to auto-detection.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return reportResponse(commands.SetActiveDeviceCommand(args[0]))
	},
}

var activeCmd = &cobra.Command{
	Use:   "active",
	Short: "Show which device commands will target",
	RunE: func(cmd *cobra.Command, args []string) error {
		return reportResponse(commands.ActiveDeviceCommand())
	},
}

var rebootCmd = &cobra.Command{
	Use:   "reboot",
	Short: "Reboot a device",
	RunE: func(cmd *cobra.Command, args []string) error {
		return reportResponse(commands.RebootCommand(deviceSerial))
	},
}

func init() {
	rootCmd.AddCommand(devicesCmd)
	rootCmd.AddCommand(useCmd)
	rootCmd.AddCommand(activeCmd)
	rootCmd.AddCommand(rebootCmd)

	// devices command flags
	devicesCmd.Flags().BoolVar(&showAllDevices, "all", false, "show all devices including offline AVDs")
	rebootCmd.Flags().StringVar(&deviceSerial, "device", "", "serial of the device to reboot")
}
