package cli

import (
	"github.com/spf13/cobra"

	"github.com/droidctl/droidctl/commands"
)

var appsCmd = &cobra.Command{
	Use:   "apps",
	Short: "Manage applications on a device",
}

var appsLaunchCmd = &cobra.Command{
	Use:   "launch [package]",
	Short: "Launch an app on a device",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return reportResponse(commands.LaunchAppCommand(commands.AppRequest{
			Device:  deviceSerial,
			Package: args[0],
		}))
	},
}

var appsTerminateCmd = &cobra.Command{
	Use:   "terminate [package]",
	Short: "Force-stop an app on a device",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return reportResponse(commands.TerminateAppCommand(commands.AppRequest{
			Device:  deviceSerial,
			Package: args[0],
		}))
	},
}

func init() {
	rootCmd.AddCommand(appsCmd)

	appsCmd.AddCommand(appsLaunchCmd)
	appsCmd.AddCommand(appsTerminateCmd)

	appsLaunchCmd.Flags().StringVar(&deviceSerial, "device", "", "serial of the device to target")
	appsTerminateCmd.Flags().StringVar(&deviceSerial, "device", "", "serial of the device to target")
}
