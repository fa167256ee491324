package cli

import (
	"github.com/spf13/cobra"

	"github.com/droidctl/droidctl/commands"
	"github.com/droidctl/droidctl/devices/uidump"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Inspect and search the on-screen UI hierarchy",
	Long:  `Dump the current widget hierarchy, search it for elements, tap matched elements, or wait for an element to appear.`,
}

var uiInspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Dump the current UI hierarchy as a typed element list",
	RunE: func(cmd *cobra.Command, args []string) error {
		return reportResponse(commands.InspectCommand(commands.InspectRequest{
			Device:          deviceSerial,
			InteractiveOnly: interactiveOnly,
		}))
	},
}

var uiFindCmd = &cobra.Command{
	Use:   "find",
	Short: "Find elements matching the given criteria",
	Long:  `Searches the current UI hierarchy for elements matching every given criterion. Zero matches is a normal result.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return reportResponse(commands.FindCommand(commands.FindRequest{
			Device:   deviceSerial,
			Criteria: buildCriteria(cmd),
		}))
	},
}

var uiTapCmd = &cobra.Command{
	Use:   "tap",
	Short: "Tap the first element matching the given criteria",
	RunE: func(cmd *cobra.Command, args []string) error {
		return reportResponse(commands.TapElementCommand(commands.TapElementRequest{
			Device:   deviceSerial,
			Criteria: buildCriteria(cmd),
		}))
	},
}

var uiWaitCmd = &cobra.Command{
	Use:   "wait",
	Short: "Wait until an element matching the given criteria appears",
	RunE: func(cmd *cobra.Command, args []string) error {
		return reportResponse(commands.WaitForCommand(commands.WaitForRequest{
			Device:     deviceSerial,
			Criteria:   buildCriteria(cmd),
			TimeoutMs:  waitTimeoutMs,
			IntervalMs: waitIntervalMs,
		}))
	},
}

// buildCriteria translates the criteria flags into a search object. Only
// flags the user actually set become constraints.
func buildCriteria(cmd *cobra.Command) uidump.Criteria {
	criteria := uidump.Criteria{
		NormalizeWhitespace: findNormalizeWhitespace,
		CaseInsensitive:     findCaseInsensitive,
	}

	if cmd.Flags().Changed("text") {
		criteria.Text = &findText
	}
	if cmd.Flags().Changed("text-contains") {
		criteria.TextContains = &findTextContains
	}
	if cmd.Flags().Changed("desc") {
		criteria.ContentDesc = &findContentDesc
	}
	if cmd.Flags().Changed("desc-contains") {
		criteria.ContentDescContains = &findContentDescContains
	}
	if cmd.Flags().Changed("resource-id") {
		criteria.ResourceID = &findResourceID
	}
	if cmd.Flags().Changed("resource-id-contains") {
		criteria.ResourceIDContains = &findResourceIDContains
	}
	if cmd.Flags().Changed("class") {
		criteria.Class = &findClass
	}
	if cmd.Flags().Changed("clickable") {
		criteria.Clickable = &findClickable
	}
	if cmd.Flags().Changed("checkable") {
		criteria.Checkable = &findCheckable
	}

	return criteria
}

func addCriteriaFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&findText, "text", "", "match exact element text")
	cmd.Flags().StringVar(&findTextContains, "text-contains", "", "match elements whose text contains this substring")
	cmd.Flags().StringVar(&findContentDesc, "desc", "", "match exact content description")
	cmd.Flags().StringVar(&findContentDescContains, "desc-contains", "", "match elements whose content description contains this substring")
	cmd.Flags().StringVar(&findResourceID, "resource-id", "", "match exact resource id")
	cmd.Flags().StringVar(&findResourceIDContains, "resource-id-contains", "", "match elements whose resource id contains this substring")
	cmd.Flags().StringVar(&findClass, "class", "", "match exact widget class name")
	cmd.Flags().BoolVar(&findClickable, "clickable", false, "require the clickable flag to equal this value")
	cmd.Flags().BoolVar(&findCheckable, "checkable", false, "require the checkable flag to equal this value")
	cmd.Flags().BoolVar(&findNormalizeWhitespace, "normalize-whitespace", false, "collapse whitespace runs before comparing text")
	cmd.Flags().BoolVar(&findCaseInsensitive, "ignore-case", false, "case-fold before comparing")
}

func init() {
	rootCmd.AddCommand(uiCmd)

	uiCmd.AddCommand(uiInspectCmd)
	uiCmd.AddCommand(uiFindCmd)
	uiCmd.AddCommand(uiTapCmd)
	uiCmd.AddCommand(uiWaitCmd)

	for _, cmd := range []*cobra.Command{uiInspectCmd, uiFindCmd, uiTapCmd, uiWaitCmd} {
		cmd.Flags().StringVar(&deviceSerial, "device", "", "serial of the device to target")
	}

	uiInspectCmd.Flags().BoolVar(&interactiveOnly, "interactive-only", false, "retry until at least one interactive element is present")

	addCriteriaFlags(uiFindCmd)
	addCriteriaFlags(uiTapCmd)
	addCriteriaFlags(uiWaitCmd)

	uiWaitCmd.Flags().IntVar(&waitTimeoutMs, "timeout", 10000, "total wait budget in milliseconds")
	uiWaitCmd.Flags().IntVar(&waitIntervalMs, "interval", 500, "poll interval in milliseconds")
}
