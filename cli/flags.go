package cli

var (
	verbose bool

	// all commands
	deviceSerial string

	// for screenshot command
	screenshotOutputPath  string
	screenshotFormat      string
	screenshotJpegQuality int

	// for devices command
	showAllDevices bool

	// for ui inspect
	interactiveOnly bool

	// for ui find / tap / wait
	findText                string
	findTextContains        string
	findContentDesc         string
	findContentDescContains string
	findResourceID          string
	findResourceIDContains  string
	findClass               string
	findClickable           bool
	findCheckable           bool
	findNormalizeWhitespace bool
	findCaseInsensitive     bool

	// for ui wait
	waitTimeoutMs  int
	waitIntervalMs int

	// for swipe command
	swipeDurationMs int
)
