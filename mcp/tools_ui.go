package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/droidctl/droidctl/commands"
	"github.com/droidctl/droidctl/devices/uidump"
)

// registerUITools registers UI hierarchy inspection and element tools
func (s *Server) registerUITools() {
	s.server.AddTool(
		withCriteriaOptions(mcp.NewTool("android_ui_dump",
			mcp.WithDescription("Dump the current UI hierarchy as a flat element list with a one-line summary. Transient screens (empty or showing only progress indicators) are re-sampled a few times before returning."),
			mcp.WithString("device",
				mcp.Description("Device serial. Omit to use the active device."),
			),
			mcp.WithBoolean("interactive_only",
				mcp.Description("Keep re-sampling until at least one clickable, checkable or scrollable element is present"),
			),
		)),
		s.handleUIDump,
	)

	s.server.AddTool(
		withCriteriaOptions(mcp.NewTool("android_find_elements",
			mcp.WithDescription("Find UI elements matching the given criteria. All given criteria must match. Zero matches is a normal result."),
			mcp.WithString("device",
				mcp.Description("Device serial. Omit to use the active device."),
			),
		)),
		s.handleFindElements,
	)

	s.server.AddTool(
		withCriteriaOptions(mcp.NewTool("android_tap_element",
			mcp.WithDescription("Find the first UI element matching the criteria and tap its center"),
			mcp.WithString("device",
				mcp.Description("Device serial. Omit to use the active device."),
			),
		)),
		s.handleTapElement,
	)

	s.server.AddTool(
		withCriteriaOptions(mcp.NewTool("android_wait_for",
			mcp.WithDescription("Poll the UI until an element matching the criteria appears, or the timeout expires"),
			mcp.WithString("device",
				mcp.Description("Device serial. Omit to use the active device."),
			),
			mcp.WithNumber("timeout",
				mcp.Description("Total wait timeout in milliseconds (default: 10000)"),
			),
			mcp.WithNumber("interval",
				mcp.Description("Poll interval in milliseconds (default: 500)"),
			),
		)),
		s.handleWaitFor,
	)
}

// withCriteriaOptions appends the shared element matching arguments to a tool
func withCriteriaOptions(tool mcp.Tool) mcp.Tool {
	options := []mcp.ToolOption{
		mcp.WithString("text",
			mcp.Description("Exact visible text"),
		),
		mcp.WithString("text_contains",
			mcp.Description("Substring of visible text"),
		),
		mcp.WithString("desc",
			mcp.Description("Exact content description"),
		),
		mcp.WithString("desc_contains",
			mcp.Description("Substring of content description"),
		),
		mcp.WithString("resource_id",
			mcp.Description("Exact resource id (e.g. com.app:id/login)"),
		),
		mcp.WithString("resource_id_contains",
			mcp.Description("Substring of resource id"),
		),
		mcp.WithString("class",
			mcp.Description("Exact widget class name (e.g. android.widget.Button)"),
		),
		mcp.WithBoolean("clickable",
			mcp.Description("Require the clickable flag to equal this value"),
		),
		mcp.WithBoolean("checkable",
			mcp.Description("Require the checkable flag to equal this value"),
		),
		mcp.WithBoolean("normalize_whitespace",
			mcp.Description("Collapse whitespace runs before comparing text fields"),
		),
		mcp.WithBoolean("case_insensitive",
			mcp.Description("Ignore case in string comparisons"),
		),
	}

	for _, option := range options {
		option(&tool)
	}
	return tool
}

// criteriaFromArgs builds matching criteria from tool arguments. Only
// arguments that are present become constraints.
func criteriaFromArgs(args map[string]interface{}) uidump.Criteria {
	var c uidump.Criteria

	setString := func(key string, dst **string) {
		if v, ok := args[key].(string); ok {
			value := v
			*dst = &value
		}
	}
	setBool := func(key string, dst **bool) {
		if v, ok := args[key].(bool); ok {
			value := v
			*dst = &value
		}
	}

	setString("text", &c.Text)
	setString("text_contains", &c.TextContains)
	setString("desc", &c.ContentDesc)
	setString("desc_contains", &c.ContentDescContains)
	setString("resource_id", &c.ResourceID)
	setString("resource_id_contains", &c.ResourceIDContains)
	setString("class", &c.Class)
	setBool("clickable", &c.Clickable)
	setBool("checkable", &c.Checkable)

	c.NormalizeWhitespace = boolArg(args, "normalize_whitespace")
	c.CaseInsensitive = boolArg(args, "case_insensitive")

	return c
}

func (s *Server) handleUIDump(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	response := s.app.Inspect(commands.InspectRequest{
		Device:          stringArg(args, "device"),
		InteractiveOnly: boolArg(args, "interactive_only"),
	})
	if response.Status == "error" {
		return resultFromResponse(response)
	}

	criteria := criteriaFromArgs(args)
	if criteria.IsEmpty() {
		return resultFromResponse(response)
	}

	inspect, ok := response.Data.(commands.InspectResponse)
	if !ok {
		return nil, fmt.Errorf("unexpected dump result type %T", response.Data)
	}

	filtered := uidump.Find(inspect.Elements, criteria)
	return resultFromResponse(commands.NewSuccessResponse(commands.InspectResponse{
		Elements: filtered,
		Summary:  uidump.Summarize(filtered),
	}))
}

func (s *Server) handleFindElements(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	return resultFromResponse(s.app.Find(commands.FindRequest{
		Device:   stringArg(args, "device"),
		Criteria: criteriaFromArgs(args),
	}))
}

func (s *Server) handleTapElement(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	criteria := criteriaFromArgs(args)
	if criteria.IsEmpty() {
		return nil, fmt.Errorf("at least one matching criterion is required")
	}

	return resultFromResponse(s.app.TapElement(commands.TapElementRequest{
		Device:   stringArg(args, "device"),
		Criteria: criteria,
	}))
}

func (s *Server) handleWaitFor(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	criteria := criteriaFromArgs(args)
	if criteria.IsEmpty() {
		return nil, fmt.Errorf("at least one matching criterion is required")
	}

	req := commands.WaitForRequest{
		Device:   stringArg(args, "device"),
		Criteria: criteria,
	}
	if timeout, ok := intArg(args, "timeout"); ok {
		req.TimeoutMs = timeout
	}
	if interval, ok := intArg(args, "interval"); ok {
		req.IntervalMs = interval
	}

	return resultFromResponse(s.app.WaitFor(req))
}
