package mcp

import (
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds a read only MCP server over the weekly plans: plan, stats and
// next week preview. Served over stdio by cmd/fitplan_mcp and mounted at /mcp by the backend.
func NewServer(plans planService) *mcp.Server {
	h := NewHandler(NewContextService(plans, time.Now))
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "fitplan",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_plan",
		Description: "Returns the workout plan of a week as a markdown table: each day's date, title, rest flag, completion and exercises, plus the completion summary. Arg: week_start (YYYY-MM-DD Monday), defaults to the current week.",
	}, h.GetPlanTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_week_stats",
		Description: "Returns completion statistics of a week as JSON: weekly_completion, completed/total training days, completed/total exercises. Arg: week_start (YYYY-MM-DD), defaults to the current week.",
	}, h.GetWeekStatsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "preview_next_week",
		Description: "Generates, without saving, the plan for the week after week_start based on how much of week_start's plan was completed. Returns the preview as JSON. Arg: week_start (YYYY-MM-DD), defaults to the current week.",
	}, h.PreviewNextWeekTool())

	return s
}
