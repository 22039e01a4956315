package mcp

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/2beens/fitplan/internal/plans"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// WeekInput is the input of every tool; week_start may be omitted for the current week.
type WeekInput struct {
	WeekStart string `json:"week_start,omitempty" jsonschema:"Monday of the week (YYYY-MM-DD); defaults to the current week"`
}

// Handler parses tool input, calls the service and formats the MCP result.
type Handler struct {
	service contextService
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) GetPlanTool() func(context.Context, *mcp.CallToolRequest, WeekInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in WeekInput) (*mcp.CallToolResult, any, error) {
		weekStart, err := h.service.ResolveWeek(in.WeekStart)
		if err != nil {
			return errorResult("Invalid week_start: use YYYY-MM-DD"), nil, nil
		}

		summary, err := h.service.PlanSummary(ctx, weekStart)
		if err != nil {
			if errors.Is(err, plans.ErrPlanNotFound) {
				return textResult("No plan for week " + weekStart.String()), nil, nil
			}
			return errorResult("Error fetching plan: " + err.Error()), nil, nil
		}
		return textResult(summary), nil, nil
	}
}

func (h *Handler) GetWeekStatsTool() func(context.Context, *mcp.CallToolRequest, WeekInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in WeekInput) (*mcp.CallToolResult, any, error) {
		weekStart, err := h.service.ResolveWeek(in.WeekStart)
		if err != nil {
			return errorResult("Invalid week_start: use YYYY-MM-DD"), nil, nil
		}

		stats, err := h.service.WeekStats(ctx, weekStart)
		if err != nil {
			if errors.Is(err, plans.ErrPlanNotFound) {
				return textResult("No plan for week " + weekStart.String()), nil, nil
			}
			return errorResult("Error fetching stats: " + err.Error()), nil, nil
		}
		return jsonResult(stats), nil, nil
	}
}

func (h *Handler) PreviewNextWeekTool() func(context.Context, *mcp.CallToolRequest, WeekInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in WeekInput) (*mcp.CallToolResult, any, error) {
		weekStart, err := h.service.ResolveWeek(in.WeekStart)
		if err != nil {
			return errorResult("Invalid week_start: use YYYY-MM-DD"), nil, nil
		}

		preview, err := h.service.PreviewNextWeek(ctx, weekStart)
		if err != nil {
			return errorResult("Error generating preview: " + err.Error()), nil, nil
		}
		return jsonResult(preview), nil, nil
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding result: " + err.Error())
	}
	return textResult(string(b))
}
