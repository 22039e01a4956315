package mcp

import (
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/2beens/fitplan/internal/plans"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func TestNewServer_Tools(t *testing.T) {
	ctx := context.Background()
	stats := &plans.Stats{WeeklyCompletion: 1, CompletedTrainingDays: 3, TotalTrainingDays: 3}
	server := NewServer(&mockPlanService{stats: stats})

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("server connect: %v", err)
	}
	defer serverSession.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	defer session.Close()

	tools, err := session.ListTools(ctx, nil)
	if err != nil {
		t.Fatalf("list tools: %v", err)
	}
	names := make([]string, 0, len(tools.Tools))
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
	}
	sort.Strings(names)
	if got := strings.Join(names, ","); got != "get_plan,get_week_stats,preview_next_week" {
		t.Fatalf("tools = %s", got)
	}

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "get_week_stats",
		Arguments: map[string]any{"week_start": "2024-05-06"},
	})
	if err != nil {
		t.Fatalf("call tool: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected IsError")
	}
	if text := resultText(t, res); !strings.Contains(text, `"weekly_completion": 1`) {
		t.Fatalf("content text = %q", text)
	}
}
