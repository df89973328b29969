package mcpserver

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/skovand/travelease/internal/catalog"
	"github.com/skovand/travelease/internal/models"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return New(cat)
}

func callTool(t *testing.T, srv *Server, name string, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	ctx := context.Background()
	req := mcp.CallToolRequest{}
	req.Method = "tools/call"
	req.Params.Name = name
	req.Params.Arguments = args

	// mcp-go doesn't expose a direct "call tool" test helper, so we call
	// the handler functions directly.
	var result *mcp.CallToolResult
	var err error

	switch name {
	case "list_destinations":
		result, err = srv.listDestinations(ctx, req)
	case "get_destination":
		result, err = srv.getDestination(ctx, req)
	case "search_tips":
		result, err = srv.searchTips(ctx, req)
	case "sticker_palette":
		result, err = srv.stickerPalette(ctx, req)
	case "trip_countdown":
		result, err = srv.tripCountdown(ctx, req)
	case "packing_list":
		result, err = srv.packingList(ctx, req)
	default:
		t.Fatalf("unknown tool: %s", name)
	}

	if err != nil {
		t.Fatalf("tool %s error: %v", name, err)
	}
	return result
}

func resultText(r *mcp.CallToolResult) string {
	if len(r.Content) > 0 {
		if tc, ok := r.Content[0].(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestListDestinations(t *testing.T) {
	srv := testServer(t)

	r := callTool(t, srv, "list_destinations", map[string]interface{}{})
	var all []models.Destination
	if err := json.Unmarshal([]byte(resultText(r)), &all); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(all) != 6 {
		t.Errorf("destinations = %d, want 6", len(all))
	}

	r = callTool(t, srv, "list_destinations", map[string]interface{}{"region": "Asia"})
	var asia []models.Destination
	if err := json.Unmarshal([]byte(resultText(r)), &asia); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, d := range asia {
		if d.Region != models.RegionAsia {
			t.Errorf("region filter leaked %s (%s)", d.ID, d.Region)
		}
	}
}

func TestGetDestinationMissing(t *testing.T) {
	srv := testServer(t)
	r := callTool(t, srv, "get_destination", map[string]interface{}{"id": "nope"})
	if !r.IsError {
		t.Error("expected error for missing destination")
	}
}

func TestSearchTips(t *testing.T) {
	srv := testServer(t)

	r := callTool(t, srv, "search_tips", map[string]interface{}{"category": "packing"})
	var tips []models.Tip
	if err := json.Unmarshal([]byte(resultText(r)), &tips); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, tip := range tips {
		if tip.Category != models.TipPacking {
			t.Errorf("category filter leaked %s", tip.ID)
		}
	}

	r = callTool(t, srv, "search_tips", map[string]interface{}{"query": "zzz-no-such-tip"})
	if resultText(r) != "no tips found" {
		t.Errorf("empty search = %q", resultText(r))
	}
}

func TestStickerPalette(t *testing.T) {
	srv := testServer(t)

	r := callTool(t, srv, "sticker_palette", map[string]interface{}{"time": "night"})
	var stickers []models.Sticker
	if err := json.Unmarshal([]byte(resultText(r)), &stickers); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	// 5 tagged night plus 10 anytime.
	if len(stickers) != 15 {
		t.Errorf("night palette = %d, want 15", len(stickers))
	}

	r = callTool(t, srv, "sticker_palette", map[string]interface{}{"time": "dusk"})
	if !r.IsError {
		t.Error("expected error for unknown time of day")
	}
}

func TestTripCountdown(t *testing.T) {
	srv := testServer(t)

	r := callTool(t, srv, "trip_countdown", map[string]interface{}{"date": "2099-01-01"})
	var left models.TimeLeft
	if err := json.Unmarshal([]byte(resultText(r)), &left); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if left.Days == 0 {
		t.Error("expected a non-zero countdown for a far-future date")
	}

	r = callTool(t, srv, "trip_countdown", map[string]interface{}{"date": "not-a-date"})
	if !r.IsError {
		t.Error("expected error for a malformed date")
	}
}

func TestPackingList(t *testing.T) {
	srv := testServer(t)

	r := callTool(t, srv, "packing_list", map[string]interface{}{})
	text := resultText(r)
	var grouped map[string][]models.PackingItem
	if err := json.Unmarshal([]byte(text), &grouped); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(grouped["essential"]) != 10 || len(grouped["optional"]) != 10 {
		t.Errorf("packing split = %d/%d, want 10/10",
			len(grouped["essential"]), len(grouped["optional"]))
	}
	if !strings.Contains(text, "Passport") {
		t.Error("expected Passport in the essential list")
	}
}
