// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes the travel catalog tools for LLM integration via stdio
// transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/skovand/travelease/internal/catalog"
	"github.com/skovand/travelease/internal/countdown"
	"github.com/skovand/travelease/internal/models"
)

// Server wraps the MCP server with the travel catalog tools.
type Server struct {
	mcp *server.MCPServer
	cat *catalog.Catalog
}

// New creates a new MCP server with all tools registered.
func New(cat *catalog.Catalog) *Server {
	s := &Server{cat: cat}

	s.mcp = server.NewMCPServer(
		"TravelEase",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("list_destinations",
		mcp.WithDescription("List featured travel destinations, optionally filtered by region."),
		mcp.WithString("region", mcp.Description("Region filter (e.g. Europe, Asia); empty or 'all' for everything")),
	), s.listDestinations)

	s.mcp.AddTool(mcp.NewTool("get_destination",
		mcp.WithDescription("Get the full profile of one destination, including highlights."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Destination id (e.g. d1)")),
	), s.getDestination)

	s.mcp.AddTool(mcp.NewTool("search_tips",
		mcp.WithDescription("Search travel tips by free text and/or category."),
		mcp.WithString("query", mcp.Description("Substring to match against tip titles and content")),
		mcp.WithString("category", mcp.Description("Category filter (e.g. packing, safety); empty or 'all' for everything")),
	), s.searchTips)

	s.mcp.AddTool(mcp.NewTool("sticker_palette",
		mcp.WithDescription("List the moodboard sticker palette for a time of day. "+
			"Stickers tagged 'anytime' are always included."),
		mcp.WithString("time", mcp.Description("Time of day: morning, afternoon, evening, night or anytime")),
	), s.stickerPalette)

	s.mcp.AddTool(mcp.NewTool("trip_countdown",
		mcp.WithDescription("Break down the time remaining until a trip date into days, hours, minutes and seconds."),
		mcp.WithString("date", mcp.Required(), mcp.Description("Trip date in YYYY-MM-DD format")),
	), s.tripCountdown)

	s.mcp.AddTool(mcp.NewTool("packing_list",
		mcp.WithDescription("The starter packing checklist, split into essential and optional items."),
	), s.packingList)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) listDestinations(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	region := ""
	if r, err := req.RequireString("region"); err == nil {
		region = r
	}
	out, _ := json.MarshalIndent(s.cat.Destinations(region), "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) getDestination(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	dest, err := s.cat.Destination(id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", id)), nil
	}
	out, _ := json.MarshalIndent(dest, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) searchTips(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := ""
	if q, err := req.RequireString("query"); err == nil {
		query = strings.ToLower(q)
	}
	category := ""
	if c, err := req.RequireString("category"); err == nil {
		category = c
	}

	var matched []models.Tip
	for _, tip := range s.cat.Tips(category) {
		if query == "" ||
			strings.Contains(strings.ToLower(tip.Title), query) ||
			strings.Contains(strings.ToLower(tip.Content), query) {
			matched = append(matched, tip)
		}
	}
	if len(matched) == 0 {
		return mcp.NewToolResultText("no tips found"), nil
	}
	out, _ := json.MarshalIndent(matched, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) stickerPalette(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tod := models.TimeAnytime
	if v, err := req.RequireString("time"); err == nil && v != "" {
		tod = models.TimeOfDay(v)
	}
	if !tod.Valid() {
		return mcp.NewToolResultError(fmt.Sprintf("unknown time of day: %s", tod)), nil
	}
	out, _ := json.MarshalIndent(s.cat.StickersForTime(tod), "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) tripCountdown(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dateStr, err := req.RequireString("date")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	target, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("bad date %q: expected YYYY-MM-DD", dateStr)), nil
	}
	out, _ := json.MarshalIndent(countdown.Remaining(target, time.Now()), "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) packingList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	essential := make([]models.PackingItem, 0)
	optional := make([]models.PackingItem, 0)
	for _, item := range s.cat.PackingSeed() {
		if item.Essential {
			essential = append(essential, item)
		} else {
			optional = append(optional, item)
		}
	}
	out, _ := json.MarshalIndent(map[string][]models.PackingItem{
		"essential": essential,
		"optional":  optional,
	}, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}
