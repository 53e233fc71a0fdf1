package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"alumni/internal/alumni"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewServer creates an MCP server with tools for browsing the alumni showcase
func NewServer(svc *alumni.Service) *server.MCPServer {
	s := server.NewMCPServer(
		"Alumni Showcase",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	// Tool: list_categories - List school codes with their departments
	s.AddTool(
		mcp.NewTool("list_categories",
			mcp.WithDescription("List the school category codes, the departments each one groups, and how many alumni fall under it."),
		),
		handleListCategories(svc),
	)

	// Tool: list_alumni - Page through the filtered showcase
	s.AddTool(
		mcp.NewTool("list_alumni",
			mcp.WithDescription("List alumni for a category code or department name, newest passing year first. Use offset to page through results."),
			mcp.WithString("category",
				mcp.Description("'All', a category code (e.g. 'SOET', 'LAW') or an exact department name (default: All)"),
			),
			mcp.WithNumber("offset",
				mcp.Description("Number of alumni already seen (default: 0)"),
			),
			mcp.WithNumber("limit",
				mcp.Description("Maximum number of alumni to return (default: page size, max: 200)"),
			),
		),
		handleListAlumni(svc),
	)

	// Tool: get_card - Card view of one alumnus
	s.AddTool(
		mcp.NewTool("get_card",
			mcp.WithDescription("Get the showcase card for an alumnus by name: heading, photo URL, role and feedback."),
			mcp.WithString("name",
				mcp.Required(),
				mcp.Description("Full name as it appears in the dataset (case-insensitive)"),
			),
		),
		handleGetCard(svc),
	)

	return s
}

// CardResult is the card of one alumnus in tool responses
type CardResult struct {
	Name        string `json:"name"`
	PhotoURL    string `json:"photoUrl"`
	Heading     string `json:"heading,omitempty"`
	Designation string `json:"designation,omitempty"`
	Company     string `json:"company,omitempty"`
	Package     string `json:"package,omitempty"`
	Feedback    string `json:"feedback,omitempty"`
}

func handleListCategories(svc *alumni.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		counts, err := svc.CategoryCounts(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to list categories: %v", err)), nil
		}

		data, _ := json.MarshalIndent(counts, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func handleListAlumni(svc *alumni.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		offset := req.GetInt("offset", 0)
		if offset < 0 {
			return mcp.NewToolResultError("offset must not be negative"), nil
		}

		page, err := svc.Page(ctx, alumni.PageQuery{
			Category: req.GetString("category", alumni.AllCategory),
			Offset:   offset,
			Limit:    req.GetInt("limit", 0),
		})
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to list alumni: %v", err)), nil
		}
		if page.Records == nil {
			page.Records = []alumni.Record{}
		}

		data, _ := json.MarshalIndent(page, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func handleGetCard(svc *alumni.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := req.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError("name is required"), nil
		}

		rec, ok, err := svc.FindByName(ctx, name)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to get card: %v", err)), nil
		}
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("no alumnus named %q", name)), nil
		}

		card := svc.Cards().Project(rec)
		result := CardResult{
			Name:        card.Name,
			PhotoURL:    card.PhotoURL,
			Heading:     card.Heading,
			Designation: card.Designation,
			Company:     card.Company,
			Package:     card.Package,
			Feedback:    rec.Feedback,
		}

		data, _ := json.MarshalIndent(result, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}
