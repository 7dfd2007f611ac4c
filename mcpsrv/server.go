package mcpsrv

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/qyinm/nearby/mcpsrv/dto"
	"github.com/qyinm/nearby/types"
)

type categoryListArgs struct {
	Query  string `json:"query,omitempty" jsonschema:"Optional category name filter"`
	Offset int    `json:"offset,omitempty" jsonschema:"Optional pagination offset"`
	Limit  int    `json:"limit,omitempty" jsonschema:"Optional page size limit"`
}

type marketListArgs struct {
	CategoryID string   `json:"category_id" jsonschema:"Category id"`
	Limit      int      `json:"limit,omitempty" jsonschema:"Optional maximum number of markets"`
	Latitude   *float64 `json:"latitude,omitempty" jsonschema:"Optional latitude to sort by distance"`
	Longitude  *float64 `json:"longitude,omitempty" jsonschema:"Optional longitude to sort by distance"`
}

type marketGetDetailArgs struct {
	ID string `json:"id" jsonschema:"Market id"`
}

type categoryListOutput struct {
	Query      string         `json:"query"`
	Offset     int            `json:"offset"`
	Limit      int            `json:"limit"`
	NextOffset int            `json:"next_offset"`
	HasMore    bool           `json:"has_more"`
	Total      int            `json:"total"`
	Items      []dto.Category `json:"items"`
}

type marketListOutput struct {
	CategoryID string       `json:"category_id"`
	Total      int          `json:"total"`
	Items      []dto.Market `json:"items"`
}

type marketGetDetailOutput struct {
	Item dto.MarketDetail `json:"item"`
}

type ServerOptions struct {
	Log *slog.Logger
}

func NewServer(source types.MarketSource, version string, opts *ServerOptions) *mcp.Server {
	if strings.TrimSpace(version) == "" {
		version = "dev"
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	if opts != nil && opts.Log != nil {
		log = opts.Log
	}

	server := mcp.NewServer(&mcp.Implementation{Name: "nearby", Version: version}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "category_list",
		Description: "List market categories.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args categoryListArgs) (*mcp.CallToolResult, categoryListOutput, error) {
		return categoryListHandler(ctx, req, args, source, log)
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "market_list",
		Description: "List markets of a category, nearest first when a position is given.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args marketListArgs) (*mcp.CallToolResult, marketListOutput, error) {
		return marketListHandler(ctx, req, args, source, log)
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "market_get_detail",
		Description: "Get a market with its coupon rules.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args marketGetDetailArgs) (*mcp.CallToolResult, marketGetDetailOutput, error) {
		return marketGetDetailHandler(ctx, req, args, source, log)
	})

	return server
}

func categoryListHandler(ctx context.Context, _ *mcp.CallToolRequest, args categoryListArgs, source types.MarketSource, log *slog.Logger) (*mcp.CallToolResult, categoryListOutput, error) {
	all, err := source.GetCategories(ctx)
	if err != nil {
		log.Error("fetch categories failed", "error", err)
		return errorToolResult("fetch categories failed"), categoryListOutput{}, nil
	}

	query := strings.TrimSpace(strings.ToLower(args.Query))
	filtered := make([]types.Category, 0, len(all))
	for _, c := range all {
		if query == "" || strings.Contains(strings.ToLower(c.Name()), query) {
			filtered = append(filtered, c)
		}
	}

	limit := args.Limit
	if limit <= 0 {
		limit = 25
	}
	if limit > 100 {
		limit = 100
	}
	offset := args.Offset
	if offset < 0 {
		offset = 0
	}
	if offset > len(filtered) {
		offset = len(filtered)
	}

	end := offset + limit
	if end > len(filtered) {
		end = len(filtered)
	}
	hasMore := end < len(filtered)
	nextOffset := end
	if !hasMore {
		nextOffset = -1
	}

	return nil, categoryListOutput{
		Query:      args.Query,
		Offset:     offset,
		Limit:      limit,
		NextOffset: nextOffset,
		HasMore:    hasMore,
		Total:      len(filtered),
		Items:      dto.FromCategories(filtered[offset:end]),
	}, nil
}

func marketListHandler(ctx context.Context, _ *mcp.CallToolRequest, args marketListArgs, source types.MarketSource, log *slog.Logger) (*mcp.CallToolResult, marketListOutput, error) {
	categoryID := strings.TrimSpace(args.CategoryID)
	if categoryID == "" {
		return errorToolResult("category_id is required"), marketListOutput{}, nil
	}
	origin, err := parseOrigin(args.Latitude, args.Longitude)
	if err != nil {
		return errorToolResult(err.Error()), marketListOutput{}, nil
	}

	places, err := source.GetMarketsByCategory(ctx, categoryID)
	if err != nil {
		log.Error("fetch markets failed", "category_id", categoryID, "error", err)
		return errorToolResult("fetch markets failed"), marketListOutput{}, nil
	}

	items := dto.FromPlaces(places)
	if origin != nil {
		for i := range items {
			items[i] = dto.WithDistance(items[i], *origin)
		}
		sort.SliceStable(items, func(i, j int) bool {
			return *items[i].DistanceKM < *items[j].DistanceKM
		})
	}
	if args.Limit > 0 && args.Limit < len(items) {
		items = items[:args.Limit]
	}

	return nil, marketListOutput{
		CategoryID: categoryID,
		Total:      len(items),
		Items:      items,
	}, nil
}

func marketGetDetailHandler(ctx context.Context, _ *mcp.CallToolRequest, args marketGetDetailArgs, source types.MarketSource, log *slog.Logger) (*mcp.CallToolResult, marketGetDetailOutput, error) {
	id := strings.TrimSpace(args.ID)
	if id == "" {
		return errorToolResult("id is required"), marketGetDetailOutput{}, nil
	}

	detail, err := source.GetMarket(ctx, id)
	if err != nil {
		log.Error("fetch market failed", "id", id, "error", err)
		return errorToolResult("fetch market failed"), marketGetDetailOutput{}, nil
	}
	if detail == nil {
		return errorToolResult(fmt.Sprintf("market %q not found", id)), marketGetDetailOutput{}, nil
	}

	return nil, marketGetDetailOutput{Item: dto.FromPlaceDetail(*detail)}, nil
}

// parseOrigin requires both coordinates or neither
func parseOrigin(lat, lon *float64) (*types.Location, error) {
	if lat == nil && lon == nil {
		return nil, nil
	}
	if lat == nil || lon == nil {
		return nil, fmt.Errorf("latitude and longitude must be given together")
	}
	if *lat < -90 || *lat > 90 {
		return nil, fmt.Errorf("invalid latitude %v; expected -90..90", *lat)
	}
	if *lon < -180 || *lon > 180 {
		return nil, fmt.Errorf("invalid longitude %v; expected -180..180", *lon)
	}
	return &types.Location{Latitude: *lat, Longitude: *lon}, nil
}

func errorToolResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
	}
}
