package types

import (
	"context"
	"math"

	"github.com/charmbracelet/bubbles/list"
)

// Location is a single coordinate snapshot. The zero value is {0,0}.
type Location struct {
	Latitude  float64
	Longitude float64
}

// IsZero reports whether the location was never set
func (l Location) IsZero() bool {
	return l.Latitude == 0 && l.Longitude == 0
}

const earthRadiusKm = 6371.0

// Distance returns the great-circle distance between a and b in kilometers
func Distance(a, b Location) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

// Category groups places under a filter tag
type Category struct {
	id   string
	name string
}

// NewCategory creates a new Category
func NewCategory(id, name string) Category {
	return Category{id: id, name: name}
}

func (c Category) ID() string   { return c.id }
func (c Category) Name() string { return c.name }

// list.Item interface implementation
func (c Category) Title() string       { return c.name }
func (c Category) Description() string { return "" }
func (c Category) FilterValue() string { return c.name }

var _ list.Item = Category{}

// DefaultCategory returns the category selected after a successful load:
// the first one in the returned order, or "" when there is none.
func DefaultCategory(categories []Category) string {
	if len(categories) == 0 {
		return ""
	}
	return categories[0].id
}

// HasCategory reports whether id belongs to categories
func HasCategory(categories []Category, id string) bool {
	for _, c := range categories {
		if c.id == id {
			return true
		}
	}
	return false
}

// Place is a market summary as listed per category
type Place struct {
	id          string
	categoryID  string
	name        string
	description string
	address     string
	phone       string
	cover       string
	coupons     int
	location    Location
}

// NewPlace creates a new Place with the given fields
func NewPlace(id, categoryID, name, description, address, phone, cover string, coupons int, latitude, longitude float64) Place {
	return Place{
		id:          id,
		categoryID:  categoryID,
		name:        name,
		description: description,
		address:     address,
		phone:       phone,
		cover:       cover,
		coupons:     coupons,
		location:    Location{Latitude: latitude, Longitude: longitude},
	}
}

// Getters for Place fields
func (p Place) ID() string         { return p.id }
func (p Place) CategoryID() string { return p.categoryID }
func (p Place) Name() string       { return p.name }
func (p Place) About() string      { return p.description }
func (p Place) Address() string    { return p.address }
func (p Place) Phone() string      { return p.phone }
func (p Place) Cover() string      { return p.cover }
func (p Place) Coupons() int       { return p.coupons }
func (p Place) Location() Location { return p.location }
func (p Place) Latitude() float64  { return p.location.Latitude }
func (p Place) Longitude() float64 { return p.location.Longitude }

// list.Item interface implementation
func (p Place) Title() string       { return p.name }
func (p Place) Description() string { return p.address }
func (p Place) FilterValue() string { return p.name }

// Compile-time check that Place implements list.Item
var _ list.Item = Place{}

// Rule is a usage rule attached to a place's coupons
type Rule struct {
	id          string
	description string
}

// NewRule creates a new Rule
func NewRule(id, description string) Rule {
	return Rule{id: id, description: description}
}

func (r Rule) ID() string          { return r.id }
func (r Rule) Description() string { return r.description }

// PlaceDetail extends Place with the fields only the detail endpoint returns
type PlaceDetail struct {
	place Place
	rules []Rule
}

// NewPlaceDetail creates a new PlaceDetail
func NewPlaceDetail(place Place, rules []Rule) PlaceDetail {
	return PlaceDetail{place: place, rules: rules}
}

func (pd PlaceDetail) Place() Place  { return pd.place }
func (pd PlaceDetail) Rules() []Rule { return pd.rules }

// MarketSource is the data access abstraction shared by the TUI and the MCP server.
type MarketSource interface {
	GetCategories(ctx context.Context) ([]Category, error)
	GetMarketsByCategory(ctx context.Context, categoryID string) ([]Place, error)
	// GetMarket returns nil with a nil error when the API answers without data.
	GetMarket(ctx context.Context, id string) (*PlaceDetail, error)
}
