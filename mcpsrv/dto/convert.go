package dto

import (
	"math"

	"github.com/qyinm/nearby/types"
)

func FromCategory(c types.Category) Category {
	return Category{ID: c.ID(), Name: c.Name()}
}

func FromCategories(categories []types.Category) []Category {
	out := make([]Category, 0, len(categories))
	for _, c := range categories {
		out = append(out, FromCategory(c))
	}
	return out
}

func FromPlace(p types.Place) Market {
	return Market{
		ID:          p.ID(),
		CategoryID:  p.CategoryID(),
		Name:        p.Name(),
		Description: p.About(),
		Address:     p.Address(),
		Phone:       p.Phone(),
		CoverURL:    p.Cover(),
		Coupons:     p.Coupons(),
		Latitude:    p.Latitude(),
		Longitude:   p.Longitude(),
	}
}

func FromPlaces(places []types.Place) []Market {
	out := make([]Market, 0, len(places))
	for _, p := range places {
		out = append(out, FromPlace(p))
	}
	return out
}

// WithDistance returns m with its distance from origin, rounded to meters
func WithDistance(m Market, origin types.Location) Market {
	km := types.Distance(origin, types.Location{Latitude: m.Latitude, Longitude: m.Longitude})
	km = math.Round(km*1000) / 1000
	m.DistanceKM = &km
	return m
}

func FromPlaceDetail(pd types.PlaceDetail) MarketDetail {
	rules := make([]Rule, 0, len(pd.Rules()))
	for _, r := range pd.Rules() {
		rules = append(rules, Rule{ID: r.ID(), Description: r.Description()})
	}
	return MarketDetail{
		Market: FromPlace(pd.Place()),
		Rules:  rules,
	}
}
