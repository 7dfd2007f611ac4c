package api

import (
	"bytes"
	"fmt"
	"io"

	"github.com/qyinm/nearby/types"
	"github.com/segmentio/encoding/json"
)

type categoryPayload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type marketPayload struct {
	ID          string  `json:"id"`
	CategoryID  string  `json:"categoryId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Address     string  `json:"address"`
	Phone       string  `json:"phone"`
	Cover       string  `json:"cover"`
	Coupons     int     `json:"coupons"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

type rulePayload struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

type marketDetailPayload struct {
	marketPayload
	Rules []rulePayload `json:"rules"`
}

func (m marketPayload) toPlace() types.Place {
	return types.NewPlace(
		m.ID,
		m.CategoryID,
		m.Name,
		m.Description,
		m.Address,
		m.Phone,
		m.Cover,
		m.Coupons,
		m.Latitude,
		m.Longitude,
	)
}

// ParseCategories decodes the /categories response, keeping the returned order.
// Entries without an id are kept so the first element stays the default one;
// selecting such an entry loads no places.
func ParseCategories(reader io.Reader) ([]types.Category, error) {
	var payload []categoryPayload
	if err := json.NewDecoder(reader).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}

	categories := make([]types.Category, 0, len(payload))
	for _, c := range payload {
		categories = append(categories, types.NewCategory(c.ID, c.Name))
	}
	return categories, nil
}

// ParseMarkets decodes the /markets/category/{id} response.
// Entries without an id are dropped since nothing can address them.
func ParseMarkets(reader io.Reader) ([]types.Place, error) {
	var payload []marketPayload
	if err := json.NewDecoder(reader).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}

	places := make([]types.Place, 0, len(payload))
	for _, m := range payload {
		if m.ID == "" {
			continue
		}
		places = append(places, m.toPlace())
	}
	return places, nil
}

// ParseMarket decodes the /markets/{id} response. An empty body or a JSON
// null yields a nil detail and no error.
func ParseMarket(reader io.Reader) (*types.PlaceDetail, error) {
	b, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil, nil
	}

	var payload marketDetailPayload
	if err := json.Unmarshal(b, &payload); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}
	if payload.ID == "" {
		return nil, nil
	}

	rules := make([]types.Rule, 0, len(payload.Rules))
	for _, r := range payload.Rules {
		rules = append(rules, types.NewRule(r.ID, r.Description))
	}
	detail := types.NewPlaceDetail(payload.toPlace(), rules)
	return &detail, nil
}
