package api

import (
	"os"
	"strings"
	"testing"

	"github.com/qyinm/nearby/types"
)

func TestParseCategories(t *testing.T) {
	f, err := os.Open("../testdata/categories.json")
	if err != nil {
		t.Fatalf("open fixture: %v", err)
	}
	defer f.Close()

	categories, err := ParseCategories(f)
	if err != nil {
		t.Fatalf("ParseCategories: %v", err)
	}

	if len(categories) != 4 {
		t.Fatalf("categories count = %d, want 4", len(categories))
	}

	wantNames := []string{"Alimentação", "Compras", "Broken", "Hospedagem"}
	for i, c := range categories {
		if c.Name() != wantNames[i] {
			t.Errorf("category[%d] name = %q, want %q", i, c.Name(), wantNames[i])
		}
	}
	if categories[2].ID() != "" {
		t.Errorf("category[2] id = %q, want empty", categories[2].ID())
	}
}

func TestParseCategoriesBlankFirstStaysDefault(t *testing.T) {
	categories, err := ParseCategories(strings.NewReader(`[{"name":"Blank"},{"id":"c2","name":"Two"}]`))
	if err != nil {
		t.Fatalf("ParseCategories: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("categories count = %d, want 2", len(categories))
	}
	if got := types.DefaultCategory(categories); got != "" {
		t.Errorf("default category = %q, want empty", got)
	}
}

func TestParseMarkets(t *testing.T) {
	f, err := os.Open("../testdata/markets.json")
	if err != nil {
		t.Fatalf("open fixture: %v", err)
	}
	defer f.Close()

	markets, err := ParseMarkets(f)
	if err != nil {
		t.Fatalf("ParseMarkets: %v", err)
	}
	if len(markets) != 2 {
		t.Fatalf("markets count = %d, want 2", len(markets))
	}

	first := markets[0]
	if first.Name() != "Sabor Grill" {
		t.Errorf("first market name = %q, want %q", first.Name(), "Sabor Grill")
	}
	if first.Coupons() != 10 {
		t.Errorf("first market coupons = %d, want 10", first.Coupons())
	}
	if first.Latitude() != -23.559457 || first.Longitude() != -46.658180 {
		t.Errorf("first market coordinates = %f,%f", first.Latitude(), first.Longitude())
	}
	if markets[1].Name() != "Café Aroma" {
		t.Errorf("second market name = %q, want %q", markets[1].Name(), "Café Aroma")
	}
}

func TestParseMarket(t *testing.T) {
	f, err := os.Open("../testdata/market_detail.json")
	if err != nil {
		t.Fatalf("open fixture: %v", err)
	}
	defer f.Close()

	detail, err := ParseMarket(f)
	if err != nil {
		t.Fatalf("ParseMarket: %v", err)
	}
	if detail == nil {
		t.Fatal("expected detail, got nil")
	}

	place := detail.Place()
	if place.ID() != "012576ea-4441-4b8a-89e5-d5f32104c7c4" {
		t.Errorf("id = %q", place.ID())
	}
	if !strings.HasPrefix(place.Cover(), "https://images.unsplash.com/") {
		t.Errorf("cover = %q", place.Cover())
	}
	if len(detail.Rules()) != 2 {
		t.Fatalf("rules count = %d, want 2", len(detail.Rules()))
	}
	if detail.Rules()[0].Description() != "Válido apenas para consumo no local" {
		t.Errorf("first rule = %q", detail.Rules()[0].Description())
	}
}

func TestParseMarketEmpty(t *testing.T) {
	for _, body := range []string{"", "  \n", "null", "{}"} {
		detail, err := ParseMarket(strings.NewReader(body))
		if err != nil {
			t.Errorf("ParseMarket(%q): unexpected error %v", body, err)
		}
		if detail != nil {
			t.Errorf("ParseMarket(%q) = %+v, want nil", body, detail)
		}
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := ParseCategories(strings.NewReader("{not json")); err == nil {
		t.Error("ParseCategories: expected error for malformed JSON")
	}
	if _, err := ParseMarkets(strings.NewReader(`{"id":"m1"}`)); err == nil {
		t.Error("ParseMarkets: expected error for an object instead of an array")
	}
	if _, err := ParseMarket(strings.NewReader(`[1,2]`)); err == nil {
		t.Error("ParseMarket: expected error for an array instead of an object")
	}
}
