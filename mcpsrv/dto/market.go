package dto

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Market struct {
	ID          string  `json:"id"`
	CategoryID  string  `json:"category_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Address     string  `json:"address"`
	Phone       string  `json:"phone"`
	CoverURL    string  `json:"cover_url"`
	Coupons     int     `json:"coupons"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	// DistanceKM is set when the caller supplied a position
	DistanceKM *float64 `json:"distance_km,omitempty"`
}

type MarketDetail struct {
	Market
	Rules []Rule `json:"rules"`
}

type Rule struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}
