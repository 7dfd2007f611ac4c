package ui

import (
	"slices"
	"testing"

	"github.com/qyinm/nearby/types"
)

func mountedHome(t *testing.T, src *fakeSource) (*HomeModel, categoriesMsg) {
	t.Helper()
	home := NewHome(src, deniedLocator(), testTheme(), testLogger())
	home.SetSize(100, 40)

	msgs := collect(home.Mount())
	if home.State() != CategoriesLoading {
		t.Fatalf("state after mount = %v, want categoriesLoading", home.State())
	}
	catMsg, ok := findMsg[categoriesMsg](msgs)
	if !ok {
		t.Fatalf("mount did not fetch categories: %v", msgs)
	}
	if _, ok := findMsg[locationMsg](msgs); !ok {
		t.Fatalf("mount did not request the location: %v", msgs)
	}
	return home, catMsg
}

// loadedHome drives the home screen until the first category's places are shown
func loadedHome(t *testing.T, src *fakeSource) *HomeModel {
	t.Helper()
	home, catMsg := mountedHome(t, src)
	msgs := collect(home.Update(catMsg))
	mktMsg, ok := findMsg[marketsMsg](msgs)
	if !ok {
		t.Fatalf("category load did not fetch markets: %v", msgs)
	}
	if cmd := home.Update(mktMsg); cmd != nil {
		t.Fatalf("unexpected command after markets load: %v", collect(cmd))
	}
	return home
}

func placeIDs(places []types.Place) []string {
	ids := make([]string, len(places))
	for i, p := range places {
		ids[i] = p.ID()
	}
	return ids
}

func TestHomeSelectsFirstCategory(t *testing.T) {
	src := newFakeSource()
	home, catMsg := mountedHome(t, src)

	msgs := collect(home.Update(catMsg))
	if home.Selected() != "c1" {
		t.Fatalf("selected = %q, want c1", home.Selected())
	}
	if home.State() != MarketsLoading {
		t.Fatalf("state = %v, want marketsLoading", home.State())
	}

	mktMsg, ok := findMsg[marketsMsg](msgs)
	if !ok || mktMsg.categoryID != "c1" {
		t.Fatalf("expected a markets fetch for c1, got %v", msgs)
	}
	if !slices.Contains(src.Requests(), "/markets/category/c1") {
		t.Fatalf("requests = %v, want /markets/category/c1", src.Requests())
	}

	home.Update(mktMsg)
	if home.State() != MarketsLoaded {
		t.Errorf("state = %v, want marketsLoaded", home.State())
	}
	if got := placeIDs(home.Markets()); !slices.Equal(got, []string{"m1", "m2"}) {
		t.Errorf("markets = %v, want [m1 m2]", got)
	}
	if home.Sheet().Len() != 2 {
		t.Errorf("sheet items = %d, want 2", home.Sheet().Len())
	}
}

func TestHomeEmptyCategoriesSkipsMarketsFetch(t *testing.T) {
	src := newFakeSource()
	src.categories = nil
	home, catMsg := mountedHome(t, src)

	if cmd := home.Update(catMsg); cmd != nil {
		t.Fatalf("expected no command for empty categories, got %v", collect(cmd))
	}
	if home.Selected() != "" {
		t.Errorf("selected = %q, want empty", home.Selected())
	}
	for _, r := range src.Requests() {
		if r != "/categories" {
			t.Errorf("unexpected request %q", r)
		}
	}
}

func TestHomeCategoriesFailureShowsAlert(t *testing.T) {
	src := newFakeSource()
	src.failCat = true
	home, catMsg := mountedHome(t, src)

	msgs := collect(home.Update(catMsg))
	alert, ok := findMsg[AlertMsg](msgs)
	if !ok {
		t.Fatalf("expected an alert, got %v", msgs)
	}
	if alert.Alert.Title != categoriesAlertTitle || alert.Alert.Message != categoriesAlertText {
		t.Errorf("unexpected alert: %+v", alert.Alert)
	}
	if _, ok := findMsg[marketsMsg](msgs); ok {
		t.Error("no markets fetch expected after a categories failure")
	}
	if len(home.Categories()) != 0 {
		t.Errorf("categories = %d, want 0", len(home.Categories()))
	}
}

func TestHomeCategoryChangeReplacesMarkets(t *testing.T) {
	src := newFakeSource()
	home := loadedHome(t, src)

	msgs := collect(home.Update(keyMsg("tab")))
	mktMsg, ok := findMsg[marketsMsg](msgs)
	if !ok || mktMsg.categoryID != "c2" {
		t.Fatalf("expected a markets fetch for c2, got %v", msgs)
	}
	home.Update(mktMsg)

	if home.Selected() != "c2" {
		t.Errorf("selected = %q, want c2", home.Selected())
	}
	if got := placeIDs(home.Markets()); !slices.Equal(got, []string{"m3"}) {
		t.Errorf("markets = %v, want [m3]", got)
	}
}

func TestHomeRefreshIsIdempotent(t *testing.T) {
	src := newFakeSource()
	home := loadedHome(t, src)
	before := placeIDs(home.Markets())

	for i := 0; i < 2; i++ {
		mktMsg, ok := findMsg[marketsMsg](collect(home.Update(keyMsg("r"))))
		if !ok {
			t.Fatal("refresh did not fetch markets")
		}
		home.Update(mktMsg)
	}

	if got := placeIDs(home.Markets()); !slices.Equal(got, before) {
		t.Errorf("markets after refresh = %v, want %v", got, before)
	}
}

func TestHomeDiscardsStaleMarketsResponse(t *testing.T) {
	src := newFakeSource()
	home := loadedHome(t, src)

	slow := home.SelectCategory("c1")
	fast := home.SelectCategory("c2")

	// The newer request resolves first, the older one arrives late
	home.Update(collect(fast)[0])
	if cmd := home.Update(collect(slow)[0]); cmd != nil {
		t.Fatalf("stale response must be ignored, got %v", collect(cmd))
	}

	if home.Selected() != "c2" {
		t.Errorf("selected = %q, want c2", home.Selected())
	}
	if got := placeIDs(home.Markets()); !slices.Equal(got, []string{"m3"}) {
		t.Errorf("markets = %v, want [m3]", got)
	}
}

func TestHomeMarketsFailureKeepsPreviousPlaces(t *testing.T) {
	src := newFakeSource()
	home := loadedHome(t, src)
	src.failMarkets = true

	mktMsg, ok := findMsg[marketsMsg](collect(home.Update(keyMsg("tab"))))
	if !ok {
		t.Fatal("expected a markets fetch")
	}
	alert, ok := findMsg[AlertMsg](collect(home.Update(mktMsg)))
	if !ok || alert.Alert.Title != marketsAlertTitle {
		t.Fatalf("expected the places alert, got %+v", alert)
	}
	if got := placeIDs(home.Markets()); !slices.Equal(got, []string{"m1", "m2"}) {
		t.Errorf("markets = %v, want the previous [m1 m2]", got)
	}
}

func TestHomeLocationDenied(t *testing.T) {
	src := newFakeSource()
	home, _ := mountedHome(t, src)

	locMsg, ok := findMsg[locationMsg](collect(requestLocation(deniedLocator())))
	if !ok {
		t.Fatal("expected a location message")
	}
	if cmd := home.Update(locMsg); cmd != nil {
		t.Fatalf("denied location must not alert, got %v", collect(cmd))
	}
	if !home.Location().IsZero() {
		t.Errorf("location = %+v, want {0,0}", home.Location())
	}
	if !home.Map().Center().IsZero() {
		t.Errorf("map center = %+v, want {0,0}", home.Map().Center())
	}
}

func TestHomeLocationGranted(t *testing.T) {
	src := newFakeSource()
	home, _ := mountedHome(t, src)
	want := types.Location{Latitude: -23.561187, Longitude: -46.656451}

	locMsg, _ := findMsg[locationMsg](collect(requestLocation(grantedLocator(want))))
	home.Update(locMsg)
	if home.Location() != want {
		t.Errorf("location = %+v, want %+v", home.Location(), want)
	}
	if home.Map().Center() != want {
		t.Errorf("map center = %+v, want %+v", home.Map().Center(), want)
	}
}

func TestHomeEnterOpensSelectedPlace(t *testing.T) {
	src := newFakeSource()
	home := loadedHome(t, src)

	nav, ok := findMsg[NavigateMsg](collect(home.Update(keyMsg("enter"))))
	if !ok || nav.Route != Market("m1") {
		t.Fatalf("expected navigation to /market/m1, got %+v", nav)
	}

	home.Update(keyMsg("down"))
	nav, ok = findMsg[NavigateMsg](collect(home.Update(keyMsg("enter"))))
	if !ok || nav.Route != Market("m2") {
		t.Fatalf("expected navigation to /market/m2, got %+v", nav)
	}
	if home.Map().focused != "m2" {
		t.Errorf("map callout = %q, want m2", home.Map().focused)
	}
}

func TestHomeSheetToggle(t *testing.T) {
	src := newFakeSource()
	home := loadedHome(t, src)

	min, max := home.Sheet().SnapPoints()
	if home.Sheet().Height() != min {
		t.Fatalf("initial sheet height = %d, want min %d", home.Sheet().Height(), min)
	}
	home.Update(keyMsg("s"))
	if home.Sheet().Height() != max {
		t.Errorf("expanded sheet height = %d, want max %d", home.Sheet().Height(), max)
	}
	home.Update(keyMsg("s"))
	if home.Sheet().Snap() != SnapMin {
		t.Errorf("sheet snap = %v, want min", home.Sheet().Snap())
	}
}

func TestHomeViewRendersCaption(t *testing.T) {
	src := newFakeSource()
	home := loadedHome(t, src)

	view := home.View()
	for _, want := range []string{SheetCaption, "Food", "Shopping", "Sabor Grill"} {
		if !containsPlain(view, want) {
			t.Errorf("home view missing %q", want)
		}
	}
}

func TestHomeBlankFirstCategorySkipsMarketsFetch(t *testing.T) {
	src := newFakeSource()
	src.categories = []types.Category{types.NewCategory("", "Blank"), types.NewCategory("c2", "Shopping")}
	home, catMsg := mountedHome(t, src)

	if cmd := home.Update(catMsg); cmd != nil {
		t.Fatalf("expected no command when the first category has no id, got %v", collect(cmd))
	}
	if home.Selected() != "" {
		t.Errorf("selected = %q, want empty", home.Selected())
	}
	if len(home.Categories()) != 2 {
		t.Errorf("categories = %d, want 2", len(home.Categories()))
	}
}

func TestHomeIgnoresUnknownCategory(t *testing.T) {
	src := newFakeSource()
	home := loadedHome(t, src)

	if cmd := home.SelectCategory("c9"); cmd != nil {
		t.Fatalf("unknown category must not fetch, got %v", collect(cmd))
	}
	if home.Selected() != "c1" {
		t.Errorf("selected = %q, want c1", home.Selected())
	}
	if slices.Contains(src.Requests(), "/markets/category/c9") {
		t.Errorf("requests = %v, want no fetch for c9", src.Requests())
	}
}

func TestHomeMarketsFailureSilentWhileCovered(t *testing.T) {
	src := newFakeSource()
	home := loadedHome(t, src)
	src.failMarkets = true

	mktMsg, ok := findMsg[marketsMsg](collect(home.Update(keyMsg("tab"))))
	if !ok {
		t.Fatal("expected a markets fetch")
	}
	home.SetActive(false)
	if cmd := home.Update(mktMsg); cmd != nil {
		t.Fatalf("covered home must not alert, got %v", collect(cmd))
	}
	if home.State() != MarketsLoaded {
		t.Errorf("state = %v, want marketsLoaded", home.State())
	}
}

func TestHomeStatusCountsPlacesOnMap(t *testing.T) {
	src := newFakeSource()
	home := loadedHome(t, src)
	if !containsPlain(home.View(), "2 places · 0 on map") {
		t.Errorf("status without location should count no places on the map: %q", home.statusLine())
	}

	grill := src.markets["c1"][0].Location()
	home.Update(locationMsg{loc: grill, granted: true})
	if !containsPlain(home.View(), "2 places · 1 on map") {
		t.Errorf("status around the first place should count it on the map: %q", home.statusLine())
	}
}
