package domain

import "testing"

func TestBestChoicePicksLowestPrice(t *testing.T) {
	results := []Transport{
		{ID: "FL1", Name: "IndiGo 6E-204", Mode: "flight", Origin: "Delhi", Destination: "Mumbai", Price: 4500},
		{ID: "FL2", Name: "Air India AI-805", Mode: "flight", Origin: "Delhi", Destination: "Mumbai", Price: 3900},
	}

	best, others, ok := BestChoice(results)
	if !ok {
		t.Fatal("expected a best choice for non-empty results")
	}
	if best.ID != "FL2" || best.Price != 3900 {
		t.Errorf("unexpected best choice: got %s at %.0f want FL2 at 3900", best.ID, best.Price)
	}
	if len(others) != 1 || others[0].ID != "FL1" {
		t.Errorf("unexpected remaining results: %+v", others)
	}
	for _, o := range others {
		if best.Price > o.Price {
			t.Errorf("best price %.2f exceeds other result %.2f", best.Price, o.Price)
		}
	}
}

func TestBestChoiceTieKeepsEarliest(t *testing.T) {
	results := []Transport{
		{ID: "A", Price: 500},
		{ID: "B", Price: 500},
		{ID: "C", Price: 750},
	}

	best, others, ok := BestChoice(results)
	if !ok {
		t.Fatal("expected a best choice")
	}
	if best.ID != "A" {
		t.Errorf("tie should keep the earliest element, got %s", best.ID)
	}
	if len(others) != 2 || others[0].ID != "B" || others[1].ID != "C" {
		t.Errorf("others should preserve order, got %+v", others)
	}
}

func TestBestChoiceEmpty(t *testing.T) {
	if _, _, ok := BestChoice(nil); ok {
		t.Error("empty results must not produce a best choice")
	}
}

func TestTotalFare(t *testing.T) {
	cases := []struct {
		unit      float64
		travelers int
		want      float64
	}{
		{3900, 1, 3900},
		{3900, 3, 11700},
		{1234.555, 2, 2469.11},
		{0.1, 3, 0.3},
	}
	for _, tc := range cases {
		if got := TotalFare(tc.unit, tc.travelers); got != tc.want {
			t.Errorf("TotalFare(%v, %d) = %v, want %v", tc.unit, tc.travelers, got, tc.want)
		}
	}
}

func TestModeDisplay(t *testing.T) {
	cases := map[Mode]string{
		ModeBike:   "Bike Taxi",
		ModeTaxi:   "Cab / Taxi",
		ModeTrain:  "Train",
		ModeFlight: "Flight",
		"":         "",
	}
	for mode, want := range cases {
		if got := mode.Display(); got != want {
			t.Errorf("Display(%q) = %q, want %q", mode, got, want)
		}
	}
}

func TestModeFileKey(t *testing.T) {
	if got := ModeBus.FileKey(); got != "buses" {
		t.Errorf("bus file key = %q, want buses", got)
	}
	if got := Mode("ferry").FileKey(); got != "ferrys" {
		t.Errorf("unknown mode should pluralize naively, got %q", got)
	}
}
