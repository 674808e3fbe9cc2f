package domain

import "strings"

// Mode is a transport category as the backend knows it.
type Mode string

const (
	ModeTrain  Mode = "train"
	ModeFlight Mode = "flight"
	ModeBus    Mode = "bus"
	ModeTaxi   Mode = "taxi"
	ModeBike   Mode = "bike"
)

var modeFileKeys = map[Mode]string{
	ModeTrain:  "trains",
	ModeFlight: "flights",
	ModeBus:    "buses",
	ModeTaxi:   "taxis",
	ModeBike:   "bikes",
}

func (m Mode) Valid() bool {
	_, ok := modeFileKeys[Mode(strings.ToLower(string(m)))]
	return ok
}

// FileKey maps a mode to its dataset file key; unknown modes fall back
// to naive pluralization, matching the backend's data layout.
func (m Mode) FileKey() string {
	lower := Mode(strings.ToLower(strings.TrimSpace(string(m))))
	if key, ok := modeFileKeys[lower]; ok {
		return key
	}
	if lower == "" {
		return ""
	}
	return string(lower) + "s"
}

// Display returns the user-facing label for a mode.
func (m Mode) Display() string {
	switch Mode(strings.ToLower(string(m))) {
	case ModeBike:
		return "Bike Taxi"
	case ModeTaxi:
		return "Cab / Taxi"
	case "":
		return ""
	}
	s := strings.ToLower(string(m))
	return strings.ToUpper(s[:1]) + s[1:]
}

// Transport is a bookable route record, sourced from the backend and
// immutable on this side.
type Transport struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Mode           string  `json:"mode"`
	Origin         string  `json:"origin"`
	Destination    string  `json:"destination"`
	Departure      string  `json:"departure,omitempty"`
	Arrival        string  `json:"arrival,omitempty"`
	DurationMins   int     `json:"duration_mins,omitempty"`
	Price          float64 `json:"price"`
	SeatsAvailable int     `json:"seats_available"`
	Rating         float64 `json:"rating,omitempty"`
}

// Offer is a third-party website's priced listing for one transport.
type Offer struct {
	Site       string  `json:"site"`
	ListPrice  float64 `json:"list_price"`
	Discount   float64 `json:"discount"`
	FinalPrice float64 `json:"final_price"`
}

// CompareMatch pairs a transport with its website offers. BestOffer is
// supplied by the backend and trusted as-is, never recomputed here.
type CompareMatch struct {
	Transport Transport `json:"transport"`
	Offers    []Offer   `json:"offers"`
	BestOffer *Offer    `json:"best_offer,omitempty"`
}

type HistoryEntry struct {
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Mode        string  `json:"mode"`
	Price       float64 `json:"price,omitempty"`
	Timestamp   string  `json:"timestamp"`
}

// ModeCount is one bar of the admin analytics chart.
type ModeCount struct {
	Mode  string `json:"mode"`
	Count int64  `json:"cnt"`
}
