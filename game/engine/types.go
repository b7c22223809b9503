package engine

import "github.com/google/uuid"

// GameState represents the lifecycle phase of a game
type GameState int

const (
	StateIdle GameState = iota
	StateSetup
	StatePlaying
	StateOver
)

// String returns a stable machine-friendly name for the state
func (s GameState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSetup:
		return "setup"
	case StatePlaying:
		return "playing"
	case StateOver:
		return "over"
	default:
		return "unknown"
	}
}

// Colour identifies one of the six cargo card colours
type Colour int

const (
	Red Colour = iota
	Yellow
	Green
	Blue
	Grey
	White
)

// String returns the display name of the colour
func (c Colour) String() string {
	switch c {
	case Red:
		return "red"
	case Yellow:
		return "yellow"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Grey:
		return "grey"
	case White:
		return "white"
	default:
		return "unknown"
	}
}

// Colours returns every cargo colour in catalog order
func Colours() []Colour {
	return []Colour{Red, Yellow, Green, Blue, Grey, White}
}

// Destination identifies a port a ship can deliver to
type Destination int

const (
	London Destination = iota
	Malmo
	Norway
	Hamburg
	Copenhagen
)

// String returns the display name of the destination
func (d Destination) String() string {
	switch d {
	case London:
		return "london"
	case Malmo:
		return "malmo"
	case Norway:
		return "norway"
	case Hamburg:
		return "hamburg"
	case Copenhagen:
		return "copenhagen"
	default:
		return "unknown"
	}
}

// Destinations returns every destination in a stable order
func Destinations() []Destination {
	return []Destination{London, Malmo, Norway, Hamburg, Copenhagen}
}

// Weather is an index into the weather track, calmest in the middle
type Weather int

const (
	WeatherStorms Weather = iota
	WeatherBad
	WeatherPoor
	WeatherCalm
	WeatherFine
	WeatherGood
	WeatherPerfect
)

// Avatar identifies a player portrait asset
type Avatar int

const (
	Avatar1 Avatar = iota
	Avatar2
	Avatar3
	Avatar4
	Avatar5
)

// ImageName returns the asset name for the avatar
func (a Avatar) ImageName() string {
	switch a {
	case Avatar1:
		return "avt_1"
	case Avatar2:
		return "avt_2"
	case Avatar3:
		return "avt_3"
	case Avatar4:
		return "avt_4"
	case Avatar5:
		return "avt_5"
	default:
		return "avt_1"
	}
}

// Side identifies one of a ship's two loading sides
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// String returns the side name
func (s Side) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

const (
	// Unlimited marks a ship tonnage or card capacity that never constrains loading
	Unlimited = -1

	// CloneTonnage marks a special cargo card whose weight mirrors another card.
	// Until a resolution rule is agreed these cards contribute 0 tonnage.
	CloneTonnage = -1
)

// CargoCard is an immutable cargo value. Identity is the ID; two cards with
// the same colour and tonnage are still distinct physical cards.
type CargoCard struct {
	ID      uuid.UUID `json:"id"`
	Colour  Colour    `json:"colour"`
	Tonnage int       `json:"tonnage"`
	Special bool      `json:"special"`
}

// EffectiveTonnage returns the tonnage this card contributes to a ship,
// never negative. Clone cards contribute 0.
func (c CargoCard) EffectiveTonnage() int {
	if c.Tonnage < 0 {
		return 0
	}
	return c.Tonnage
}

// BuildingCard is an immutable dock improvement
type BuildingCard struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Cost        int       `json:"cost"`
	Effect      string    `json:"effect"`
	ImageName   string    `json:"image_name"`
	Passive     bool      `json:"passive"`
}
