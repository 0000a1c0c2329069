package surface

import (
	"fmt"

	"github.com/goccy/go-json"
)

type anchorKind uint8

const (
	anchorUnset anchorKind = iota
	anchorAboveBottom
	anchorBelowTop
	anchorAbsolute
)

var anchorFields = [...]string{
	anchorAboveBottom: "above_bottom",
	anchorBelowTop:    "below_top",
	anchorAbsolute:    "absolute",
}

// RelativePosition is a vertical reference measured from the world bottom,
// from the world top, or as an absolute y. Exactly one form is set; the
// zero value is invalid and fails to marshal.
type RelativePosition struct {
	kind anchorKind
	y    int
}

// AboveBottom is y blocks above the lowest world layer.
func AboveBottom(y int) RelativePosition {
	return RelativePosition{kind: anchorAboveBottom, y: y}
}

// BelowTop is y blocks below the highest world layer.
func BelowTop(y int) RelativePosition {
	return RelativePosition{kind: anchorBelowTop, y: y}
}

// Absolute is the absolute coordinate y.
func Absolute(y int) RelativePosition {
	return RelativePosition{kind: anchorAbsolute, y: y}
}

// Valid reports whether p was built by one of the constructors.
func (p RelativePosition) Valid() bool {
	return p.kind != anchorUnset
}

// Field returns the JSON member name carried by p, or "" for the zero value.
func (p RelativePosition) Field() string {
	if !p.Valid() {
		return ""
	}
	return anchorFields[p.kind]
}

// Y returns the coordinate value.
func (p RelativePosition) Y() int {
	return p.y
}

func (p RelativePosition) String() string {
	if !p.Valid() {
		return "unset"
	}
	return fmt.Sprintf("%s(%d)", p.Field(), p.y)
}

// MarshalJSON implements json.Marshaler.
func (p RelativePosition) MarshalJSON() ([]byte, error) {
	if !p.Valid() {
		return nil, ErrInvalidAnchor
	}
	return json.Marshal(map[string]int{p.Field(): p.y})
}

// UnmarshalJSON implements json.Unmarshaler.
// Rejects objects with zero or several position members.
func (p *RelativePosition) UnmarshalJSON(data []byte) error {
	var fields map[string]int
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("relative position: %w", err)
	}
	if len(fields) != 1 {
		return ErrInvalidAnchor
	}
	for name, y := range fields {
		switch name {
		case "above_bottom":
			*p = AboveBottom(y)
		case "below_top":
			*p = BelowTop(y)
		case "absolute":
			*p = Absolute(y)
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, name)
		}
	}
	return nil
}
