package layout

import (
	"math"
	"strconv"
	"strings"
)

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto    Unit = iota // Unset; computed by the resolver
	UnitFixed               // Absolute terminal cells (fractions truncate)
	UnitPercent             // Percentage of the reference size
	UnitRaw                 // Unparsed string, parsed on resolution
)

// Value represents a geometry field that can be fixed, percentage, raw or auto.
// The zero value is auto.
type Value struct {
	Amount float64
	Unit   Unit
	Raw    string
}

// Auto returns a Value that the resolver computes from content.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed returns a Value representing an absolute number of terminal cells.
func Fixed(n int) Value {
	return Value{Amount: float64(n), Unit: UnitFixed}
}

// Number returns a Value for a fractional cell amount. It is truncated
// toward zero when resolved.
func Number(f float64) Value {
	return Value{Amount: f, Unit: UnitFixed}
}

// Percent returns a Value representing a percentage of the reference size.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float64) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Raw returns a Value holding an unparsed string such as "50%", "10" or "2.5".
// The string is only parsed when the value is resolved, so a malformed string
// surfaces as a *ParseError from the resolving call.
func Raw(s string) Value {
	return Value{Unit: UnitRaw, Raw: s}
}

// IsAuto returns true if this value is unset.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// IsSet returns true if this value was declared.
func (v Value) IsSet() bool {
	return v.Unit != UnitAuto
}

// String renders the value the way an author would write it.
func (v Value) String() string {
	switch v.Unit {
	case UnitFixed:
		return strconv.FormatFloat(v.Amount, 'f', -1, 64)
	case UnitPercent:
		return strconv.FormatFloat(v.Amount, 'f', -1, 64) + "%"
	case UnitRaw:
		return strconv.Quote(v.Raw)
	default:
		return "auto"
	}
}

// Parse converts a raw string into a Fixed or Percent value. Values that are
// not raw are returned unchanged.
func (v Value) Parse() (Value, error) {
	if v.Unit != UnitRaw {
		return v, nil
	}
	s := strings.TrimSpace(v.Raw)
	if strings.HasSuffix(s, "%") {
		p, err := parseFloat(v.Raw, strings.TrimSuffix(s, "%"))
		if err != nil {
			return Value{}, err
		}
		return Percent(p), nil
	}
	n, err := parseNumber(v.Raw, s)
	if err != nil {
		return Value{}, err
	}
	return Number(n), nil
}

// ResolvePosition resolves v as a coordinate relative to refPos.
// Percentages are taken of refSize. Auto resolves to refPos.
func (v Value) ResolvePosition(refPos, refSize int) (int, error) {
	p, err := v.Parse()
	if err != nil {
		return 0, err
	}
	switch p.Unit {
	case UnitFixed:
		return int(float64(refPos) + p.Amount), nil
	case UnitPercent:
		return refPos + int(float64(refSize)*p.Amount/100.0), nil
	default:
		return refPos, nil
	}
}

// ResolveSize resolves v as a length. Percentages are taken of parentSize and
// resolve to 0 when parentSize is 0. Auto resolves to 0.
func (v Value) ResolveSize(parentSize int) (int, error) {
	p, err := v.Parse()
	if err != nil {
		return 0, err
	}
	switch p.Unit {
	case UnitFixed:
		return int(p.Amount), nil
	case UnitPercent:
		if parentSize == 0 {
			return 0, nil
		}
		return int(float64(parentSize) * p.Amount / 100.0), nil
	default:
		return 0, nil
	}
}

// parseNumber parses s as an integer when it has no decimal separator and
// as a float otherwise.
func parseNumber(input, s string) (float64, error) {
	if !strings.ContainsAny(s, ".,") {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, &ParseError{Input: input, Err: err}
		}
		return float64(n), nil
	}
	return parseFloat(input, s)
}

func parseFloat(input, s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, &ParseError{Input: input, Err: err}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &ParseError{Input: input}
	}
	return f, nil
}
