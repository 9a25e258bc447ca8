package layoutfile

import (
	"fmt"

	"github.com/grindlemire/go-gridtui"
)

// StyleSpec is the [component.style] table. Geometry fields hold whatever
// TOML decoded (int64, float64 or string); nil means unset.
type StyleSpec struct {
	Position string `toml:"position"`

	X         any `toml:"x"`
	Y         any `toml:"y"`
	Width     any `toml:"width"`
	Height    any `toml:"height"`
	MinWidth  any `toml:"min_width"`
	MinHeight any `toml:"min_height"`
	MaxWidth  any `toml:"max_width"`
	MaxHeight any `toml:"max_height"`
	Gap       any `toml:"gap"`

	Foreground       string   `toml:"foreground"`
	ForegroundAlpha  *float64 `toml:"foreground_alpha"`
	Background       string   `toml:"background"`
	BackgroundAlpha  *float64 `toml:"background_alpha"`
	BorderColor      string   `toml:"border_color"`
	BorderColorAlpha *float64 `toml:"border_color_alpha"`

	Padding       *int `toml:"padding"`
	PaddingTop    *int `toml:"padding_top"`
	PaddingRight  *int `toml:"padding_right"`
	PaddingBottom *int `toml:"padding_bottom"`
	PaddingLeft   *int `toml:"padding_left"`
	Margin        *int `toml:"margin"`
	MarginTop     *int `toml:"margin_top"`
	MarginRight   *int `toml:"margin_right"`
	MarginBottom  *int `toml:"margin_bottom"`
	MarginLeft    *int `toml:"margin_left"`

	Border      *int   `toml:"border"`
	BorderStyle string `toml:"border_style"`
	TextAlign   string `toml:"text_align"`
	Axis        string `toml:"axis"`
}

// ToStyle converts s into a gridtui.Style. Malformed unit strings fail
// here, at load time.
func (s StyleSpec) ToStyle() (gridtui.Style, error) {
	var st gridtui.Style

	geometry := []struct {
		name string
		raw  any
		dst  *gridtui.Value
	}{
		{"x", s.X, &st.X},
		{"y", s.Y, &st.Y},
		{"width", s.Width, &st.Width},
		{"height", s.Height, &st.Height},
		{"min_width", s.MinWidth, &st.MinWidth},
		{"min_height", s.MinHeight, &st.MinHeight},
		{"max_width", s.MaxWidth, &st.MaxWidth},
		{"max_height", s.MaxHeight, &st.MaxHeight},
		{"gap", s.Gap, &st.Gap},
	}
	for _, g := range geometry {
		v, err := toValue(g.raw)
		if err != nil {
			return gridtui.Style{}, fmt.Errorf("%s: %w", g.name, err)
		}
		*g.dst = v
	}

	colors := []struct {
		name  string
		hex   string
		alpha *float64
		dst   *gridtui.Opt[gridtui.RGBA]
	}{
		{"foreground", s.Foreground, s.ForegroundAlpha, &st.Foreground},
		{"background", s.Background, s.BackgroundAlpha, &st.Background},
		{"border_color", s.BorderColor, s.BorderColorAlpha, &st.BorderColor},
	}
	for _, c := range colors {
		if c.hex == "" {
			if c.alpha != nil {
				return gridtui.Style{}, fmt.Errorf("%s_alpha set without %s", c.name, c.name)
			}
			continue
		}
		rgba, err := gridtui.HexColor(c.hex)
		if err != nil {
			return gridtui.Style{}, fmt.Errorf("%s: %w", c.name, err)
		}
		if c.alpha != nil {
			if rgba, err = rgba.WithAlpha(*c.alpha); err != nil {
				return gridtui.Style{}, fmt.Errorf("%s: %w", c.name, err)
			}
		}
		*c.dst = gridtui.Some(rgba)
	}

	sides := []struct {
		all  *int
		vals [4]*int
		dst  [4]*gridtui.Opt[int]
	}{
		{s.Padding, [4]*int{s.PaddingTop, s.PaddingRight, s.PaddingBottom, s.PaddingLeft},
			[4]*gridtui.Opt[int]{&st.PaddingTop, &st.PaddingRight, &st.PaddingBottom, &st.PaddingLeft}},
		{s.Margin, [4]*int{s.MarginTop, s.MarginRight, s.MarginBottom, s.MarginLeft},
			[4]*gridtui.Opt[int]{&st.MarginTop, &st.MarginRight, &st.MarginBottom, &st.MarginLeft}},
	}
	for _, sd := range sides {
		for i, v := range sd.vals {
			if v == nil {
				v = sd.all
			}
			if v != nil {
				*sd.dst[i] = gridtui.Some(*v)
			}
		}
	}
	if s.Border != nil {
		st.Border = gridtui.Some(*s.Border)
	}

	if s.Position != "" {
		p, err := gridtui.ParsePositionMode(s.Position)
		if err != nil {
			return gridtui.Style{}, err
		}
		st.Position = gridtui.Some(p)
	}
	if s.BorderStyle != "" {
		b, err := gridtui.ParseBorderStyle(s.BorderStyle)
		if err != nil {
			return gridtui.Style{}, err
		}
		st.BorderStyle = gridtui.Some(b)
	}
	if s.TextAlign != "" {
		a, err := gridtui.ParseTextAlign(s.TextAlign)
		if err != nil {
			return gridtui.Style{}, err
		}
		st.TextAlign = gridtui.Some(a)
	}
	if s.Axis != "" {
		a, err := gridtui.ParseAxis(s.Axis)
		if err != nil {
			return gridtui.Style{}, err
		}
		st.Axis = gridtui.Some(a)
	}

	if err := st.Validate(); err != nil {
		return gridtui.Style{}, err
	}
	return st, nil
}

func toValue(raw any) (gridtui.Value, error) {
	switch v := raw.(type) {
	case nil:
		return gridtui.Auto(), nil
	case int64:
		return gridtui.Fixed(int(v)), nil
	case float64:
		return gridtui.Number(v), nil
	case string:
		val := gridtui.Raw(v)
		if _, err := val.Parse(); err != nil {
			return gridtui.Value{}, err
		}
		return val, nil
	default:
		return gridtui.Value{}, fmt.Errorf("unsupported value %v (%T)", raw, raw)
	}
}
