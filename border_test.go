package gridtui

import "testing"

func TestBoxRows(t *testing.T) {
	type tc struct {
		style          BorderStyle
		width, height  int
		expectedTop    string
		expectedBottom string
		expectedSide   rune
	}

	tests := map[string]tc{
		"single 4x3": {
			style: BorderSingle, width: 4, height: 3,
			expectedTop: "┌──┐", expectedBottom: "└──┘", expectedSide: '│',
		},
		"double 2x2": {
			style: BorderDouble, width: 2, height: 2,
			expectedTop: "╔╗", expectedBottom: "╚╝", expectedSide: '║',
		},
		"ascii 5x2": {
			style: BorderASCII, width: 5, height: 2,
			expectedTop: "+---+", expectedBottom: "+---+", expectedSide: '|',
		},
		"too narrow": {
			style: BorderSingle, width: 1, height: 5,
		},
		"too short": {
			style: BorderThick, width: 5, height: 1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			top, bottom, left, right := boxRows(tt.style.Chars(), tt.width, tt.height)
			if top != tt.expectedTop || bottom != tt.expectedBottom {
				t.Errorf("rows = %q/%q, want %q/%q", top, bottom, tt.expectedTop, tt.expectedBottom)
			}
			if left != tt.expectedSide || right != tt.expectedSide {
				t.Errorf("sides = %q/%q, want %q", left, right, tt.expectedSide)
			}
		})
	}
}

func TestParseBorderStyle(t *testing.T) {
	if b, err := ParseBorderStyle("Rounded"); err != nil || b != BorderRounded {
		t.Errorf("ParseBorderStyle(Rounded) = %v, %v", b, err)
	}
	if _, err := ParseBorderStyle("dotted"); err == nil {
		t.Error("expected error for unknown border style")
	}
	if BorderStyle(99).Chars() != BorderSingle.Chars() {
		t.Error("unknown styles should fall back to single")
	}
}
