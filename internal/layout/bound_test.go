package layout

import "testing"

func TestClamp(t *testing.T) {
	type tc struct {
		lo, hi   Bound
		value    int
		expected int
	}

	tests := map[string]tc{
		"within range": {
			lo: Limit(0), hi: Limit(10), value: 5, expected: 5,
		},
		"below min": {
			lo: Limit(3), hi: Limit(10), value: 1, expected: 3,
		},
		"above max": {
			lo: Limit(0), hi: Limit(10), value: 20, expected: 10,
		},
		"unbounded below": {
			lo: Unbounded(), hi: Limit(10), value: -50, expected: -50,
		},
		"unbounded above": {
			lo: Limit(0), hi: Unbounded(), value: 1 << 20, expected: 1 << 20,
		},
		"both unbounded": {
			lo: Unbounded(), hi: Unbounded(), value: 7, expected: 7,
		},
		"min wins over max": {
			lo: Limit(8), hi: Limit(4), value: 6, expected: 8,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Clamp(tt.lo, tt.value, tt.hi); got != tt.expected {
				t.Errorf("Clamp(%v, %d, %v) = %d, want %d", tt.lo, tt.value, tt.hi, got, tt.expected)
			}
		})
	}
}

func TestAxis(t *testing.T) {
	if AxisX.Cross() != AxisY || AxisY.Cross() != AxisX {
		t.Error("Cross() should swap axes")
	}

	tests := map[string]struct {
		input   string
		want    Axis
		wantErr bool
	}{
		"x":        {input: "x", want: AxisX},
		"row":      {input: "Row", want: AxisX},
		"y":        {input: "y", want: AxisY},
		"vertical": {input: " vertical ", want: AxisY},
		"unknown":  {input: "z", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseAxis(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAxis(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseAxis(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
