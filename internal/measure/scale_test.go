package measure

import "testing"

func TestConvert_PixelScale(t *testing.T) {
	s := Pixels()

	tests := []struct {
		name    string
		valuePx float64
		kind    Kind
		want    float64
	}{
		{"area count", 250, KindArea, 250.0},
		{"height", 3, KindMaxHeight, 3.0},
		{"width", 17, KindMaxWidth, 17.0},
		{"fractional rounds to 2 places", 10.567, KindMaxHeight, 10.57},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := s.Convert(tt.valuePx, tt.kind)
			if q.Value != tt.want {
				t.Errorf("value: got %v, want %v", q.Value, tt.want)
			}
			if q.Unit != "px" {
				t.Errorf("unit: got %q, want px", q.Unit)
			}
		})
	}
}

func TestConvert_PhysicalScale(t *testing.T) {
	s, err := Physical(3.5)
	if err != nil {
		t.Fatalf("Physical failed: %v", err)
	}

	tests := []struct {
		name     string
		valuePx  float64
		kind     Kind
		want     float64
		wantUnit string
	}{
		// 3 px * 3.5 um/px = 10.5 um
		{"height to um", 3, KindMaxHeight, 10.5, "um"},
		// 17 * 3.5 = 59.5
		{"width to um", 17, KindMaxWidth, 59.5, "um"},
		// length rounds to 1 place: 7 * 3.33 = 23.31 -> 23.3
		{"length rounding", 7, KindMaxHeight, 23.3, "um"},
		// 250 px * 3.5^2 / 1e6 = 0.0030625 mm2 -> 0.0031
		{"area to mm2", 250, KindArea, 0.0031, "mm2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var scale Scale = s
			if tt.name == "length rounding" {
				scale, _ = Physical(3.33)
			}
			q := scale.Convert(tt.valuePx, tt.kind)
			if q.Value != tt.want {
				t.Errorf("value: got %v, want %v", q.Value, tt.want)
			}
			if q.Unit != tt.wantUnit {
				t.Errorf("unit: got %q, want %q", q.Unit, tt.wantUnit)
			}
		})
	}
}

func TestPhysical_RejectsNonPositiveSpacing(t *testing.T) {
	for _, spacing := range []float64{0, -1.5} {
		if _, err := Physical(spacing); err == nil {
			t.Errorf("Physical(%v): expected error", spacing)
		}
	}
}

func TestConvert_UnknownKindPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown kind")
		}
	}()
	Pixels().Convert(1, Kind(99))
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"area", KindArea, false},
		{"max-height", KindMaxHeight, false},
		{"max-width", KindMaxWidth, false},
		{"perimeter", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseKind(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseKind(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKind(%q): got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestKindString(t *testing.T) {
	if got := KindArea.String(); got != "Area" {
		t.Errorf("KindArea: got %q", got)
	}
	if got := KindMaxHeight.String(); got != "Max Height" {
		t.Errorf("KindMaxHeight: got %q", got)
	}
	if got := KindMaxWidth.String(); got != "Max Width" {
		t.Errorf("KindMaxWidth: got %q", got)
	}
}
