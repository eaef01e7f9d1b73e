package geom

import (
	"encoding/json"
	"testing"
)

func TestBBoxContains(t *testing.T) {
	for _, tt := range []struct {
		box       BBox
		lat, long float64
		contains  bool
	}{
		{BBox{-10, 40, 10, 50}, 45, 0, true},
		{BBox{-10, 40, 10, 50}, 45, 11, false},
		{BBox{-10, 40, 10, 50}, 39, 0, false},
		{BBox{-10, 40, 10, 50}, 50, 10, true},
		// NAD83 like extent crossing the antimeridian
		{BBox{167.65, 14.92, -40.73, 86.45}, 50, -100, true},
		{BBox{167.65, 14.92, -40.73, 86.45}, 50, 179, true},
		{BBox{167.65, 14.92, -40.73, 86.45}, 50, 10, false},
		{BBox{-180, -90, 180, 90}, -89.9, 179.9, true},
	} {
		if got := tt.box.Contains(tt.lat, tt.long); got != tt.contains {
			t.Errorf("%v contains (%v, %v): got %v", tt.box, tt.lat, tt.long, got)
		}
	}
}

func TestBBoxJSON(t *testing.T) {
	b := BBox{5.96, 45.82, 10.49, 47.81}
	data, err := json.Marshal(b)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[5.96,45.82,10.49,47.81]" {
		t.Fatal(string(data))
	}

	var decoded BBox
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded != b {
		t.Fatal(decoded)
	}

	if err := json.Unmarshal([]byte("[1, 2, 3]"), &decoded); err == nil {
		t.Fatal("expected error for short box")
	}

	var ptr *BBox
	if err := json.Unmarshal([]byte("null"), &ptr); err != nil || ptr != nil {
		t.Fatal(ptr, err)
	}
}

func TestDegenerate(t *testing.T) {
	if (BBox{1, 2, 3, 4}).Degenerate() {
		t.Error("box not degenerate")
	}
	if !(BBox{1, 2, 1, 4}).Degenerate() {
		t.Error("zero width box is degenerate")
	}
	if !(BBox{1, 2, 3, 2}).Degenerate() {
		t.Error("zero height box is degenerate")
	}
}
