package dot

import "testing"

func TestTotalFreq(t *testing.T) {
	if TotalFreq() != 357 {
		t.Errorf("TotalFreq() = %d, want 357", TotalFreq())
	}
}

func TestSchemeAtCoverage(t *testing.T) {
	ranges := []struct {
		name   string
		lo, hi uint32 // inclusive
	}{
		{"target", 0, 0},
		{"cube", 1, 20},
		{"quazar", 21, 36},
		{"flower", 37, 68},
		{"cyclic", 69, 100},
		{"vmirror", 101, 228},
		{"hmirror", 229, 356},
	}
	for _, r := range ranges {
		for d := r.lo; d <= r.hi; d++ {
			if got := schemeAt(d).Name; got != r.name {
				t.Errorf("schemeAt(%d) = %s, want %s", d, got, r.name)
			}
		}
	}
}

func TestSchemeAtPanicsPastTable(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("schemeAt(total) should panic")
		}
	}()
	schemeAt(TotalFreq())
}

func TestSelectScheme(t *testing.T) {
	tests := []struct {
		lo, hi byte
		want   string
	}{
		{0, 0, "target"},
		{1, 0, "cube"},
		{101, 0, "vmirror"},
		{0, 1, "hmirror"},     // 256
		{101, 1, "target"},    // 357 wraps to 0
		{255, 255, "vmirror"}, // 65535 % 357 = 204
		{204, 0, "vmirror"},
	}
	for _, tt := range tests {
		var id ID
		id[30], id[31] = tt.lo, tt.hi
		if got := SelectScheme(id).Name; got != tt.want {
			t.Errorf("SelectScheme(id[30]=%d, id[31]=%d) = %s, want %s", tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestSchemeTableShape(t *testing.T) {
	for _, s := range Schemes() {
		if s.Freq == 0 {
			t.Errorf("%s: zero frequency", s.Name)
		}
		for i, c := range s.Colors {
			if int(c) >= paletteLen {
				t.Errorf("%s: colors[%d] = %d out of palette", s.Name, i, c)
			}
		}
	}
}

func TestSchemeByName(t *testing.T) {
	s, ok := SchemeByName("flower")
	if !ok || s.Freq != 32 || s.Colors[center] != 3 {
		t.Errorf("SchemeByName(flower) = %+v, %v", s, ok)
	}
	if _, ok := SchemeByName("spiral"); ok {
		t.Error("SchemeByName(spiral) should not be found")
	}
}

func TestSchemesReturnsCopy(t *testing.T) {
	table := Schemes()
	table[len(table)-1].Freq = 1

	var id ID
	id[30], id[31] = 100, 1 // selector 356, the last slot
	if got := SelectScheme(id).Name; got != "hmirror" {
		t.Errorf("SelectScheme(356) = %s, want hmirror", got)
	}
	if f := Schemes()[len(table)-1].Freq; f != 128 {
		t.Errorf("hmirror Freq = %d after editing a copy, want 128", f)
	}
}
