package version

import "testing"

func TestParsePartialVersions(t *testing.T) {
	v, err := Parse("4.6")
	if err != nil {
		t.Fatalf("Parse(4.6): %v", err)
	}
	if v.Major() != 4 || v.Minor() != 6 || v.Patch() != 0 {
		t.Errorf("Parse(4.6) = %s, want 4.6.0", v)
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := Parse("not-a-version"); err == nil {
		t.Error("expected error for unparseable version")
	}
}

func TestAtLeast(t *testing.T) {
	cases := []struct {
		v, min string
		want   bool
	}{
		{"4.6", "4.6", true},
		{"4.10", "4.6", true}, // numeric, not lexicographic
		{"4.5.9", "4.6", false},
		{"1.0.3", "1.0.3", true},
		{"1.0.2", "1.0.3", false},
		{"5.12.3", "4.6", true},
	}
	for _, tc := range cases {
		got, err := AtLeast(tc.v, tc.min)
		if err != nil {
			t.Fatalf("AtLeast(%s, %s): %v", tc.v, tc.min, err)
		}
		if got != tc.want {
			t.Errorf("AtLeast(%s, %s) = %v, want %v", tc.v, tc.min, got, tc.want)
		}
	}
}

func TestAtLeastParseError(t *testing.T) {
	if _, err := AtLeast("junk", "1.0"); err == nil {
		t.Error("expected error for unparseable version")
	}
	if _, err := AtLeast("1.0", "junk"); err == nil {
		t.Error("expected error for unparseable minimum")
	}
}

func TestCompare(t *testing.T) {
	if c, _ := Compare("4.5", "4.6"); c != -1 {
		t.Errorf("Compare(4.5, 4.6) = %d, want -1", c)
	}
	if c, _ := Compare("4.6", "4.6.0"); c != 0 {
		t.Errorf("Compare(4.6, 4.6.0) = %d, want 0", c)
	}
	if c, _ := Compare("5.0", "4.9"); c != 1 {
		t.Errorf("Compare(5.0, 4.9) = %d, want 1", c)
	}
}
