package league

import "testing"

func TestFormatTime(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", "--:--"},
		{"18:00", "18:00"},
		{"18:00:00", "18:00"},
		{"1899-12-30T22:30:00.000Z", "22:30"},
		{"9:30", "9:30"},
	}
	for _, c := range cases {
		if got := FormatTime(c.in); got != c.want {
			t.Errorf("FormatTime(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSplitPositions(t *testing.T) {
	got := SplitPositions(" st / cam /lw")
	if len(got) != 3 || got[0] != "ST" || got[2] != "LW" {
		t.Errorf("SplitPositions: %v", got)
	}
	if SplitPositions("  ") != nil {
		t.Error("blank descriptor must yield nil")
	}
	if PrimaryPosition("gk/cb") != "GK" {
		t.Errorf("PrimaryPosition: %q", PrimaryPosition("gk/cb"))
	}
}

func TestNewIDShape(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := NewID()
		if len(id) != 9 {
			t.Fatalf("id length: %q", id)
		}
		for _, ch := range id {
			if !(ch >= '0' && ch <= '9' || ch >= 'a' && ch <= 'z') {
				t.Fatalf("id alphabet: %q", id)
			}
		}
		seen[id] = true
	}
	if len(seen) < 45 {
		t.Errorf("ids look non-random: %d unique of 50", len(seen))
	}
}
