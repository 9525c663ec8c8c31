package league

import (
	"strings"
	"time"
)

// FormatTime renders an availability time for display. The sheet stores
// either a plain "HH:MM" string or a full timestamp (the Apps Script export
// converts time cells to ISO dates like 1899-12-30T22:30:00.000Z); both are
// accepted. The raw value stays on the entity untouched.
func FormatTime(raw string) string {
	if raw == "" {
		return "--:--"
	}
	if strings.Contains(raw, "T") {
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05"} {
			if t, err := time.Parse(layout, raw); err == nil {
				return t.Format("15:04")
			}
		}
	}
	if len(raw) > 5 {
		return raw[:5]
	}
	return raw
}

// SplitPositions breaks a "/"-separated position descriptor into trimmed,
// uppercased codes. The first code is the player's primary position.
func SplitPositions(pos string) []string {
	if strings.TrimSpace(pos) == "" {
		return nil
	}
	parts := strings.Split(pos, "/")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToUpper(strings.TrimSpace(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// PrimaryPosition returns the first position code, or "" when none is set.
func PrimaryPosition(pos string) string {
	codes := SplitPositions(pos)
	if len(codes) == 0 {
		return ""
	}
	return codes[0]
}
