package league

import (
	"fmt"
	"strconv"
	"strings"
)

// RawRecord is one loosely typed row from the sheet. The Apps Script export
// does not guarantee field casing (it may emit "teamId" or "teamid") nor
// value types (ids and scores arrive as numbers or strings depending on the
// cell), so every access goes through the coercion helpers below.
type RawRecord map[string]any

// RawPayload mirrors the getData response: one flat array per sheet tab.
type RawPayload struct {
	Teams          []RawRecord `json:"teams"`
	Players        []RawRecord `json:"players"`
	Availabilities []RawRecord `json:"availabilities"`
	Challenges     []RawRecord `json:"challenges"`
	Reports        []RawRecord `json:"reports"`
	PlayerStats    []RawRecord `json:"playerStats"`
}

// field returns the first present value among the given keys, falling back to
// a case-insensitive scan so "teamId", "teamid" and "TeamID" all resolve.
func (r RawRecord) field(keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := r[k]; ok {
			return v, true
		}
	}
	for _, k := range keys {
		for rk, v := range r {
			if strings.EqualFold(rk, k) {
				return v, true
			}
		}
	}
	return nil, false
}

// String coerces the named field to a string. Numbers are rendered without a
// trailing ".0" so that a numeric id compares equal to its string spelling.
func (r RawRecord) String(keys ...string) string {
	v, ok := r.field(keys...)
	if !ok || v == nil {
		return ""
	}
	return stringify(v)
}

// Int coerces the named field to an int, defaulting to 0 when the value is
// missing or not numeric. Malformed values never propagate.
func (r RawRecord) Int(keys ...string) int {
	v, ok := r.field(keys...)
	if !ok {
		return 0
	}
	return coerceInt(v)
}

// Int64 is Int for epoch-millisecond timestamps.
func (r RawRecord) Int64(keys ...string) int64 {
	v, ok := r.field(keys...)
	if !ok {
		return 0
	}
	return coerceInt64(v)
}

// Bool coerces the named field to a bool. A boolean true or a
// case-insensitive "true" string are truthy; everything else is false.
func (r RawRecord) Bool(keys ...string) bool {
	v, ok := r.field(keys...)
	if !ok {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return strings.EqualFold(strings.TrimSpace(t), "true")
	}
	return false
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	}
	return fmt.Sprint(v)
}

func coerceInt(v any) int {
	return int(coerceInt64(v))
}

func coerceInt64(v any) int64 {
	switch t := v.(type) {
	case float64:
		return int64(t)
	case int:
		return int64(t)
	case int64:
		return t
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0
		}
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int64(f)
		}
	}
	return 0
}

// normalizeID casts both sides of a foreign-key comparison to a trimmed
// string, so a numeric sheet cell joins against a string id.
func normalizeID(v any) string {
	return strings.TrimSpace(stringify(v))
}

// SameID reports whether two ids are equal under string normalization.
func SameID(a, b any) bool {
	return normalizeID(a) == normalizeID(b)
}
