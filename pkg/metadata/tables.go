// Package metadata holds the read-only tables that give generated regions
// their names, descriptions, and gameplay payloads. The generator consumes
// these tables and never mutates them. Field coercion is deliberately
// permissive: malformed list or numeric values degrade to empty/zero rather
// than failing world creation.
package metadata

import (
	"strconv"
	"strings"
)

// NaturalRow describes one natural-terrain region: what spawns there and how
// rich it is.
type NaturalRow struct {
	ID             int
	Name           string
	Desc           string
	FaunaIDs       []int
	FloraIDs       []int
	LodeIDs        []int
	EssenceDensity int
}

// SettlementRow describes one settlement: what its market sells.
type SettlementRow struct {
	ID          int
	Name        string
	Desc        string
	SellItemIDs []int
}

// SanctumRow describes one hideout or ruin site.
type SanctumRow struct {
	ID             int
	Name           string
	Desc           string
	SubKind        string // "cave" or "ruin"
	Essence        string // elemental essence name, e.g. "gold"
	EssenceDensity int
}

// StrongholdRow names a faction's seat.
type StrongholdRow struct {
	FactionID int
	Name      string
	Desc      string
}

// Tables bundles the four metadata categories.
type Tables struct {
	Natural     map[int]NaturalRow
	Settlements []SettlementRow
	Sanctums    []SanctumRow
	Strongholds map[int]StrongholdRow
}

// SanctumsOf returns the sanctum rows of the given sub-kind, in table order.
func (t *Tables) SanctumsOf(subKind string) []SanctumRow {
	var rows []SanctumRow
	for _, r := range t.Sanctums {
		if r.SubKind == subKind {
			rows = append(rows, r)
		}
	}
	return rows
}

// ParseIDList parses a comma-separated id list. Entries may be
// float-formatted ("12.0"); anything unparseable is skipped.
func ParseIDList(s string) []int {
	if s == "" {
		return nil
	}
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if f, err := strconv.ParseFloat(part, 64); err == nil {
			out = append(out, int(f))
		}
	}
	return out
}

// coerceInt accepts the numeric shapes a loosely-typed table cell can take
// and falls back to def for anything else.
func coerceInt(v any, def int) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return int(f)
		}
	}
	return def
}

// coerceIDList accepts either a native list of numbers or a comma-separated
// string; anything else yields nil.
func coerceIDList(v any) []int {
	switch l := v.(type) {
	case string:
		return ParseIDList(l)
	case []any:
		var out []int
		for _, e := range l {
			switch n := e.(type) {
			case int:
				out = append(out, n)
			case int64:
				out = append(out, int(n))
			case float64:
				out = append(out, int(n))
			case string:
				out = append(out, ParseIDList(n)...)
			}
		}
		return out
	}
	return nil
}

// coerceString returns v as a string if it is one, else def.
func coerceString(v any, def string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return def
}
