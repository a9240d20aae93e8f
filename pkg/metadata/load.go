package metadata

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// rawRow is one table row as it appears on disk. Values are left untyped so
// that loosely-formatted cells (numbers-as-strings, comma lists) can be
// coerced instead of rejected.
type rawRow map[string]any

type rawFile struct {
	NaturalRegions []rawRow `yaml:"natural_regions"`
	Settlements    []rawRow `yaml:"settlements"`
	Sanctums       []rawRow `yaml:"sanctums"`
	Strongholds    []rawRow `yaml:"strongholds"`
}

// Load reads metadata tables from a YAML file. Rows without a usable id are
// dropped; malformed fields within a row fall back to safe defaults. Only
// unreadable files or invalid YAML are errors.
func Load(path string) (*Tables, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f rawFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	t := &Tables{
		Natural:     make(map[int]NaturalRow),
		Strongholds: make(map[int]StrongholdRow),
	}

	for _, row := range f.NaturalRegions {
		id := coerceInt(row["id"], 0)
		if id <= 0 {
			continue
		}
		t.Natural[id] = NaturalRow{
			ID:             id,
			Name:           coerceString(row["name"], ""),
			Desc:           coerceString(row["desc"], ""),
			FaunaIDs:       coerceIDList(row["fauna_ids"]),
			FloraIDs:       coerceIDList(row["flora_ids"]),
			LodeIDs:        coerceIDList(row["lode_ids"]),
			EssenceDensity: coerceInt(row["essence_density"], 0),
		}
	}

	for _, row := range f.Settlements {
		id := coerceInt(row["id"], 0)
		if id <= 0 {
			continue
		}
		t.Settlements = append(t.Settlements, SettlementRow{
			ID:          id,
			Name:        coerceString(row["name"], ""),
			Desc:        coerceString(row["desc"], ""),
			SellItemIDs: coerceIDList(row["sell_item_ids"]),
		})
	}

	for _, row := range f.Sanctums {
		id := coerceInt(row["id"], 0)
		if id <= 0 {
			continue
		}
		t.Sanctums = append(t.Sanctums, SanctumRow{
			ID:             id,
			Name:           coerceString(row["name"], ""),
			Desc:           coerceString(row["desc"], ""),
			SubKind:        coerceString(row["sub_kind"], "cave"),
			Essence:        coerceString(row["essence"], ""),
			EssenceDensity: coerceInt(row["essence_density"], 8),
		})
	}

	for _, row := range f.Strongholds {
		fid := coerceInt(row["faction_id"], -1)
		if fid < 0 {
			continue
		}
		t.Strongholds[fid] = StrongholdRow{
			FactionID: fid,
			Name:      coerceString(row["name"], ""),
			Desc:      coerceString(row["desc"], ""),
		}
	}

	return t, nil
}
