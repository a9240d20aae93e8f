package metadata

// Default returns the built-in tables. They mirror the canonical region
// roster (natural region ids 101-118, settlement ids 301-305, sanctum ids
// in the 200s) so the generator works out of the box; hosts normally load
// their own tables from disk instead.
func Default() *Tables {
	natural := []NaturalRow{
		{ID: 101, Name: "Heartland Plains", Desc: "Open flatland crossed by caravan roads.", FaunaIDs: []int{1, 2}, FloraIDs: []int{11, 12}, LodeIDs: []int{21}, EssenceDensity: 2},
		{ID: 102, Name: "Western Shifting Sands", Desc: "Dunes that swallow the unwary.", FaunaIDs: []int{3}, FloraIDs: []int{13}, LodeIDs: []int{22, 23}, EssenceDensity: 3},
		{ID: 103, Name: "Southern Wilds", Desc: "Dripping jungle thick with venom and vine.", FaunaIDs: []int{4, 5, 6}, FloraIDs: []int{14, 15}, LodeIDs: nil, EssenceDensity: 4},
		{ID: 104, Name: "Far North Icefield", Desc: "A glacier sheet that never thaws.", FaunaIDs: []int{7}, FloraIDs: nil, LodeIDs: []int{24}, EssenceDensity: 5},
		{ID: 105, Name: "Boundless Azure Sea", Desc: "Open ocean beyond any chart.", FaunaIDs: []int{8, 9}, FloraIDs: nil, LodeIDs: nil, EssenceDensity: 3},
		{ID: 106, Name: "Skyriver", Desc: "A great freshwater artery fed by mountain snow.", FaunaIDs: []int{10}, FloraIDs: []int{16}, LodeIDs: nil, EssenceDensity: 2},
		{ID: 107, Name: "Azure Peak Range", Desc: "Green ridges wreathed in morning mist.", FaunaIDs: []int{1, 4}, FloraIDs: []int{17}, LodeIDs: []int{25, 26}, EssenceDensity: 4},
		{ID: 108, Name: "Myriad-Fathom Snow Peaks", Desc: "Summits where the air itself freezes.", FaunaIDs: []int{7}, FloraIDs: []int{18}, LodeIDs: []int{27}, EssenceDensity: 6},
		{ID: 109, Name: "Thousand-Li Meadow", Desc: "Grassland rolling to the horizon.", FaunaIDs: []int{1, 2}, FloraIDs: []int{11}, LodeIDs: nil, EssenceDensity: 2},
		{ID: 110, Name: "Cloudwood Sea", Desc: "An old forest deep enough to lose the sky.", FaunaIDs: []int{4, 5}, FloraIDs: []int{14, 17}, LodeIDs: nil, EssenceDensity: 3},
		{ID: 111, Name: "Flameprison Volcano", Desc: "Black slopes over a restless fire heart.", FaunaIDs: nil, FloraIDs: nil, LodeIDs: []int{28, 29}, EssenceDensity: 7},
		{ID: 112, Name: "Fertile Terraces", Desc: "Irrigated fields stepped along the valleys.", FaunaIDs: []int{2}, FloraIDs: []int{12, 19}, LodeIDs: nil, EssenceDensity: 1},
		{ID: 113, Name: "Netherfen Mire", Desc: "Poison fog over bottomless wet ground.", FaunaIDs: []int{6}, FloraIDs: []int{15}, LodeIDs: nil, EssenceDensity: 5},
		{ID: 114, Name: "Hundred Thousand Mountains", Desc: "Ridge after ridge without end.", FaunaIDs: []int{4}, FloraIDs: []int{17}, LodeIDs: []int{25}, EssenceDensity: 5},
		{ID: 115, Name: "Violet Bamboo Hollow", Desc: "A stand of violet bamboo said to hum at dusk.", FaunaIDs: []int{5}, FloraIDs: []int{20}, LodeIDs: nil, EssenceDensity: 4},
		{ID: 116, Name: "Rimefrost Waste", Desc: "Frozen barrens scoured by wind.", FaunaIDs: []int{7}, FloraIDs: nil, LodeIDs: []int{24}, EssenceDensity: 3},
		{ID: 117, Name: "Starshard Gobi", Desc: "Gravel flats strewn with fallen-star iron.", FaunaIDs: []int{3}, FloraIDs: nil, LodeIDs: []int{23, 30}, EssenceDensity: 4},
		{ID: 118, Name: "Penglai Lost Isle", Desc: "An isle that is not always where it was.", FaunaIDs: []int{8}, FloraIDs: []int{16}, LodeIDs: []int{31}, EssenceDensity: 6},
	}

	naturalByID := make(map[int]NaturalRow, len(natural))
	for _, r := range natural {
		naturalByID[r.ID] = r
	}

	return &Tables{
		Natural: naturalByID,
		Settlements: []SettlementRow{
			{ID: 301, Name: "Cloudreach City", Desc: "The largest market within a thousand li.", SellItemIDs: []int{1001, 1002, 1003}},
			{ID: 302, Name: "Riverfall Market", Desc: "A trade town at the river crossing.", SellItemIDs: []int{1001, 1004}},
			{ID: 303, Name: "Stonegate Town", Desc: "A walled waypoint on the mountain road.", SellItemIDs: []int{1002, 1005}},
			{ID: 304, Name: "Jade Harbor", Desc: "Junks crowd its piers from every coast.", SellItemIDs: []int{1003, 1006}},
			{ID: 305, Name: "Emberwatch", Desc: "A frontier post under the volcano's glow.", SellItemIDs: []int{1005}},
		},
		Sanctums: []SanctumRow{
			{ID: 201, Name: "Golden Vein Grotto", Desc: "Metal essence seeps from the walls.", SubKind: "cave", Essence: "gold", EssenceDensity: 8},
			{ID: 202, Name: "Verdant Hollow", Desc: "Roots older than any sect.", SubKind: "cave", Essence: "wood", EssenceDensity: 8},
			{ID: 203, Name: "Tidewell Cavern", Desc: "A spring that breathes with the sea.", SubKind: "cave", Essence: "water", EssenceDensity: 9},
			{ID: 204, Name: "Cinder Den", Desc: "Warm stone that never cools.", SubKind: "cave", Essence: "fire", EssenceDensity: 7},
			{ID: 205, Name: "Loam Deep", Desc: "Still earth heavy with essence.", SubKind: "cave", Essence: "earth", EssenceDensity: 8},
			{ID: 211, Name: "Sunken Shrine", Desc: "An altar drowned by an older age.", SubKind: "ruin", Essence: "wood", EssenceDensity: 10},
			{ID: 212, Name: "Shattered Star Terrace", Desc: "Broken jade steps leading nowhere.", SubKind: "ruin", Essence: "fire", EssenceDensity: 11},
			{ID: 213, Name: "Forgotten Sword Tomb", Desc: "Blades rust here by the thousand.", SubKind: "ruin", Essence: "gold", EssenceDensity: 12},
		},
		Strongholds: map[int]StrongholdRow{},
	}
}
