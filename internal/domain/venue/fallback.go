package venue

import "strings"

// fallbackEntry is a known venue with precomputed coordinates.
type fallbackEntry struct {
	key string
	at  Coordinates
}

// fallbackTable is consulted before any external lookup. A key matches when
// it appears, case-insensitively, anywhere in the venue name; order matters
// because the first matching key wins.
var fallbackTable = []fallbackEntry{
	{"Teahupo'o, Tahiti", Coordinates{-17.8471, -149.2667}},
	{"Champ de Mars Arena", Coordinates{48.8556, 2.2986}},
	{"Eiffel Tower Stadium", Coordinates{48.8584, 2.2945}},
	{"La Concorde", Coordinates{48.8656, 2.3212}},
	{"South Paris Arena", Coordinates{48.8325, 2.2870}},
	{"North Paris Arena", Coordinates{48.9018, 2.3700}},
	{"Aquatics Centre", Coordinates{48.9329, 2.3705}},
	{"Bercy Arena", Coordinates{48.8386, 2.3785}},
	{"Bordeaux Stadium", Coordinates{44.8976, -0.5660}},
	{"Château de Versailles", Coordinates{48.8049, 2.1204}},
	{"Chateauroux Shooting Centre", Coordinates{46.8190, 1.7010}},
	{"Elancourt Hill", Coordinates{48.7885, 1.9683}},
	{"Geoffroy-Guichard Stadium", Coordinates{45.4608, 4.3901}},
	{"Grand Palais", Coordinates{48.8661, 2.3125}},
	{"Hôtel de Ville", Coordinates{48.8566, 2.3522}},
	{"Invalides", Coordinates{48.8554, 2.3123}},
	{"La Beaujoire Stadium", Coordinates{47.2556, -1.5254}},
	{"Le Bourget Sport Climbing Venue", Coordinates{48.9540, 2.4300}},
	{"Golf National", Coordinates{48.7547, 2.0754}},
	{"Lyon Stadium", Coordinates{45.7653, 4.9820}},
	{"Marseille Marina", Coordinates{43.2766, 5.3697}},
	{"Marseille Stadium", Coordinates{43.2699, 5.3959}},
	{"Nice Stadium", Coordinates{43.7051, 7.1926}},
	{"Parc des Princes", Coordinates{48.8414, 2.2530}},
	{"Paris La Defense Arena", Coordinates{48.8958, 2.2297}},
	{"Pierre Mauroy Stadium", Coordinates{50.6119, 3.1305}},
	{"Pont Alexandre III", Coordinates{48.8639, 2.3135}},
	{"Porte de La Chapelle Arena", Coordinates{48.9013, 2.3590}},
	{"Stade Roland-Garros", Coordinates{48.8471, 2.2492}},
	{"Saint-Quentin-en-Yvelines BMX Stadium", Coordinates{48.7880, 2.0200}},
	{"Saint-Quentin-en-Yvelines Velodrome", Coordinates{48.7881, 2.0345}},
	{"Stade de France", Coordinates{48.9244, 2.3601}},
	{"Trocadéro", Coordinates{48.8624, 2.2875}},
	{"Vaires-sur-Marne Nautical Stadium", Coordinates{48.8647, 2.6438}},
	{"Yves-du-Manoir Stadium", Coordinates{48.9294, 2.2481}},
}

// foldedFallback holds the case-folded keys, index-aligned with fallbackTable.
var foldedFallback = func() []string {
	out := make([]string, len(fallbackTable))
	for i, e := range fallbackTable {
		out[i] = fold(e.key)
	}
	return out
}()

// Fallback returns the precomputed coordinates of the first fallback key
// contained in name.
func Fallback(name string) (Coordinates, bool) {
	folded := fold(name)
	for i, key := range foldedFallback {
		if strings.Contains(folded, key) {
			return fallbackTable[i].at, true
		}
	}
	return Coordinates{}, false
}
