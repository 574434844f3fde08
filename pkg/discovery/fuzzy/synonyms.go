package fuzzy

// synonymClusters groups domain terms that should match each other at the
// synonym tier. Clusters are indexed into synonymIndex at init so lookup is
// O(1) per token.
var synonymClusters = [][]string{
	{"church", "parish", "chapel", "cathedral", "basilica", "oratory"},
	{"school", "academy", "education", "college", "university"},
	{"retreat", "renewal", "silence", "contemplative"},
	{"pilgrimage", "shrine", "sanctuary", "holy"},
	{"missionary", "mission", "evangelization", "outreach"},
	{"vocation", "seminary", "discernment", "priesthood", "religious"},
	{"business", "shop", "store", "company", "service"},
	{"campus", "newman", "student", "ministry"},
	{"mass", "liturgy", "eucharist", "worship"},
	{"confession", "reconciliation", "penance"},
	{"adoration", "devotion", "prayer"},
	{"youth", "teen", "young"},
	{"event", "gathering", "conference", "festival"},
}

var synonymIndex map[string]int

func init() {
	synonymIndex = make(map[string]int)
	for i, cluster := range synonymClusters {
		for _, word := range cluster {
			synonymIndex[word] = i
		}
	}
}

// SameCluster reports whether two tokens belong to the same synonym cluster.
func SameCluster(a, b string) bool {
	ia, oka := synonymIndex[a]
	ib, okb := synonymIndex[b]
	return oka && okb && ia == ib
}
