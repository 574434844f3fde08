package category

// Category is the closed set of resource kinds the assistant can surface.
// Unknown tags coming from the classifier are dropped at the boundary, never
// silently ignored downstream.
type Category string

const (
	Church     Category = "church"
	School     Category = "school"
	Retreat    Category = "retreat"
	Pilgrimage Category = "pilgrimage"
	Missionary Category = "missionary"
	Vocation   Category = "vocation"
	Business   Category = "business"
	Campus     Category = "campus"
)

// All lists every category in a stable order.
var All = []Category{
	Church, School, Retreat, Pilgrimage,
	Missionary, Vocation, Business, Campus,
}

// Default is the single most general category, used when keyword matching
// finds nothing and the intent is not general chat.
const Default = Church

// Valid reports whether a tag names a known category.
func Valid(tag string) bool {
	_, ok := byTag[tag]
	return ok
}

// Parse maps a classifier tag to a Category; the second result is false for
// unknown tags.
func Parse(tag string) (Category, bool) {
	c, ok := byTag[tag]
	return c, ok
}

var byTag = map[string]Category{}

func init() {
	for _, c := range All {
		byTag[string(c)] = c
	}
}

// Collections returns the backing store collections that feed a category.
// Several collections may map into one category.
func (c Category) Collections() []string {
	switch c {
	case Church:
		return []string{"Parishes"}
	case School:
		return []string{"Schools"}
	case Retreat:
		return []string{"Retreats", "RetreatCenters"}
	case Pilgrimage:
		return []string{"PilgrimageSites"}
	case Missionary:
		return []string{"Missionaries"}
	case Vocation:
		return []string{"Vocations", "ReligiousOrders"}
	case Business:
		return []string{"CatholicBusinesses"}
	case Campus:
		return []string{"CampusMinistries"}
	}
	return nil
}

// MaxResults is the per-category cap on surfaced candidates.
func (c Category) MaxResults() int {
	switch c {
	case Church:
		return 15
	case School, Business:
		return 10
	case Retreat, Pilgrimage, Missionary, Vocation, Campus:
		return 8
	}
	return 8
}

// ProximityRadiusMiles bounds the proximity bonus. Churches are the densest
// category, so their radius is tighter.
func (c Category) ProximityRadiusMiles() float64 {
	if c == Church {
		return 30
	}
	return 50
}

// DisplayName is the human-readable label used in prompts and subtitles.
func (c Category) DisplayName() string {
	switch c {
	case Church:
		return "Parish"
	case School:
		return "Catholic School"
	case Retreat:
		return "Retreat"
	case Pilgrimage:
		return "Pilgrimage Site"
	case Missionary:
		return "Missionary"
	case Vocation:
		return "Vocation"
	case Business:
		return "Catholic Business"
	case Campus:
		return "Campus Ministry"
	}
	return string(c)
}
