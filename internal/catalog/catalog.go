// Package catalog holds the static service catalog for the marketing site.
// The data is a fixed compile-time list — there is no backing store — and the
// package exposes read-only lookups by id and category.
package catalog

// Icon is the closed set of display glyphs the frontend may render for a
// service. Keeping this an enumerated type (rather than an open string the
// frontend resolves by name at runtime) means an unrecognized tag can never
// reach the client: ParseIcon maps anything unknown to IconWrench.
type Icon string

const (
	IconHammer     Icon = "hammer"
	IconPaintbrush Icon = "paintbrush"
	IconHome       Icon = "home"
	IconSquare     Icon = "square"
	IconChefHat    Icon = "chef-hat"
	IconBath       Icon = "bath"
	IconTrees      Icon = "trees"
	IconGrid       Icon = "grid"
	IconDoorOpen   Icon = "door-open"
	IconRuler      Icon = "ruler"
	IconDroplets   Icon = "droplets"
	IconWaves      Icon = "waves"
	IconWrench     Icon = "wrench"
	IconZap        Icon = "zap"
	IconArchive    Icon = "archive"
)

// knownIcons is the membership set behind ParseIcon.
var knownIcons = map[Icon]struct{}{
	IconHammer: {}, IconPaintbrush: {}, IconHome: {}, IconSquare: {},
	IconChefHat: {}, IconBath: {}, IconTrees: {}, IconGrid: {},
	IconDoorOpen: {}, IconRuler: {}, IconDroplets: {}, IconWaves: {},
	IconWrench: {}, IconZap: {}, IconArchive: {},
}

// ParseIcon maps a tag to its Icon, falling back to IconWrench for anything
// outside the known set.
func ParseIcon(tag string) Icon {
	if _, ok := knownIcons[Icon(tag)]; ok {
		return Icon(tag)
	}
	return IconWrench
}

// Category groups services for the catalog page filter.
type Category string

const (
	CategoryInterior Category = "Interior"
	CategoryExterior Category = "Exterior"
)

// Service is one offered service as shown on the services page.
type Service struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Icon        Icon     `json:"icon"`
}

// All returns every service in catalog order. The returned slice is shared —
// callers must not mutate it.
func All() []Service {
	return services
}

// ByID returns the service with the given id, or false when no such service
// exists.
func ByID(id string) (Service, bool) {
	for _, s := range services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

// ByCategory returns the services in the given category, preserving catalog
// order.
func ByCategory(c Category) []Service {
	var out []Service
	for _, s := range services {
		if s.Category == c {
			out = append(out, s)
		}
	}
	return out
}

// Categories returns the distinct categories in the order they first appear.
func Categories() []Category {
	var out []Category
	seen := map[Category]bool{}
	for _, s := range services {
		if !seen[s.Category] {
			seen[s.Category] = true
			out = append(out, s.Category)
		}
	}
	return out
}
