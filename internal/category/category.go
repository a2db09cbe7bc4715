package category

// Key identifies a listing category.
type Key string

const (
	Electronics Key = "electronics"
	Vehicles    Key = "vehicles"
	RealEstate  Key = "real-estate"
	Fashion     Key = "fashion"
	Home        Key = "home"
	Kids        Key = "kids"
	Hobbies     Key = "hobbies"
	Animals     Key = "animals"
	Jobs        Key = "jobs"
	Services    Key = "services"
	Other       Key = "other"
)

// Icon references the asset drawn for a category.
type Icon string

// Category pairs a key with its icon.
type Category struct {
	Key  Key
	Icon Icon
}

// registry is the complete, ordered set of categories.
var registry = []Category{
	{Electronics, "icons/smartphone.svg"},
	{Vehicles, "icons/car.svg"},
	{RealEstate, "icons/home-city.svg"},
	{Fashion, "icons/shirt.svg"},
	{Home, "icons/sofa.svg"},
	{Kids, "icons/baby.svg"},
	{Hobbies, "icons/palette.svg"},
	{Animals, "icons/paw.svg"},
	{Jobs, "icons/briefcase.svg"},
	{Services, "icons/wrench.svg"},
	{Other, "icons/package.svg"},
}

var icons = func() map[Key]Icon {
	m := make(map[Key]Icon, len(registry))
	for _, c := range registry {
		m[c.Key] = c.Icon
	}

	return m
}()

// IconFor returns the icon for key. Unknown keys get the Other icon.
func IconFor(key Key) Icon {
	if icon, ok := icons[key]; ok {
		return icon
	}

	return icons[Other]
}

// Known reports whether key is a registered category.
func Known(key Key) bool {
	_, ok := icons[key]

	return ok
}

// All returns every category in display order.
func All() []Category {
	out := make([]Category, len(registry))
	copy(out, registry)

	return out
}
