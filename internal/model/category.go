package model

// Category identifies a PC component kind.
type Category string

// The fixed set of component categories a build slots into.
const (
	CategoryCPU       Category = "cpu"
	CategoryVGA       Category = "vga"
	CategoryMainboard Category = "mainboard"
	CategoryPSU       Category = "psu"
	CategoryRAM       Category = "ram"
	CategorySSD       Category = "ssd"
	CategoryHDD       Category = "hdd"
	CategoryCase      Category = "case"
	CategoryCooler    Category = "cooler"
	CategoryMonitor   Category = "monitor"
	CategoryFan       Category = "fan"
	CategoryMouse     Category = "mouse"
	CategoryKeyboard  Category = "keyboard"
	CategoryHeadset   Category = "headset"
)

// Categories lists every valid category in build order.
var Categories = []Category{
	CategoryCPU,
	CategoryVGA,
	CategoryMainboard,
	CategoryPSU,
	CategoryCooler,
	CategoryRAM,
	CategoryCase,
	CategorySSD,
	CategoryHDD,
	CategoryMonitor,
	CategoryFan,
	CategoryMouse,
	CategoryKeyboard,
	CategoryHeadset,
}

var validCategories = func() map[Category]bool {
	m := make(map[Category]bool, len(Categories))
	for _, c := range Categories {
		m[c] = true
	}
	return m
}()

// Valid reports whether c is one of the fixed component categories.
func (c Category) Valid() bool {
	return validCategories[c]
}

func (c Category) String() string {
	return string(c)
}
