package model

import "strings"

// Icon is the closed set of icons a case study may reference.
type Icon int

const (
	// IconSparkles is the fallback for unknown or empty icon names.
	IconSparkles Icon = iota
	IconChart
	IconCode
	IconGlobe
	IconMegaphone
	IconPalette
	IconRocket
	IconShield
)

var iconNames = [...]string{
	IconSparkles:  "sparkles",
	IconChart:     "chart",
	IconCode:      "code",
	IconGlobe:     "globe",
	IconMegaphone: "megaphone",
	IconPalette:   "palette",
	IconRocket:    "rocket",
	IconShield:    "shield",
}

// ParseIcon maps a stored icon name to an Icon. It is total: names it does
// not recognise resolve to IconSparkles.
func ParseIcon(name string) Icon {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range iconNames {
		if n == name {
			return Icon(i)
		}
	}
	return IconSparkles
}

// String returns the canonical icon name.
func (i Icon) String() string {
	if i < 0 || int(i) >= len(iconNames) {
		return iconNames[IconSparkles]
	}
	return iconNames[i]
}

// SymbolID is the id of the SVG <symbol> sprite for the icon.
func (i Icon) SymbolID() string {
	return "icon-" + i.String()
}
