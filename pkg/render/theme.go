package render

import (
	"sort"

	"github.com/matzehuels/roomplan/pkg/plan"
)

// Theme carries the colors of a rendered floor plan. All values are SVG
// color strings.
type Theme struct {
	Name       string
	Background string
	Wall       string
	Grid       string
	Door       string
	Text       string
	Dim        string

	Fill   map[plan.ItemKind]string
	Stroke map[plan.ItemKind]string
}

// DefaultTheme is the standard office palette.
func DefaultTheme() Theme {
	return Theme{
		Name:       "default",
		Background: "#fafaf7",
		Wall:       "#2b2b2b",
		Grid:       "#e4e4de",
		Door:       "#b8860b",
		Text:       "#2b2b2b",
		Dim:        "#7a7a7a",
		Fill: map[plan.ItemKind]string{
			plan.KindDesk:      "#cfe3f5",
			plan.KindChair:     "#f2d9b8",
			plan.KindStorage:   "#d8e8d0",
			plan.KindEquipment: "#e8d6e8",
			plan.KindMeeting:   "#f5e9c8",
		},
		Stroke: map[plan.ItemKind]string{
			plan.KindDesk:      "#4a79a5",
			plan.KindChair:     "#b07d3a",
			plan.KindStorage:   "#5f8a4e",
			plan.KindEquipment: "#8a5f8a",
			plan.KindMeeting:   "#a58a3f",
		},
	}
}

// BlueprintTheme is a white-on-blue drafting palette.
func BlueprintTheme() Theme {
	return Theme{
		Name:       "blueprint",
		Background: "#10355f",
		Wall:       "#eaf2fb",
		Grid:       "#1d4a7d",
		Door:       "#ffd27f",
		Text:       "#eaf2fb",
		Dim:        "#9db8d6",
		Fill: map[plan.ItemKind]string{
			plan.KindDesk:      "#1d4a7d",
			plan.KindChair:     "#1d4a7d",
			plan.KindStorage:   "#1d4a7d",
			plan.KindEquipment: "#1d4a7d",
			plan.KindMeeting:   "#1d4a7d",
		},
		Stroke: map[plan.ItemKind]string{
			plan.KindDesk:      "#eaf2fb",
			plan.KindChair:     "#9db8d6",
			plan.KindStorage:   "#9db8d6",
			plan.KindEquipment: "#9db8d6",
			plan.KindMeeting:   "#9db8d6",
		},
	}
}

var themes = map[string]func() Theme{
	"default":   DefaultTheme,
	"blueprint": BlueprintTheme,
}

// ThemeByName looks up a theme. The second return reports whether the name
// is known.
func ThemeByName(name string) (Theme, bool) {
	f, ok := themes[name]
	if !ok {
		return Theme{}, false
	}
	return f(), true
}

// ThemeNames returns the sorted known theme names.
func ThemeNames() []string {
	out := make([]string, 0, len(themes))
	for name := range themes {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
