package piechart

// Palette is the fixed set of slice colors, reused cyclically across categories.
var Palette = []string{
	"#EF4444", // Red
	"#F59E0B", // Amber
	"#10B981", // Emerald
	"#3B82F6", // Blue
	"#9333EA", // Purple
	"#EC4899", // Pink
	"#6EE7B7", // Mint
	"#A78BFA", // Lavender
	"#FBBF24", // Yellow
	"#2DD4BF", // Teal
}

// PaletteColor returns the color for a given category index, cycling through the palette.
func PaletteColor(index int) string {
	return Palette[index%len(Palette)]
}

// Colors returns one color per category, repeating the palette as needed.
func Colors(n int) []string {
	if n <= 0 {
		return []string{}
	}
	colors := make([]string, n)
	for i := range colors {
		colors[i] = PaletteColor(i)
	}
	return colors
}
