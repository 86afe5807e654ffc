package unireader

// Theme defines semantic color mappings for reports using ANSI color indices
// (0-15). A negative index means no color.
type Theme struct {
	Index int // Record index column
	Text  int // Cluster or code point text
	Error int // Decode error records
	Muted int // Counts and summary line
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		Index: 5,
		Text:  -1,
		Error: 1,
		Muted: 8,
	}
}
