package theme

import "github.com/charmbracelet/lipgloss"

// Style is the visual decoration of a theme.
type Style struct {
	Emoji  string
	Accent lipgloss.Color
}

var styles = map[Name]Style{
	Valentine: {Emoji: "💖", Accent: lipgloss.Color("211")},
	Ramadan:   {Emoji: "🌙", Accent: lipgloss.Color("214")},
	Easter:    {Emoji: "🐰", Accent: lipgloss.Color("141")},
	Carnival:  {Emoji: "✨", Accent: lipgloss.Color("42")},
	Halloween: {Emoji: "👻", Accent: lipgloss.Color("208")},
	Christmas: {Emoji: "🎁", Accent: lipgloss.Color("196")},
	Summer:    {Emoji: "☀️", Accent: lipgloss.Color("220")},
	Autumn:    {Emoji: "🍂", Accent: lipgloss.Color("130")},
	Fitness:   {Emoji: "💪", Accent: lipgloss.Color("45")},
}

// Lookup returns the decoration for n. Unknown names, including None,
// report false.
func Lookup(n Name) (Style, bool) {
	s, ok := styles[n]
	return s, ok
}
