// Package theme tags task descriptions with seasonal decorations.
package theme

import (
	"encoding/json"
	"strings"
)

// Name identifies a theme. The zero value means no theme.
type Name string

const (
	None      Name = ""
	Valentine Name = "valentine"
	Ramadan   Name = "ramadan"
	Easter    Name = "easter"
	Carnival  Name = "carnival"
	Halloween Name = "halloween"
	Christmas Name = "christmas"
	Summer    Name = "summer"
	Autumn    Name = "autumn"
	Fitness   Name = "fitness"
)

// Keyword maps a trigger word to its theme.
type Keyword struct {
	Word  string
	Theme Name
}

// keywords is walked top to bottom; the first entry found in a
// description decides the theme, wherever it sits in the text.
var keywords = []Keyword{
	{"valentine", Valentine},
	{"ramadhan", Ramadan},
	{"ramadan", Ramadan},
	{"easter", Easter},
	{"brazil", Carnival},
	{"carnival", Carnival},
	{"halloween", Halloween},
	{"spooky", Halloween},
	{"ghost", Halloween},
	{"christmas", Christmas},
	{"holiday", Christmas},
	{"santa", Christmas},
	{"summer", Summer},
	{"beach", Summer},
	{"sunny", Summer},
	{"gym", Fitness},
	{"workout", Fitness},
	{"exercise", Fitness},
	{"training", Fitness},
}

// Classify returns the theme of the first keyword table entry contained in
// description, or None.
func Classify(description string) Name {
	lower := strings.ToLower(description)
	for _, k := range keywords {
		if strings.Contains(lower, k.Word) {
			return k.Theme
		}
	}
	return None
}

// Keywords returns a copy of the ordered keyword table.
func Keywords() []Keyword {
	out := make([]Keyword, len(keywords))
	copy(out, keywords)
	return out
}

// MarshalJSON writes None as null.
func (n Name) MarshalJSON() ([]byte, error) {
	if n == None {
		return []byte("null"), nil
	}
	return json.Marshal(string(n))
}

// UnmarshalJSON reads null as None.
func (n *Name) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = None
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*n = Name(s)
	return nil
}
