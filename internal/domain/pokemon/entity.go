package pokemon

import "encoding/json"

// Reference points at a detailed upstream record.
type Reference struct {
	Name string
	URL  string
}

// TypeList is the upstream catalogue of categories.
type TypeList struct {
	Count   int
	Results []Reference
}

// Type is one category with the creatures that belong to it.
type Type struct {
	ID      int
	Name    string
	Members []Reference
}

// Page is one upstream-paginated window of the creature list.
type Page struct {
	Count   int
	Results []Reference
}

// Pokemon is the full upstream detail record. Nested collections are kept
// as raw JSON since they are relayed without interpretation.
type Pokemon struct {
	ID        int
	Name      string
	Weight    int
	Stats     json.RawMessage
	Types     json.RawMessage
	Abilities json.RawMessage
	Moves     json.RawMessage
	// nil when the upstream record carries no sprites object.
	Sprites *Sprites
}

type Sprites struct {
	FrontDefault json.RawMessage
}
