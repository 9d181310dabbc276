package pokeapi

import "encoding/json"

// Wire shapes of the upstream API. Only the fields we relay are declared.
// Collections we iterate are pointers so an absent field can be told apart
// from an empty one.

type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type namedResourceList struct {
	Count   int              `json:"count"`
	Results *[]namedResource `json:"results"`
}

type typeMember struct {
	Slot    int           `json:"slot"`
	Pokemon namedResource `json:"pokemon"`
}

type typeResource struct {
	ID      int           `json:"id"`
	Name    string        `json:"name"`
	Pokemon *[]typeMember `json:"pokemon"`
}

type pokemonResource struct {
	ID        int              `json:"id"`
	Name      string           `json:"name"`
	Weight    int              `json:"weight"`
	Stats     json.RawMessage  `json:"stats"`
	Types     json.RawMessage  `json:"types"`
	Abilities json.RawMessage  `json:"abilities"`
	Moves     json.RawMessage  `json:"moves"`
	Sprites   *spritesResource `json:"sprites"`
}

type spritesResource struct {
	FrontDefault json.RawMessage `json:"front_default"`
}
