package pokemon

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	dom "pokeproxy/internal/domain/pokemon"
)

type TypeDto struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

type TypeListDto struct {
	Count   int       `json:"count"`
	Results []TypeDto `json:"results"`
}

type SpritesDto struct {
	FrontDefault json.RawMessage `json:"front_default,omitempty"`
}

// PokemonSummaryDto is the list-item shape.
type PokemonSummaryDto struct {
	ID      int             `json:"id"`
	Name    string          `json:"name"`
	Stats   json.RawMessage `json:"stats,omitempty"`
	Types   json.RawMessage `json:"types,omitempty"`
	Sprites SpritesDto      `json:"sprites"`
}

// PokemonDetailDto is the single-lookup shape.
type PokemonDetailDto struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Stats     json.RawMessage `json:"stats,omitempty"`
	Types     json.RawMessage `json:"types,omitempty"`
	Abilities json.RawMessage `json:"abilities,omitempty"`
	Moves     json.RawMessage `json:"moves,omitempty"`
	Weight    int             `json:"weight"`
	Sprites   SpritesDto      `json:"sprites"`
}

type PokemonPageDto struct {
	Count   int                 `json:"count"`
	Results []PokemonSummaryDto `json:"results"`
}

type ListByTypeInput struct {
	TypeID string
	Offset int
}

type ListInput struct {
	// Forwarded to the upstream list as-is.
	Offset string
}

var (
	digitsPattern = regexp.MustCompile(`\d+`)

	errMissingSprites = errors.New("record has no sprites")
)

// typeIDFromURL extracts the last run of digits, "…/type/4/" → "4".
func typeIDFromURL(refURL string) (string, error) {
	all := digitsPattern.FindAllString(refURL, -1)
	if len(all) == 0 {
		return "", fmt.Errorf("no type id in url %q", refURL)
	}
	return all[len(all)-1], nil
}

func toTypeDto(ref dom.Reference) (TypeDto, error) {
	id, err := typeIDFromURL(ref.URL)
	if err != nil {
		return TypeDto{}, err
	}
	return TypeDto{Name: ref.Name, ID: id}, nil
}

func toTypeDtos(refs []dom.Reference) ([]TypeDto, error) {
	res := make([]TypeDto, 0, len(refs))
	for _, ref := range refs {
		dto, err := toTypeDto(ref)
		if err != nil {
			return nil, err
		}
		res = append(res, dto)
	}
	return res, nil
}

func toSpritesDto(p *dom.Pokemon) (SpritesDto, error) {
	if p.Sprites == nil {
		return SpritesDto{}, fmt.Errorf("pokemon %q: %w", p.Name, errMissingSprites)
	}
	return SpritesDto{FrontDefault: p.Sprites.FrontDefault}, nil
}

func toSummaryDto(p *dom.Pokemon) (PokemonSummaryDto, error) {
	sprites, err := toSpritesDto(p)
	if err != nil {
		return PokemonSummaryDto{}, err
	}
	return PokemonSummaryDto{
		ID:      p.ID,
		Name:    p.Name,
		Stats:   p.Stats,
		Types:   p.Types,
		Sprites: sprites,
	}, nil
}

func toSummaryDtos(list []*dom.Pokemon) ([]PokemonSummaryDto, error) {
	res := make([]PokemonSummaryDto, 0, len(list))
	for _, p := range list {
		dto, err := toSummaryDto(p)
		if err != nil {
			return nil, err
		}
		res = append(res, dto)
	}
	return res, nil
}

func toDetailDto(p *dom.Pokemon) (*PokemonDetailDto, error) {
	sprites, err := toSpritesDto(p)
	if err != nil {
		return nil, err
	}
	return &PokemonDetailDto{
		ID:        p.ID,
		Name:      p.Name,
		Stats:     p.Stats,
		Types:     p.Types,
		Abilities: p.Abilities,
		Moves:     p.Moves,
		Weight:    p.Weight,
		Sprites:   sprites,
	}, nil
}
