package pokeapi

import (
	"fmt"

	dom "pokeproxy/internal/domain/pokemon"
)

// MissingFieldError reports an upstream payload without a field we need.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %q", e.Field)
}

func toDomainReferences(list []namedResource) []dom.Reference {
	res := make([]dom.Reference, 0, len(list))
	for _, r := range list {
		res = append(res, dom.Reference{Name: r.Name, URL: r.URL})
	}
	return res
}

func toDomainTypeList(l *namedResourceList) (*dom.TypeList, error) {
	if l.Results == nil {
		return nil, &MissingFieldError{Field: "results"}
	}
	return &dom.TypeList{
		Count:   l.Count,
		Results: toDomainReferences(*l.Results),
	}, nil
}

func toDomainPage(l *namedResourceList) (*dom.Page, error) {
	if l.Results == nil {
		return nil, &MissingFieldError{Field: "results"}
	}
	return &dom.Page{
		Count:   l.Count,
		Results: toDomainReferences(*l.Results),
	}, nil
}

func toDomainType(t *typeResource) (*dom.Type, error) {
	if t.Pokemon == nil {
		return nil, &MissingFieldError{Field: "pokemon"}
	}
	members := make([]dom.Reference, 0, len(*t.Pokemon))
	for _, m := range *t.Pokemon {
		members = append(members, dom.Reference{Name: m.Pokemon.Name, URL: m.Pokemon.URL})
	}
	return &dom.Type{
		ID:      t.ID,
		Name:    t.Name,
		Members: members,
	}, nil
}

func toDomainPokemon(p *pokemonResource) *dom.Pokemon {
	out := &dom.Pokemon{
		ID:        p.ID,
		Name:      p.Name,
		Weight:    p.Weight,
		Stats:     p.Stats,
		Types:     p.Types,
		Abilities: p.Abilities,
		Moves:     p.Moves,
	}
	if p.Sprites != nil {
		out.Sprites = &dom.Sprites{FrontDefault: p.Sprites.FrontDefault}
	}
	return out
}
