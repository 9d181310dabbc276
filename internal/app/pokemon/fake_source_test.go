package pokemon

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	domcommon "pokeproxy/internal/domain/common"
	dom "pokeproxy/internal/domain/pokemon"
)

var errUpstream = errors.New("upstream unreachable")

// fakeSource is an in-memory dom.Source.
type fakeSource struct {
	mu sync.Mutex

	typeList *dom.TypeList
	types    map[string]*dom.Type
	pages    map[string]*dom.Page
	byName   map[string]*dom.Pokemon
	byURL    map[string]*dom.Pokemon
	delays   map[string]time.Duration
	failURL  map[string]bool
	listErr  error

	searched    []string
	listOffsets []string
	fetchedURLs []string
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		types:   map[string]*dom.Type{},
		pages:   map[string]*dom.Page{},
		byName:  map[string]*dom.Pokemon{},
		byURL:   map[string]*dom.Pokemon{},
		delays:  map[string]time.Duration{},
		failURL: map[string]bool{},
	}
}

func (f *fakeSource) ListTypes(ctx context.Context) (*dom.TypeList, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.typeList, nil
}

func (f *fakeSource) GetType(ctx context.Context, id string) (*dom.Type, error) {
	tp, ok := f.types[id]
	if !ok {
		return nil, domcommon.NewNotFound("type", id)
	}
	return tp, nil
}

func (f *fakeSource) ListPokemon(ctx context.Context, offset string, limit int) (*dom.Page, error) {
	f.mu.Lock()
	f.listOffsets = append(f.listOffsets, offset)
	f.mu.Unlock()

	if f.listErr != nil {
		return nil, f.listErr
	}
	page, ok := f.pages[offset]
	if !ok {
		return &dom.Page{Count: 0, Results: []dom.Reference{}}, nil
	}
	return page, nil
}

func (f *fakeSource) GetPokemon(ctx context.Context, idOrName string) (*dom.Pokemon, error) {
	f.mu.Lock()
	f.searched = append(f.searched, idOrName)
	f.mu.Unlock()

	p, ok := f.byName[idOrName]
	if !ok {
		return nil, domcommon.NewNotFound("pokemon", idOrName)
	}
	return p, nil
}

func (f *fakeSource) GetPokemonByURL(ctx context.Context, url string) (*dom.Pokemon, error) {
	if d := f.delays[url]; d > 0 {
		select {
		case <-time.After(d):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	f.mu.Lock()
	f.fetchedURLs = append(f.fetchedURLs, url)
	f.mu.Unlock()

	if f.failURL[url] {
		return nil, fmt.Errorf("get %s: %w", url, errUpstream)
	}
	p, ok := f.byURL[url]
	if !ok {
		return nil, domcommon.NewNotFound("pokemon", url)
	}
	return p, nil
}

func samplePokemon(id int, name string) *dom.Pokemon {
	return &dom.Pokemon{
		ID:        id,
		Name:      name,
		Weight:    id * 10,
		Stats:     []byte(`[{"base_stat":45}]`),
		Types:     []byte(`[{"slot":1,"type":{"name":"grass"}}]`),
		Abilities: []byte(`[]`),
		Moves:     []byte(`[]`),
		Sprites:   &dom.Sprites{FrontDefault: []byte(fmt.Sprintf(`"https://img/%d.png"`, id))},
	}
}

// addMembers registers n creatures and returns their references.
func (f *fakeSource) addMembers(n int) []dom.Reference {
	refs := make([]dom.Reference, 0, n)
	for i := 1; i <= n; i++ {
		name := fmt.Sprintf("mon-%d", i)
		url := fmt.Sprintf("https://pokeapi.test/pokemon/%d/", i)
		f.byURL[url] = samplePokemon(i, name)
		refs = append(refs, dom.Reference{Name: name, URL: url})
	}
	return refs
}
