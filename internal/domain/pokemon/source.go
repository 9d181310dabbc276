package pokemon

import "context"

// Source is the upstream data API as seen by the application layer.
type Source interface {
	ListTypes(ctx context.Context) (*TypeList, error)
	GetType(ctx context.Context, id string) (*Type, error)
	// ListPokemon forwards offset untouched; an empty offset is left out.
	ListPokemon(ctx context.Context, offset string, limit int) (*Page, error)
	GetPokemon(ctx context.Context, idOrName string) (*Pokemon, error)
	// GetPokemonByURL follows a Reference.URL returned by the other calls.
	GetPokemonByURL(ctx context.Context, url string) (*Pokemon, error)
}
