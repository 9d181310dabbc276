package pokemon

import "context"

type Events interface {
	PokemonViewed(ctx context.Context, p *PokemonDetailDto, search string) error
}

// NoopEvents No-op implementation, used in tests and when Kafka is disabled.
type NoopEvents struct{}

func (NoopEvents) PokemonViewed(ctx context.Context, p *PokemonDetailDto, search string) error {
	return nil
}
