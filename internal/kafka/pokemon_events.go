package kafka

import (
	"context"
	"fmt"

	apppokemon "pokeproxy/internal/app/pokemon"
	"pokeproxy/internal/config"
	"pokeproxy/internal/logging"
)

const PokemonViewedType = "PokemonViewed"

// PokemonViewed is the payload published after a successful lookup.
type PokemonViewed struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Search string `json:"search"`
}

type pokemonEvents struct {
	bus         Bus
	topicPrefix string
	logger      logging.Logger
}

func NewPokemonEvents(bus Bus, cfg config.KafkaConfig, logger logging.Logger) apppokemon.Events {
	return &pokemonEvents{
		bus:         bus,
		topicPrefix: cfg.TopicPrefix,
		logger:      logger.With("component", "pokemon_events"),
	}
}

func lookupsTopic(prefix string) string {
	return prefix + "pokemon-lookups"
}

func (e *pokemonEvents) PokemonViewed(ctx context.Context, p *apppokemon.PokemonDetailDto, search string) error {
	payload := PokemonViewed{ID: p.ID, Name: p.Name, Search: search}

	if err := e.bus.Publish(ctx, lookupsTopic(e.topicPrefix), PokemonViewedType, payload); err != nil {
		return fmt.Errorf("publish PokemonViewed: %w", err)
	}
	return nil
}
