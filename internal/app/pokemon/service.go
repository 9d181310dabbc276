package pokemon

import (
	"context"
	"strings"

	dom "pokeproxy/internal/domain/pokemon"
	"pokeproxy/internal/fanout"
	"pokeproxy/internal/logging"
	"pokeproxy/internal/metrics"
	"pokeproxy/internal/pagination"
)

// PageSize bounds every list response.
const PageSize = 20

type Service interface {
	ListTypes(ctx context.Context) (*TypeListDto, error)
	ListByType(ctx context.Context, input ListByTypeInput) (*PokemonPageDto, error)
	Search(ctx context.Context, term string) (*PokemonDetailDto, error)
	List(ctx context.Context, input ListInput) (*PokemonPageDto, error)
}

type service struct {
	source dom.Source
	events Events
	logger logging.Logger
}

func NewService(source dom.Source, events Events, logger logging.Logger) Service {
	return &service{
		source: source,
		events: events,
		logger: logger.With("component", "pokemon_service"),
	}
}

func (s *service) ListTypes(ctx context.Context) (*TypeListDto, error) {
	list, err := s.source.ListTypes(ctx)
	if err != nil {
		return nil, fail(OpListTypes, "", err)
	}

	results, err := toTypeDtos(list.Results)
	if err != nil {
		return nil, fail(OpListTypes, "", err)
	}

	return &TypeListDto{
		Count:   list.Count,
		Results: results,
	}, nil
}

// ListByType pages through the members of one type locally; count is the
// size of the whole member list, not of the returned window.
func (s *service) ListByType(ctx context.Context, input ListByTypeInput) (*PokemonPageDto, error) {
	tp, err := s.source.GetType(ctx, input.TypeID)
	if err != nil {
		return nil, fail(OpListByType, input.TypeID, err)
	}

	window := pagination.Slice(tp.Members, PageSize, input.Offset)

	results, err := s.details(ctx, window)
	if err != nil {
		return nil, fail(OpListByType, input.TypeID, err)
	}

	return &PokemonPageDto{
		Count:   len(tp.Members),
		Results: results,
	}, nil
}

func (s *service) Search(ctx context.Context, term string) (*PokemonDetailDto, error) {
	key := NormalizeSearch(term)

	p, err := s.source.GetPokemon(ctx, key)
	if err != nil {
		return nil, fail(OpSearch, key, err)
	}

	dto, err := toDetailDto(p)
	if err != nil {
		return nil, fail(OpSearch, key, err)
	}

	if err := s.events.PokemonViewed(ctx, dto, key); err != nil {
		s.logger.Error("failed to publish PokemonViewed event", "error", err, "id", dto.ID)
	}

	return dto, nil
}

// List relies on the upstream for paging; count is the upstream total.
func (s *service) List(ctx context.Context, input ListInput) (*PokemonPageDto, error) {
	page, err := s.source.ListPokemon(ctx, input.Offset, PageSize)
	if err != nil {
		return nil, fail(OpList, "", err)
	}

	results, err := s.details(ctx, page.Results)
	if err != nil {
		return nil, fail(OpList, "", err)
	}

	return &PokemonPageDto{
		Count:   page.Count,
		Results: results,
	}, nil
}

// details fetches every reference concurrently and projects the records
// in reference order.
func (s *service) details(ctx context.Context, refs []dom.Reference) ([]PokemonSummaryDto, error) {
	metrics.FanoutSize.Observe(float64(len(refs)))

	records, err := fanout.Map(ctx, refs, func(ctx context.Context, ref dom.Reference) (*dom.Pokemon, error) {
		return s.source.GetPokemonByURL(ctx, ref.URL)
	})
	if err != nil {
		return nil, err
	}

	return toSummaryDtos(records)
}

// NormalizeSearch trims surrounding whitespace and lowercases a search term.
func NormalizeSearch(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}
