package pokeapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	domcommon "pokeproxy/internal/domain/common"
	dom "pokeproxy/internal/domain/pokemon"
	"pokeproxy/internal/httpclient"
	"pokeproxy/internal/logging"
)

// Client talks to the public Pokémon data API.
type Client struct {
	http   *httpclient.Client
	logger logging.Logger
}

var _ dom.Source = (*Client)(nil)

// New builds a client rooted at baseURL, which must end with a slash
// ("https://pokeapi.co/api/v2/").
func New(baseURL string, timeout time.Duration, logger logging.Logger) (*Client, error) {
	httpCli, err := httpclient.New(baseURL, timeout, logger.With("component", "pokeapi_http"))
	if err != nil {
		return nil, err
	}

	return &Client{
		http:   httpCli,
		logger: logger.With("component", "pokeapi_client"),
	}, nil
}

func (c *Client) ListTypes(ctx context.Context) (*dom.TypeList, error) {
	var res namedResourceList
	if err := c.http.GetJSON(ctx, "type", nil, &res); err != nil {
		return nil, wrap("type", "", err)
	}
	list, err := toDomainTypeList(&res)
	if err != nil {
		return nil, wrap("type", "", err)
	}
	return list, nil
}

func (c *Client) GetType(ctx context.Context, id string) (*dom.Type, error) {
	var res typeResource
	if err := c.http.GetJSON(ctx, "type/"+url.PathEscape(id), nil, &res); err != nil {
		return nil, wrap("type", id, err)
	}
	tp, err := toDomainType(&res)
	if err != nil {
		return nil, wrap("type", id, err)
	}
	return tp, nil
}

func (c *Client) ListPokemon(ctx context.Context, offset string, limit int) (*dom.Page, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	if offset != "" {
		q.Set("offset", offset)
	}

	var res namedResourceList
	if err := c.http.GetJSON(ctx, "pokemon", q, &res); err != nil {
		return nil, wrap("pokemon list", "", err)
	}
	page, err := toDomainPage(&res)
	if err != nil {
		return nil, wrap("pokemon list", "", err)
	}
	return page, nil
}

func (c *Client) GetPokemon(ctx context.Context, idOrName string) (*dom.Pokemon, error) {
	var res pokemonResource
	if err := c.http.GetJSON(ctx, "pokemon/"+url.PathEscape(idOrName), nil, &res); err != nil {
		return nil, wrap("pokemon", idOrName, err)
	}
	return toDomainPokemon(&res), nil
}

func (c *Client) GetPokemonByURL(ctx context.Context, detailURL string) (*dom.Pokemon, error) {
	var res pokemonResource
	if err := c.http.GetJSON(ctx, detailURL, nil, &res); err != nil {
		return nil, wrap("pokemon", detailURL, err)
	}
	return toDomainPokemon(&res), nil
}

// wrap tags upstream 404s as NotFoundError while keeping the HTTP error text.
func wrap(entity, key string, err error) error {
	var httpErr *httpclient.HTTPError
	if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %w", domcommon.NewNotFound(entity, key), err)
	}
	if key == "" {
		return fmt.Errorf("get %s: %w", entity, err)
	}
	return fmt.Errorf("get %s %s: %w", entity, key, err)
}
