package pokemon

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	apppokemon "pokeproxy/internal/app/pokemon"
	"pokeproxy/internal/http/responses"
	"pokeproxy/internal/logging"
	"pokeproxy/internal/pagination"
)

const (
	listFailurePrefix   = "Error al listar. "
	searchFailurePrefix = "No se encuentra el Pokémon "
)

type Handler struct {
	service apppokemon.Service
	logger  logging.Logger
}

func NewHandler(service apppokemon.Service, logger logging.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger.With("component", "pokemon_http_handler"),
	}
}

// ListTypes GET /api/pokemon/types
//
//	@Summary		Obtiene listado de tipos.
//	@Description	Obtiene listado de tipos.
//	@Tags			GET Pokemon
//	@Produce		json
//	@Success		200	{object}	apidocs.TypeListResponse	"Listado de tipos."
//	@Failure		404	{string}	string						"Error al listar. <detalle>"
//	@Router			/api/pokemon/types [get]
func (h *Handler) ListTypes(w http.ResponseWriter, r *http.Request) {
	dto, err := h.service.ListTypes(r.Context())
	if err != nil {
		h.writeFailure(w, err)
		return
	}

	responses.WriteJSON(w, http.StatusOK, dto)
}

// ListByType GET /api/pokemon/types/{id}
//
//	@Summary		Obtiene una listado de Pokémon filtrado por tipo.
//	@Description	Obtiene una listado de Pokémon. Hasta 20 unidades, indicando el numero a omitir.
//	@Tags			GET Pokemon
//	@Produce		json
//	@Param			id		path		string	true	"Identificador del tipo."
//	@Param			offset	query		integer	false	"Número a omitir en el listado a devolver."
//	@Success		200		{object}	apidocs.PokemonPageResponse	"Listado de Pokémon."
//	@Failure		404		{string}	string						"Error al listar. <detalle>"
//	@Router			/api/pokemon/types/{id} [get]
func (h *Handler) ListByType(w http.ResponseWriter, r *http.Request) {
	input := apppokemon.ListByTypeInput{
		TypeID: chi.URLParam(r, "id"),
		Offset: pagination.ParseOffset(r.URL.Query().Get("offset")),
	}

	dto, err := h.service.ListByType(r.Context(), input)
	if err != nil {
		h.writeFailure(w, err)
		return
	}

	responses.WriteJSON(w, http.StatusOK, dto)
}

// Search GET /api/pokemon/{search}
//
//	@Summary		Obtiene un Pokémon por busqueda.
//	@Description	Obtiene un Pokémon por nombre o número. La búsqueda ignora mayúsculas y espacios al inicio y al final.
//	@Tags			GET Pokemon
//	@Produce		json
//	@Param			search	path		string	true	"Nombre o número del Pokémon."
//	@Success		200		{object}	apidocs.PokemonDetail	"Pokémon encontrado."
//	@Failure		404		{string}	string					"No se encuentra el Pokémon <search>"
//	@Router			/api/pokemon/{search} [get]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	dto, err := h.service.Search(r.Context(), chi.URLParam(r, "search"))
	if err != nil {
		h.writeFailure(w, err)
		return
	}

	responses.WriteJSON(w, http.StatusOK, dto)
}

// List GET /api/pokemon
//
//	@Summary		Obtiene una listado de Pokémon.
//	@Description	Obtiene una listado de Pokémon. Hasta 20 unidades, indicando el numero a omitir.
//	@Tags			GET Pokemon
//	@Produce		json
//	@Param			offset	query		integer	false	"Número a omitir en el listado a devolver."
//	@Success		200		{object}	apidocs.PokemonPageResponse	"Listado de Pokémon."
//	@Failure		404		{string}	string						"Error al listar. <detalle>"
//	@Router			/api/pokemon [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	input := apppokemon.ListInput{
		Offset: r.URL.Query().Get("offset"),
	}

	dto, err := h.service.List(r.Context(), input)
	if err != nil {
		h.writeFailure(w, err)
		return
	}

	responses.WriteJSON(w, http.StatusOK, dto)
}

// writeFailure is the only place service errors become HTTP responses.
// Every failure is a 404 with a plain-text message.
func (h *Handler) writeFailure(w http.ResponseWriter, err error) {
	f, _ := apppokemon.AsFailure(err)

	fields := []any{"error", err}
	if f != nil {
		fields = append(fields, "op", f.Op, "term", f.Term)
	}
	if apppokemon.IsNotFound(err) {
		h.logger.Info("upstream resource not found", fields...)
	} else {
		h.logger.Error("upstream request failed", fields...)
	}

	responses.WriteText(w, http.StatusNotFound, failureMessage(f, err))
}

func failureMessage(f *apppokemon.Failure, err error) string {
	if f != nil && f.Op == apppokemon.OpSearch {
		return searchFailurePrefix + f.Term
	}
	return listFailurePrefix + err.Error()
}
