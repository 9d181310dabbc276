package health

import (
	"net/http"

	"pokeproxy/internal/http/responses"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Check reports process liveness only; the upstream API is not probed.
//
//	@Summary	Liveness probe.
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	apidocs.HealthResponse
//	@Router		/health [get]
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	responses.WriteJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}
