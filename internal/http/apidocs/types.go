package apidocs

// Response models referenced by the swag annotations on the handlers.
// They document the wire shape only; handlers encode the app DTOs.

// HealthResponse is the shape of /health success.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

type TypeItem struct {
	Name string `json:"name" example:"normal"`
	ID   string `json:"id" example:"1"`
}

type TypeListResponse struct {
	Count   int        `json:"count" example:"18"`
	Results []TypeItem `json:"results"`
}

type Sprites struct {
	FrontDefault string `json:"front_default" example:"https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/317.png"`
}

// PokemonSummary is one element of a paged list.
type PokemonSummary struct {
	ID      int                      `json:"id" example:"317"`
	Name    string                   `json:"name" example:"swalot"`
	Stats   []map[string]interface{} `json:"stats"`
	Types   []map[string]interface{} `json:"types"`
	Sprites Sprites                  `json:"sprites"`
}

type PokemonPageResponse struct {
	Count   int              `json:"count" example:"102"`
	Results []PokemonSummary `json:"results"`
}

// PokemonDetail is the single lookup response.
type PokemonDetail struct {
	ID        int                      `json:"id" example:"317"`
	Name      string                   `json:"name" example:"swalot"`
	Stats     []map[string]interface{} `json:"stats"`
	Types     []map[string]interface{} `json:"types"`
	Abilities []map[string]interface{} `json:"abilities"`
	Moves     []map[string]interface{} `json:"moves"`
	Weight    int                      `json:"weight" example:"800"`
	Sprites   Sprites                  `json:"sprites"`
}
