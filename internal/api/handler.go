package api

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/genpersona/persona-service/internal/generator"
	"github.com/genpersona/persona-service/internal/models"
	"github.com/genpersona/persona-service/internal/seeds"
)

// Handler exposes the persona endpoints. It holds no per-request
// state: the seed store is read-only and the model client is safe for
// concurrent use, so handlers may run concurrently across requests.
type Handler struct {
	store *seeds.Store
	model generator.ModelClient
}

func NewHandler(store *seeds.Store, model generator.ModelClient) *Handler {
	return &Handler{
		store: store,
		model: model,
	}
}

// Register wires the routes. Everything but /health sits behind the
// shared-secret check.
func (h *Handler) Register(router *gin.Engine, apiKey string) {
	router.GET("/health", h.Health)

	authed := router.Group("/", APIKeyAuth(apiKey))
	authed.POST("/generate", h.Generate)
	authed.GET("/random-persona", h.RandomPersona)
	authed.GET("/random-name", h.RandomName)
	authed.GET("/random-ux-persona", h.RandomUXPersona)
	authed.POST("/expand-persona", h.ExpandPersona)
}

// Generate creates a persona from a free-text base description. There
// is no seed fallback here: no stored record matches an arbitrary
// description, so provider failures surface as errors.
func (h *Handler) Generate(c *gin.Context) {
	var req models.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.sendError(c, fmt.Errorf("%w: malformed request body", generator.ErrValidation))
		return
	}
	if strings.TrimSpace(req.BasePersona) == "" {
		h.sendError(c, fmt.Errorf("%w: base_persona must not be empty", generator.ErrValidation))
		return
	}

	prompt := generator.GeneratePrompt(req.BasePersona)
	result, err := h.complete(c, prompt)
	if err != nil {
		h.sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ExpandPersona builds a full persona from a name plus optional title
// and description.
func (h *Handler) ExpandPersona(c *gin.Context) {
	var req models.ExpandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.sendError(c, fmt.Errorf("%w: malformed request body", generator.ErrValidation))
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		h.sendError(c, fmt.Errorf("%w: name must not be empty", generator.ErrValidation))
		return
	}

	prompt := generator.ExpandPrompt(req.Name, req.Title, req.Description)
	result, err := h.complete(c, prompt)
	if err != nil {
		h.sendError(c, err)
		return
	}
	if result.Name == "" {
		result.Name = strings.TrimSpace(req.Name)
	}

	c.JSON(http.StatusOK, result)
}

// RandomPersona returns one sampled seed record verbatim. No model
// call is made.
func (h *Handler) RandomPersona(c *gin.Context) {
	seed := h.store.Sample()
	c.JSON(http.StatusOK, models.SeedPersona{
		Name:        seed.Name,
		BasePersona: seed.BasePersona(),
	})
}

// RandomName is an alias shape of RandomPersona kept as its own route
// for callers that only want a starting point.
func (h *Handler) RandomName(c *gin.Context) {
	h.RandomPersona(c)
}

// RandomUXPersona samples a seed and expands it through the model.
// When the provider or the parse fails, the raw seed is returned as
// degraded output instead of an error: the sampled record is still a
// usable persona, just not a full one.
func (h *Handler) RandomUXPersona(c *gin.Context) {
	seed := h.store.Sample()

	prompt := generator.ExpandPrompt(seed.Name, seed.Title, seed.Description)
	result, err := h.complete(c, prompt)
	if err != nil {
		log.Printf("random-ux-persona: falling back to seed %q: %v request_id=%s",
			seed.Name, err, RequestID(c))
		c.JSON(http.StatusOK, models.SeedPersona{
			Name:        seed.Name,
			BasePersona: seed.BasePersona(),
			Degraded:    true,
		})
		return
	}
	if result.Name == "" {
		result.Name = seed.Name
	}

	c.JSON(http.StatusOK, result)
}

// Health reports process liveness only; no dependencies are checked.
func (h *Handler) Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// complete runs the prompt through the model client and parses the
// response into a fresh PersonaResult.
func (h *Handler) complete(c *gin.Context, prompt string) (*models.PersonaResult, error) {
	raw, err := h.model.Complete(c.Request.Context(), prompt)
	if err != nil {
		return nil, err
	}

	result, stage, err := generator.ParsePersona(raw)
	if err != nil {
		return nil, err
	}

	result.ID = uuid.New().String()
	result.Source = string(stage)
	return result, nil
}

// sendError maps the error to its HTTP status and returns a JSON body
// without surfacing internal detail beyond the error message.
func (h *Handler) sendError(c *gin.Context, err error) {
	status := generator.MapHTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Printf("ERROR: %v request_id=%s", err, RequestID(c))
	}
	c.JSON(status, gin.H{
		"error":      err.Error(),
		"request_id": RequestID(c),
	})
}
