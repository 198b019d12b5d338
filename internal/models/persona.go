package models

// PersonaSeed is one pre-authored record from the bundled seed file.
// Seeds are loaded once at startup and never mutated.
type PersonaSeed struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// BasePersona renders the seed as a one-line persona description
// suitable for prompting or returning from the random endpoints.
func (s PersonaSeed) BasePersona() string {
	if s.Title == "" {
		return s.Description
	}
	return s.Title + " - " + s.Description
}

// GenerateRequest is the body of POST /generate.
type GenerateRequest struct {
	BasePersona string `json:"base_persona"`
}

// ExpandRequest is the body of POST /expand-persona. Title and
// Description are optional.
type ExpandRequest struct {
	Name        string `json:"name"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// PersonaResult is the structured persona returned to the client.
// The seven canonical fields are always present in the JSON body,
// possibly as empty strings when the model omitted a section.
type PersonaResult struct {
	ID                string `json:"id"`
	Name              string `json:"name,omitempty"`
	Demographics      string `json:"demographics"`
	Goals             string `json:"goals"`
	Frustrations      string `json:"frustrations"`
	Behaviors         string `json:"behaviors"`
	Motivations       string `json:"motivations"`
	TechProficiency   string `json:"technological_proficiency"`
	PreferredChannels string `json:"preferred_channels"`
	Source            string `json:"source"`
}

// SeedPersona is the response of the random endpoints, and also the
// degraded fallback body when expansion of a sampled seed fails.
type SeedPersona struct {
	Name        string `json:"name"`
	BasePersona string `json:"base_persona"`
	Degraded    bool   `json:"degraded,omitempty"`
}
