package generator

import (
	"fmt"
	"strings"

	"github.com/genpersona/persona-service/internal/models"
)

// ParseStage tags which parsing strategy produced a result.
type ParseStage string

const (
	// ParseStrict means the model honored the delimited format exactly.
	ParseStrict ParseStage = "strict"
	// ParseHeuristic means fields were recovered by prefix matching.
	ParseHeuristic ParseStage = "heuristic"
)

// aliases maps a normalized line prefix to the canonical field it
// fills. Models drift on section names, so common variants are
// accepted in the heuristic stage.
var aliases = map[string]string{
	"name":                      "Name",
	"demographics":              "Demographics",
	"demographic":               "Demographics",
	"goals":                     "Goals",
	"goal":                      "Goals",
	"frustrations":              "Frustrations",
	"frustration":               "Frustrations",
	"pain points":               "Frustrations",
	"behaviors":                 "Behaviors",
	"behaviours":                "Behaviors",
	"behavior":                  "Behaviors",
	"motivations":               "Motivations",
	"motivation":                "Motivations",
	"technological proficiency": "Technological Proficiency",
	"technology proficiency":    "Technological Proficiency",
	"tech proficiency":          "Technological Proficiency",
	"preferred channels":        "Preferred Channels",
	"channels":                  "Preferred Channels",
}

// ParsePersona extracts the canonical persona fields from raw model
// output. It first attempts a strict parse of the requested delimited
// format; when the model deviated, it falls back to tolerant
// line-prefix extraction. Partial extraction is accepted — missing
// fields stay empty strings. It fails only when no field at all can
// be recognized.
func ParsePersona(raw string) (*models.PersonaResult, ParseStage, error) {
	lines := personaLines(raw)

	if result, ok := parseStrict(lines); ok {
		return result, ParseStrict, nil
	}

	result, matched := parseHeuristic(lines)
	if matched == 0 {
		return nil, "", fmt.Errorf("%w: no persona fields found in model response", ErrParse)
	}
	return result, ParseHeuristic, nil
}

// personaLines splits the raw text into trimmed lines, dropping blank
// lines and the leading "Persona:" banner the prompt asks for.
func personaLines(raw string) []string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(lines) == 0 && strings.EqualFold(strings.TrimSuffix(line, ":"), "persona") {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// parseStrict accepts the output only when every non-empty line is an
// exact "Field: value" pair with a canonical field name and all seven
// sections are present. Anything less drops to the heuristic stage.
func parseStrict(lines []string) (*models.PersonaResult, bool) {
	result := &models.PersonaResult{}
	seen := make(map[string]bool)

	for _, line := range lines {
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			return nil, false
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		field, ok := fieldRef(result, key)
		if !ok || value == "" {
			return nil, false
		}
		*field = value
		seen[key] = true
	}

	for _, name := range Fields {
		if !seen[name] {
			return nil, false
		}
	}
	return result, true
}

// parseHeuristic scans line by line for a recognizable field prefix,
// case-insensitive and tolerant of markdown decoration, and folds
// continuation lines into the section opened by the last header.
func parseHeuristic(lines []string) (*models.PersonaResult, int) {
	result := &models.PersonaResult{}
	matched := 0

	var current *string
	for _, line := range lines {
		clean := stripDecoration(line)

		if field, value, ok := splitField(result, clean); ok {
			if *field == "" {
				matched++
			}
			*field = value
			current = field
			continue
		}

		// Continuation of the open section.
		if current != nil && clean != "" {
			if *current == "" {
				*current = clean
			} else {
				*current += " " + clean
			}
		}
	}

	return result, matched
}

// splitField tries to interpret a cleaned line as "<alias><sep><value>"
// and returns the destination field plus the value text.
func splitField(result *models.PersonaResult, line string) (*string, string, bool) {
	lower := strings.ToLower(line)
	for alias, canonical := range aliases {
		if !strings.HasPrefix(lower, alias) {
			continue
		}
		rest := line[len(alias):]
		trimmed := strings.TrimLeft(rest, " \t:-–—*")
		// Require a separator so "Goalkeeper: ..." does not match "goal".
		if rest == trimmed && rest != "" {
			continue
		}
		field, _ := fieldRef(result, canonical)
		return field, strings.TrimSpace(trimmed), true
	}
	return nil, "", false
}

// stripDecoration removes markdown emphasis and list markers so that
// lines like "**Goals:** ..." or "- Goals — ..." expose their prefix.
func stripDecoration(line string) string {
	line = strings.TrimLeft(line, " \t-*#•>")
	line = strings.ReplaceAll(line, "**", "")
	line = strings.ReplaceAll(line, "__", "")
	return strings.TrimSpace(line)
}

// fieldRef maps a canonical field name to its slot in the result.
func fieldRef(result *models.PersonaResult, name string) (*string, bool) {
	switch name {
	case "Name":
		return &result.Name, true
	case "Demographics":
		return &result.Demographics, true
	case "Goals":
		return &result.Goals, true
	case "Frustrations":
		return &result.Frustrations, true
	case "Behaviors":
		return &result.Behaviors, true
	case "Motivations":
		return &result.Motivations, true
	case "Technological Proficiency":
		return &result.TechProficiency, true
	case "Preferred Channels":
		return &result.PreferredChannels, true
	default:
		return nil, false
	}
}
