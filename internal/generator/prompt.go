package generator

import (
	"fmt"
	"strings"
)

// Fields lists the seven canonical persona sections, in the order the
// model is asked to emit them.
var Fields = []string{
	"Demographics",
	"Goals",
	"Frustrations",
	"Behaviors",
	"Motivations",
	"Technological Proficiency",
	"Preferred Channels",
}

const promptFormat = `You are a helpful UX researcher who creates detailed user personas.

%s

Your response MUST start with the line "Persona:" followed by exactly one line per field below, in this order, in the format "Field: value" with no other text or markdown:

Name: The persona's name.
Demographics: Age, gender, occupation, education, and location.
Goals: What the persona aims to achieve.
Frustrations: Pain points and challenges faced by the persona.
Behaviors: Typical actions and habits.
Motivations: What drives the persona to achieve their goals.
Technological Proficiency: The persona's comfort level with technology.
Preferred Channels: How the persona prefers to communicate and receive information.

Ensure the persona is realistic and can be used for UX design purposes.`

// GeneratePrompt builds the instruction for creating a persona from a
// free-text base description. Identical input yields identical text.
func GeneratePrompt(basePersona string) string {
	intro := fmt.Sprintf("Create a detailed UX persona based on the following information:\n\n%s",
		strings.TrimSpace(basePersona))
	return fmt.Sprintf(promptFormat, intro)
}

// ExpandPrompt builds the instruction for expanding a named persona.
// The title and description clauses are included only when present, so
// the prompt never carries empty-field artifacts.
func ExpandPrompt(name, title, description string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a detailed UX persona for a person named %s.", strings.TrimSpace(name))
	if t := strings.TrimSpace(title); t != "" {
		fmt.Fprintf(&b, " Their title is: %s.", t)
	}
	if d := strings.TrimSpace(description); d != "" {
		fmt.Fprintf(&b, " Additional background: %s", d)
	}
	return fmt.Sprintf(promptFormat, b.String())
}
