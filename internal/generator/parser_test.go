package generator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genpersona/persona-service/internal/generator"
)

const strictResponse = `Persona:
Name: Sarah Jane Wilson
Demographics: 34-year-old female graphic designer in Portland
Goals: Grow her freelance client base
Frustrations: Administrative overhead eats her evenings
Behaviors: Works in late-night bursts
Motivations: Creative independence
Technological Proficiency: High, lives in design tooling
Preferred Channels: Email and Slack`

func TestParsePersonaStrict(t *testing.T) {
	result, stage, err := generator.ParsePersona(strictResponse)
	require.NoError(t, err)

	assert.Equal(t, generator.ParseStrict, stage)
	assert.Equal(t, "Sarah Jane Wilson", result.Name)
	assert.Equal(t, "34-year-old female graphic designer in Portland", result.Demographics)
	assert.Equal(t, "Grow her freelance client base", result.Goals)
	assert.Equal(t, "Administrative overhead eats her evenings", result.Frustrations)
	assert.Equal(t, "Works in late-night bursts", result.Behaviors)
	assert.Equal(t, "Creative independence", result.Motivations)
	assert.Equal(t, "High, lives in design tooling", result.TechProficiency)
	assert.Equal(t, "Email and Slack", result.PreferredChannels)
}

func TestParsePersonaHeuristicMarkdown(t *testing.T) {
	raw := `Persona:
Here is the persona you asked for.

**Name:** Marcus Chen
- **Demographics** — 29-year-old nurse in Chicago
**Goals:** Chart patients without fighting the software
**Pain Points:** Training-heavy tools
**Behaviours:** Documents on his phone between rounds
**Motivations:** Patient safety
**Tech Proficiency:** Moderate
**Channels:** Text messages`

	result, stage, err := generator.ParsePersona(raw)
	require.NoError(t, err)

	assert.Equal(t, generator.ParseHeuristic, stage)
	assert.Equal(t, "Marcus Chen", result.Name)
	assert.Equal(t, "29-year-old nurse in Chicago", result.Demographics)
	assert.Equal(t, "Chart patients without fighting the software", result.Goals)
	assert.Equal(t, "Training-heavy tools", result.Frustrations)
	assert.Equal(t, "Documents on his phone between rounds", result.Behaviors)
	assert.Equal(t, "Patient safety", result.Motivations)
	assert.Equal(t, "Moderate", result.TechProficiency)
	assert.Equal(t, "Text messages", result.PreferredChannels)
}

func TestParsePersonaPartialExtraction(t *testing.T) {
	raw := `goals - climb harder routes
Motivations: time outdoors`

	result, stage, err := generator.ParsePersona(raw)
	require.NoError(t, err)

	assert.Equal(t, generator.ParseHeuristic, stage)
	assert.Equal(t, "climb harder routes", result.Goals)
	assert.Equal(t, "time outdoors", result.Motivations)

	// Missing sections stay empty strings, never error.
	assert.Empty(t, result.Demographics)
	assert.Empty(t, result.Frustrations)
	assert.Empty(t, result.PreferredChannels)
}

func TestParsePersonaMultilineSections(t *testing.T) {
	raw := `Demographics:
- Age: 28
- Location: Portland
Goals: Ship a side project`

	result, stage, err := generator.ParsePersona(raw)
	require.NoError(t, err)

	assert.Equal(t, generator.ParseHeuristic, stage)
	assert.Equal(t, "Age: 28 Location: Portland", result.Demographics)
	assert.Equal(t, "Ship a side project", result.Goals)
}

func TestParsePersonaNoFields(t *testing.T) {
	_, _, err := generator.ParsePersona("The weather is lovely today.\nNothing useful here.")
	require.Error(t, err)
	assert.True(t, errors.Is(err, generator.ErrParse))
}

func TestParsePersonaPrefixCollision(t *testing.T) {
	// "Goalkeeper" must not be mistaken for the Goals field.
	raw := `Goalkeeper tendencies are irrelevant
Goals: win the league`

	result, _, err := generator.ParsePersona(raw)
	require.NoError(t, err)
	assert.Equal(t, "win the league", result.Goals)
}

func TestParsePersonaIncompleteStrictFallsBack(t *testing.T) {
	// Well-formed lines but one canonical section missing: not strict.
	raw := `Name: Amara Okafor
Demographics: 41-year-old bakery owner
Goals: Automate her bookkeeping
Frustrations: Context switching
Behaviors: Checks email twice a day
Motivations: Time with family
Technological Proficiency: Low`

	result, stage, err := generator.ParsePersona(raw)
	require.NoError(t, err)

	assert.Equal(t, generator.ParseHeuristic, stage)
	assert.Equal(t, "Amara Okafor", result.Name)
	assert.Empty(t, result.PreferredChannels)
}
