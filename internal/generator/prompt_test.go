package generator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/genpersona/persona-service/internal/generator"
)

func TestGeneratePrompt(t *testing.T) {
	prompt := generator.GeneratePrompt("  A 28-year-old software engineer who loves rock climbing  ")

	assert.Contains(t, prompt, "A 28-year-old software engineer who loves rock climbing")
	assert.NotContains(t, prompt, "  A 28-year-old", "base description should be trimmed")

	for _, field := range generator.Fields {
		assert.Contains(t, prompt, field+":", "prompt must request the %s section", field)
	}
}

func TestGeneratePromptDeterministic(t *testing.T) {
	a := generator.GeneratePrompt("a rural veterinarian")
	b := generator.GeneratePrompt("a rural veterinarian")
	assert.Equal(t, a, b)
}

func TestExpandPrompt(t *testing.T) {
	t.Run("name only", func(t *testing.T) {
		prompt := generator.ExpandPrompt("Sarah Jane Wilson", "", "")

		assert.Contains(t, prompt, "Sarah Jane Wilson")
		assert.NotContains(t, prompt, "Their title is", "no title clause when title is absent")
		assert.NotContains(t, prompt, "Additional background", "no description clause when description is absent")
	})

	t.Run("all fields", func(t *testing.T) {
		prompt := generator.ExpandPrompt("Marcus Chen", "Night-Shift Nurse", "A 29-year-old RN in Chicago.")

		assert.Contains(t, prompt, "Marcus Chen")
		assert.Contains(t, prompt, "Their title is: Night-Shift Nurse.")
		assert.Contains(t, prompt, "Additional background: A 29-year-old RN in Chicago.")
	})

	t.Run("whitespace-only optionals are omitted", func(t *testing.T) {
		prompt := generator.ExpandPrompt("Amara Okafor", "   ", "\t")

		assert.NotContains(t, prompt, "Their title is")
		assert.NotContains(t, prompt, "Additional background")
	})
}

func TestExpandPromptRequestsDelimitedFormat(t *testing.T) {
	prompt := generator.ExpandPrompt("Tom Gallagher", "Truck Driver", "")
	assert.True(t, strings.Contains(prompt, `start with the line "Persona:"`),
		"prompt should pin the response format")
}
