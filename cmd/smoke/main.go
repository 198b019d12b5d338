package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
)

type smokeClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func newSmokeClient(baseURL, apiKey string) *smokeClient {
	return &smokeClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the persona service")
	apiKey := flag.String("key", os.Getenv("PERSONA_API_KEY"), "Shared API key (defaults to PERSONA_API_KEY)")
	testType := flag.String("test", "all", "Test type: all, health, random, generate, expand, custom")
	basePersona := flag.String("persona", "", "Base persona description (for custom test)")
	flag.Parse()

	sc := newSmokeClient(*baseURL, *apiKey)

	printHeader("Persona Service - Smoke Suite")
	fmt.Printf("%sBase URL: %s%s\n\n", colorCyan, *baseURL, colorReset)

	switch *testType {
	case "all":
		sc.runAll()
	case "health":
		sc.testHealth()
	case "random":
		sc.testRandomPersona()
	case "generate":
		sc.testGenerate()
	case "expand":
		sc.testExpand()
	case "custom":
		if *basePersona == "" {
			printError("A base persona is required for the custom test. Use -persona")
			os.Exit(1)
		}
		sc.testCustomGenerate(*basePersona)
	default:
		printError(fmt.Sprintf("Unknown test type: %s", *testType))
		fmt.Println("\nAvailable tests: all, health, random, generate, expand, custom")
		os.Exit(1)
	}
}

func (sc *smokeClient) runAll() {
	tests := []struct {
		name string
		fn   func() bool
	}{
		{"Health Check", sc.testHealth},
		{"Random Persona", sc.testRandomPersona},
		{"Generate", sc.testGenerate},
		{"Expand", sc.testExpand},
	}

	passed := 0
	failed := 0

	for _, test := range tests {
		if test.fn() {
			passed++
		} else {
			failed++
		}
		fmt.Println()
	}

	printHeader("Smoke Summary")
	fmt.Printf("%sPassed: %d%s\n", colorGreen, passed, colorReset)
	fmt.Printf("%sFailed: %d%s\n", colorRed, failed, colorReset)
	fmt.Printf("Total: %d\n", passed+failed)

	if failed > 0 {
		os.Exit(1)
	}
}

func (sc *smokeClient) get(path string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, sc.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-API-Key", sc.apiKey)
	return sc.client.Do(req)
}

func (sc *smokeClient) post(path string, body any) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest(http.MethodPost, sc.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", sc.apiKey)
	return sc.client.Do(req)
}

func (sc *smokeClient) testHealth() bool {
	printTestHeader("Testing Health Endpoint")

	resp, err := sc.client.Get(sc.baseURL + "/health")
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return false
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", resp.StatusCode))
		return false
	}
	if string(body) != "OK" {
		printError(fmt.Sprintf("Expected body 'OK', got '%s'", string(body)))
		return false
	}

	printSuccess("Health check passed")
	return true
}

func (sc *smokeClient) testRandomPersona() bool {
	printTestHeader("Testing Random Persona Endpoint")

	resp, err := sc.get("/random-persona")
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return false
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", resp.StatusCode))
		fmt.Printf("Response: %s\n", string(body))
		return false
	}

	var seed struct {
		Name        string `json:"name"`
		BasePersona string `json:"base_persona"`
	}
	if err := json.Unmarshal(body, &seed); err != nil {
		printError(fmt.Sprintf("Invalid JSON response: %v", err))
		return false
	}
	if seed.Name == "" || seed.BasePersona == "" {
		printError("Expected non-empty name and base_persona")
		return false
	}

	printSuccess(fmt.Sprintf("Sampled seed: %s", seed.Name))
	printJSON(body)
	return true
}

func (sc *smokeClient) testGenerate() bool {
	return sc.testCustomGenerate("A 28-year-old software engineer who loves rock climbing")
}

func (sc *smokeClient) testCustomGenerate(basePersona string) bool {
	printTestHeader("Testing Generate Endpoint")
	fmt.Printf("%sBase Persona:%s %s\n\n", colorCyan, colorReset, basePersona)

	resp, err := sc.post("/generate", map[string]string{"base_persona": basePersona})
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return false
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	return checkPersonaResult(resp.StatusCode, body)
}

func (sc *smokeClient) testExpand() bool {
	printTestHeader("Testing Expand Endpoint")

	resp, err := sc.post("/expand-persona", map[string]string{
		"name":  "Sarah Jane Wilson",
		"title": "Freelance Graphic Designer",
	})
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return false
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	return checkPersonaResult(resp.StatusCode, body)
}

func checkPersonaResult(status int, body []byte) bool {
	if status != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", status))
		fmt.Printf("Response: %s\n", string(body))
		return false
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		printError(fmt.Sprintf("Invalid JSON response: %v", err))
		return false
	}

	required := []string{
		"demographics", "goals", "frustrations", "behaviors",
		"motivations", "technological_proficiency", "preferred_channels",
	}
	for _, field := range required {
		if _, ok := result[field]; !ok {
			printError(fmt.Sprintf("Missing required field: %s", field))
			return false
		}
	}

	printSuccess(fmt.Sprintf("Persona generated (source: %v)", result["source"]))
	printJSON(body)
	return true
}

func printHeader(text string) {
	fmt.Printf("\n%s%s%s\n", colorBlue, strings.Repeat("=", len(text)+4), colorReset)
	fmt.Printf("%s= %s =%s\n", colorBlue, text, colorReset)
	fmt.Printf("%s%s%s\n\n", colorBlue, strings.Repeat("=", len(text)+4), colorReset)
}

func printTestHeader(text string) {
	fmt.Printf("%s[TEST] %s%s\n", colorCyan, text, colorReset)
	fmt.Println(strings.Repeat("-", 80))
}

func printSuccess(text string) {
	fmt.Printf("%s✓ %s%s\n", colorGreen, text, colorReset)
}

func printError(text string) {
	fmt.Printf("%s✗ %s%s\n", colorRed, text, colorReset)
}

func printJSON(data []byte) {
	var prettyJSON bytes.Buffer
	if err := json.Indent(&prettyJSON, data, "", "  "); err == nil {
		fmt.Printf("\n%sResponse:%s\n%s\n", colorYellow, colorReset, prettyJSON.String())
	}
}
