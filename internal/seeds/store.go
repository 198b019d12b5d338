package seeds

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/genpersona/persona-service/internal/models"
)

// Store holds the pre-authored persona seeds loaded from the bundled
// seed file. It is read-only after Load and safe for concurrent use.
type Store struct {
	records []models.PersonaSeed
}

// Load reads the seed file once at startup. Each line holds one record
// as "name|title|description". Lines with fewer than three non-empty
// fields are skipped; an unreadable file or a file with zero usable
// records is an error, since the service cannot serve fallbacks
// without seeds.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	var records []models.PersonaSeed

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "|", 3)
		if len(parts) != 3 {
			continue
		}

		seed := models.PersonaSeed{
			Name:        strings.TrimSpace(parts[0]),
			Title:       strings.TrimSpace(parts[1]),
			Description: strings.TrimSpace(parts[2]),
		}
		if seed.Name == "" || seed.Title == "" || seed.Description == "" {
			continue
		}

		records = append(records, seed)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("seed file %s contains no usable records", path)
	}

	return &Store{records: records}, nil
}

// Sample returns one uniformly random seed record.
func (s *Store) Sample() models.PersonaSeed {
	return s.records[rand.Intn(len(s.records))]
}

// Count returns the number of loaded seed records.
func (s *Store) Count() int {
	return len(s.records)
}
