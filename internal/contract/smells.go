package contract

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/TANJUMAJERIN/testsmellRank/schema"
)

// smellsFileWrapper is the envelope form some scanners emit.
type smellsFileWrapper struct {
	Smells []schema.SmellOccurrence `json:"smells"`
}

// LoadSmells reads smell occurrences from a JSON file. Both a bare array and
// an object with a top-level "smells" key are accepted.
func LoadSmells(path string) ([]schema.SmellOccurrence, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read smells file %q: %w", path, err)
	}
	return ParseSmells(raw)
}

// ParseSmells decodes smell occurrences from raw JSON.
func ParseSmells(raw []byte) ([]schema.SmellOccurrence, error) {
	var smells []schema.SmellOccurrence
	if err := json.Unmarshal(raw, &smells); err == nil {
		return validateSmells(smells)
	}

	var wrapped smellsFileWrapper
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("smells input must be a JSON array or an object with a 'smells' key: %w", err)
	}
	return validateSmells(wrapped.Smells)
}

func validateSmells(smells []schema.SmellOccurrence) ([]schema.SmellOccurrence, error) {
	for i, occ := range smells {
		if occ.SmellType == "" {
			return nil, fmt.Errorf("smell occurrence %d is missing smell_type", i)
		}
		if occ.FilePath == "" {
			return nil, fmt.Errorf("smell occurrence %d is missing file_path", i)
		}
	}
	return smells, nil
}
