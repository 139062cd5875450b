// Package planfile loads and saves plan documents. JSON is the
// canonical format; YAML files are bridged into the same validation
// path, so a plan read from disk carries the same guarantees as one
// built in memory.
package planfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v3"

	"github.com/clarityhq/clarity/pkg/planning"
)

// Load reads and validates the plan file at path. The format is chosen
// by extension: .json, .yaml, or .yml.
func Load(path string) (*planning.Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrPlanNotFound, path)
		}

		return nil, fmt.Errorf("%w %s: %w", ErrPlanFileRead, path, err)
	}

	switch ext(path) {
	case ".json":
		return planning.FromJSON(data)
	case ".yaml", ".yml":
		return fromYAML(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Save atomically writes the plan to path in the format chosen by
// extension.
func Save(path string, plan *planning.Plan) error {
	var (
		data []byte
		err  error
	)

	switch ext(path) {
	case ".json":
		data, err = plan.ToJSON()
		if err == nil {
			data = append(data, '\n')
		}
	case ".yaml", ".yml":
		data, err = toYAML(plan)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	if err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}

	if writeErr := atomic.WriteFile(path, bytes.NewReader(data)); writeErr != nil {
		return fmt.Errorf("write plan file %s: %w", path, writeErr)
	}

	return nil
}

func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// fromYAML parses YAML into a generic document and funnels it through
// the JSON validation path, so YAML plans are re-validated exactly like
// JSON ones.
func fromYAML(data []byte) (*planning.Plan, error) {
	var doc map[string]any

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPlanFileParse, err)
	}

	jsonData, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPlanFileParse, err)
	}

	return planning.FromJSON(jsonData)
}

// toYAML writes the canonical JSON shape as YAML.
func toYAML(plan *planning.Plan) ([]byte, error) {
	jsonData, err := json.Marshal(plan)
	if err != nil {
		return nil, err
	}

	var doc map[string]any

	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return nil, err
	}

	return yaml.Marshal(doc)
}
