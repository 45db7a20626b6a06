package helpers

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ffarhour/vegagraph/engine"
)

// ============================================================================
// LOADERS — Input tables and chart templates
// ============================================================================
// The engine never touches the filesystem; this package turns the input
// directory and the config directory into engine values. Both directories
// are treated as read-only.
// ============================================================================

// LoadTable reads every eligible result file in inputDir into a Table, in
// directory order. A file is eligible when its name carries the algorithm
// prefix, ends in .json, and does not start with an underscore — generated
// output is underscore-prefixed precisely so it is never re-ingested here.
//
// Returns *engine.NotFoundError if inputDir does not exist and
// *engine.MalformedInputError if an eligible file is not valid JSON.
func LoadTable(inputDir, algorithm string) (engine.Table, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return engine.Table{}, &engine.NotFoundError{Path: inputDir}
		}
		return engine.Table{}, err
	}

	var records []engine.Record
	for _, entry := range entries {
		if entry.IsDir() || !eligible(entry.Name(), algorithm) {
			continue
		}
		path := filepath.Join(inputDir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return engine.Table{}, err
		}
		var rec engine.Record
		if err := json.Unmarshal(data, &rec); err != nil {
			return engine.Table{}, &engine.MalformedInputError{Path: path, Err: err}
		}
		records = append(records, rec)
	}

	return engine.NewTable(records), nil
}

// eligible applies the three-part input file name check.
func eligible(name, algorithm string) bool {
	return strings.HasPrefix(name, algorithm) &&
		!strings.HasPrefix(name, "_") &&
		filepath.Ext(name) == ".json"
}

// LoadTemplate reads the template resource for a chart type from
// configDir/<chartType>_config.json.
//
// Returns *engine.ConfigNotFoundError if the resource does not exist and
// *engine.MalformedInputError if it is not valid JSON.
func LoadTemplate(configDir, chartType string) (engine.Template, error) {
	path := filepath.Join(configDir, chartType+"_config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &engine.ConfigNotFoundError{ChartType: chartType, Path: path}
		}
		return nil, err
	}

	var tpl engine.Template
	if err := json.Unmarshal(data, &tpl); err != nil {
		return nil, &engine.MalformedInputError{Path: path, Err: err}
	}
	return tpl, nil
}
