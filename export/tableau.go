// Package export converts benchmark result directories into external
// visualization formats.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ffarhour/vegagraph/engine"
)

// Tableau writes the two-line column format Tableau ingests: the first
// line holds the quoted source file names, the second the matching m_teps
// values, both space-separated. Columns follow directory order.
//
// Generated output files (underscore-prefixed) are skipped, as are files
// without the .json extension. Every surviving file must carry a numeric
// m_teps field.
func Tableau(w io.Writer, inputDir string) error {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &engine.NotFoundError{Path: inputDir}
		}
		return err
	}

	var names, values []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ".json" || strings.HasPrefix(name, "_") {
			continue
		}

		path := filepath.Join(inputDir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var rec engine.Record
		if err := json.Unmarshal(data, &rec); err != nil {
			return &engine.MalformedInputError{Path: path, Err: err}
		}

		mteps, ok := rec["m_teps"].(float64)
		if !ok {
			return fmt.Errorf("%s: m_teps is missing or not numeric", path)
		}

		names = append(names, "'"+name+"'")
		values = append(values, strconv.FormatFloat(mteps, 'g', -1, 64))
	}

	if len(names) == 0 {
		return fmt.Errorf("no result files in %s", inputDir)
	}

	_, err = fmt.Fprintf(w, "%s\n%s\n", strings.Join(names, " "), strings.Join(values, " "))
	return err
}
