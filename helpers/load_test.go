package helpers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ffarhour/vegagraph/engine"
)

// ============================================================================
// LOADER TESTS
// ============================================================================

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func resultsDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "BFS_road.json", `{"algorithm":"BFS","dataset":"road","m_teps":12.4}`)
	writeFile(t, dir, "BFS_soc.json", `{"algorithm":"BFS","dataset":"soc","m_teps":3.1}`)
	writeFile(t, dir, "PR_road.json", `{"algorithm":"PR","dataset":"road","m_teps":7.7}`)
	writeFile(t, dir, "_gunrock_BFS_0.json", `{"generated":"output"}`)
	writeFile(t, dir, "BFS_notes.txt", `not a result`)
	return dir
}

func TestLoadTableEligibility(t *testing.T) {
	dir := resultsDir(t)

	table, err := LoadTable(dir, "BFS")

	require.NoError(t, err)
	// Prefix match, .json extension, no leading underscore — so exactly the
	// two BFS results: no PR file, no generated output, no txt file.
	require.Equal(t, 2, table.Len())
	assert.Equal(t, "road", table.At(0)["dataset"])
	assert.Equal(t, "soc", table.At(1)["dataset"])
}

func TestLoadTableMissingDir(t *testing.T) {
	_, err := LoadTable(filepath.Join(t.TempDir(), "nope"), "BFS")

	var notFound *engine.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestLoadTableMalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "BFS_bad.json", `{"algorithm": `)

	_, err := LoadTable(dir, "BFS")

	var malformed *engine.MalformedInputError
	require.ErrorAs(t, err, &malformed)
	assert.Contains(t, malformed.Path, "BFS_bad.json")
}

func TestLoadTableEmptyMatch(t *testing.T) {
	table, err := LoadTable(resultsDir(t), "SSSP")

	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
}

// ============================================================================
// TEMPLATE TESTS
// ============================================================================

const barConfig = `{"mark":"bar","encoding":{"x":{},"y":{}}}`

func TestLoadTemplate(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bar_config.json", barConfig)

	tpl, err := LoadTemplate(dir, "bar")

	require.NoError(t, err)
	assert.Equal(t, "bar", tpl["mark"])
}

func TestLoadTemplateMissingChartType(t *testing.T) {
	_, err := LoadTemplate(t.TempDir(), "pie")

	var cfgErr *engine.ConfigNotFoundError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "pie", cfgErr.ChartType)
}

func TestLoadTemplateMalformed(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bar_config.json", `{"mark":`)

	_, err := LoadTemplate(dir, "bar")

	var malformed *engine.MalformedInputError
	require.ErrorAs(t, err, &malformed)
}

func TestTemplateStoreCaches(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bar_config.json", barConfig)

	store, err := NewTemplateStore(dir)
	require.NoError(t, err)

	first, err := store.Load("bar")
	require.NoError(t, err)

	// Remove the file; the cached template must still serve.
	require.NoError(t, os.Remove(filepath.Join(dir, "bar_config.json")))

	second, err := store.Load("bar")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	_, err = store.Load("scatter")
	var cfgErr *engine.ConfigNotFoundError
	assert.ErrorAs(t, err, &cfgErr)
}

// ============================================================================
// MANIFEST TESTS
// ============================================================================

const sampleManifest = `
input_dir: results/
output_dir: charts/
config_dir: config_files/
charts:
  - type: bar
    engine: gunrock
    algorithm: BFS
    x: dataset
    y: m_teps
    x_label: Datasets
    y_label: MTEPS
    suffix: "0"
    conditions:
      algorithm: BFS
      undirected: true
      mark_predecessors: true
  - type: heatmap
    engine: gunrock
    algorithm: BFS
    conditions:
      algorithm: BFS
`

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "charts.yaml", sampleManifest)

	m, err := LoadManifest(filepath.Join(dir, "charts.yaml"))

	require.NoError(t, err)
	assert.Equal(t, "results/", m.InputDir)
	require.Len(t, m.Charts, 2)

	chart, err := m.Charts[0].ToChart()
	require.NoError(t, err)
	assert.Equal(t, engine.Bar, chart.Variant)
	assert.Equal(t, engine.AxisMapping{X: "dataset", Y: "m_teps"}, chart.Axes)
	assert.Equal(t, true, chart.Filters["undirected"])
	assert.Equal(t, "0", chart.Labels.FileSuffix)

	heat, err := m.Charts[1].ToChart()
	require.NoError(t, err)
	assert.Equal(t, engine.Heatmap, heat.Variant)
}

func TestLoadManifestRejectsUnknownType(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "charts.yaml", `
charts:
  - type: pie
    algorithm: BFS
`)

	_, err := LoadManifest(filepath.Join(dir, "charts.yaml"))

	assert.ErrorContains(t, err, "pie")
}

func TestLoadManifestRequiresAxes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "charts.yaml", `
charts:
  - type: scatter
    algorithm: BFS
`)

	_, err := LoadManifest(filepath.Join(dir, "charts.yaml"))

	assert.ErrorContains(t, err, "require x and y")
}

// ============================================================================
// NAMING TESTS
// ============================================================================

func TestOutputFileName(t *testing.T) {
	labels := engine.Labels{Engine: "gunrock", Algorithm: "BFS", FileSuffix: "0"}

	assert.Equal(t, "_gunrock_BFS_0.json", OutputFileName(labels))
}

func TestOutputFileNameRandomSuffix(t *testing.T) {
	labels := engine.Labels{Engine: "gunrock", Algorithm: "BFS"}

	a := OutputFileName(labels)
	b := OutputFileName(labels)

	assert.Regexp(t, `^_gunrock_BFS_[0-9a-f]{8}\.json$`, a)
	assert.NotEqual(t, a, b)
}
