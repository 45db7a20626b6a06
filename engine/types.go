package engine

import "fmt"

// ============================================================================
// VEGAGRAPH ENGINE TYPES — Benchmark Records → Chart Specs
// ============================================================================
// Record is one parsed benchmark document; Table is the ordered sequence of
// Records for one algorithm/engine run. Both are built once per invocation
// and never mutated — there is no shared state between pipeline runs.
// ============================================================================

// ============================================================================
// RECORD / TABLE
// ============================================================================

// Record is a single benchmark result: a flat mapping from field name to a
// JSON scalar (string, float64, or bool after decoding).
type Record map[string]any

// Field returns the named field's value, or an error if the record does not
// carry it. All records in a table are assumed to share a compatible field
// set, so a missing field is a defect in the input, not a soft miss.
func (r Record) Field(name string) (any, error) {
	v, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("record has no field %q", name)
	}
	return v, nil
}

// Table is an ordered, read-only sequence of Records.
// Filtering produces a new Table over the same underlying Records — the
// engine never copies or mutates record data.
type Table struct {
	records []Record
}

// NewTable wraps a record slice as a Table. The Table takes ownership;
// callers must not append to or mutate the slice afterward.
func NewTable(records []Record) Table {
	return Table{records: records}
}

// Len returns the number of records.
func (t Table) Len() int { return len(t.records) }

// At returns the i-th record.
func (t Table) At(i int) Record { return t.records[i] }

// Records returns the underlying record sequence. Read-only by convention.
func (t Table) Records() []Record { return t.records }

// ============================================================================
// FILTERS / AXES / LABELS — Per-invocation chart inputs
// ============================================================================

// Filters is an equality-conjunction predicate set: a record matches iff
// every key/value pair matches exactly. No ranges, disjunctions, or
// negation.
type Filters map[string]any

// IsEmpty returns true if no predicates are set.
func (f Filters) IsEmpty() bool { return len(f) == 0 }

// AxisMapping names the table fields projected onto the x and y axes of a
// bar or scatter chart. The heatmap variant ignores it entirely.
type AxisMapping struct {
	X string
	Y string
}

// Labels carries the naming strings used for axis titles and output file
// naming. They never participate in data selection.
type Labels struct {
	Engine     string // engine that produced the results, e.g. "gunrock"
	Algorithm  string // algorithm name, e.g. "BFS"
	XAxis      string // x axis display title
	YAxis      string // y axis display title
	FileSuffix string // trailing component of the output file name
}

// ============================================================================
// CHART VARIANT — tagged union selecting the projector step
// ============================================================================

// ChartVariant selects which axis-projection step the pipeline runs.
// Every other stage is shared across variants.
type ChartVariant int

const (
	Bar ChartVariant = iota
	Scatter
	Heatmap
)

// String returns the lowercase variant name, which doubles as the
// configuration resource name prefix (e.g. "bar" → bar_config.json).
func (v ChartVariant) String() string {
	switch v {
	case Bar:
		return "bar"
	case Scatter:
		return "scatter"
	case Heatmap:
		return "heatmap"
	}
	return fmt.Sprintf("ChartVariant(%d)", int(v))
}

// ParseVariant maps a chart-type name to its ChartVariant.
func ParseVariant(name string) (ChartVariant, error) {
	switch name {
	case "bar":
		return Bar, nil
	case "scatter":
		return Scatter, nil
	case "heatmap":
		return Heatmap, nil
	}
	return 0, fmt.Errorf("unknown chart type %q", name)
}

// Chart is one chart definition: the variant plus the per-invocation
// selection and naming inputs.
type Chart struct {
	Variant ChartVariant
	Filters Filters
	Axes    AxisMapping
	Labels  Labels
}

// ============================================================================
// TEMPLATE / SPEC
// ============================================================================

// Template is a chart-type skeleton loaded from a <charttype>_config.json
// resource: a nested mapping with placeholder slots for data values, field
// names, and axis metadata. Templates are read-only inputs — the merger
// works on a deep copy.
type Template map[string]any

// Spec is the assembled intermediate chart specification: a Template with
// its data and axis slots filled, ready for the renderer bridge.
type Spec map[string]any

// FieldType classifies an axis field for the Vega encoding block.
type FieldType string

const (
	Quantitative FieldType = "quantitative"
	Ordinal      FieldType = "ordinal"
)

// AxisTypes holds the inferred classification of both mapped axes.
type AxisTypes struct {
	X FieldType
	Y FieldType
}
