package engine

// ============================================================================
// ASSEMBLER — Shared pipeline entry point
// ============================================================================
// Pipeline:
//   1. Filter the table by the chart's predicate set
//   2. Project the survivors onto the chart's data values (variant dispatch)
//   3. Infer axis field types (bar/scatter only)
//   4. Merge data + axes + types onto the chart-type template
//
// Every stage is a pure transformation; the assembler fails fast on the
// first stage error and never produces a partial spec.
// ============================================================================

// Assemble runs the spec-assembly pipeline for one chart and returns the
// assembled intermediate spec, ready for the renderer bridge.
func Assemble(tpl Template, table Table, chart Chart) (Spec, error) {
	filtered := ApplyFilters(table, chart.Filters)

	records, err := Project(filtered, chart)
	if err != nil {
		return nil, err
	}

	var types AxisTypes
	if chart.Variant != Heatmap {
		types = InferAxisTypes(records, chart.Axes)
	}

	return Merge(tpl, records, chart, types), nil
}
