package engine

import (
	"fmt"
	"math"
)

// ============================================================================
// AXIS PROJECTOR — Reduce filtered records to chart data values
// ============================================================================
// The only pipeline stage that dispatches on ChartVariant:
//
//   Bar/Scatter — keep the two mapped axis fields, keyed by x.
//   Heatmap     — keep four fixed fields plus a derived rounded measure.
//
// Output of both: flat records ready for direct embedding as the chart's
// data values.
// ============================================================================

// heatmap projection is fixed: the axis mapping is ignored on purpose.
var heatmapFields = []string{"dataset", "m_teps", "alpha", "beta"}

// heatmapRoundedField holds the nearest-integer rounding of m_teps.
const heatmapRoundedField = "m_teps_rounded"

// Project reduces a filtered table to the data values of one chart.
func Project(table Table, chart Chart) ([]Record, error) {
	switch chart.Variant {
	case Bar, Scatter:
		return ProjectAxes(table, chart.Axes)
	case Heatmap:
		return ProjectHeatmap(table)
	}
	return nil, fmt.Errorf("unknown chart variant %v", chart.Variant)
}

// ProjectAxes keeps only the two mapped fields of each record, treating the
// table as a lookup from x value to y value: when several records share an
// x value, the last one wins. Output order is first occurrence of each x
// value, so the chart's categories follow the input order.
//
// Errors if any record lacks a mapped field.
func ProjectAxes(table Table, axes AxisMapping) ([]Record, error) {
	byX := make(map[any]int, table.Len())
	out := make([]Record, 0, table.Len())

	for i := 0; i < table.Len(); i++ {
		rec := table.At(i)
		x, err := rec.Field(axes.X)
		if err != nil {
			return nil, err
		}
		y, err := rec.Field(axes.Y)
		if err != nil {
			return nil, err
		}

		key := scalarKey(x)
		if pos, seen := byX[key]; seen {
			out[pos][axes.Y] = y
			continue
		}
		byX[key] = len(out)
		out = append(out, Record{axes.X: x, axes.Y: y})
	}

	return out, nil
}

// ProjectHeatmap keeps the four fixed heatmap fields of each record and adds
// the derived rounded m_teps. All records survive — no keyed reduction.
//
// Errors if any record lacks a heatmap field or carries a non-numeric m_teps.
func ProjectHeatmap(table Table) ([]Record, error) {
	out := make([]Record, 0, table.Len())

	for i := 0; i < table.Len(); i++ {
		rec := table.At(i)
		proj := make(Record, len(heatmapFields)+1)
		for _, field := range heatmapFields {
			v, err := rec.Field(field)
			if err != nil {
				return nil, err
			}
			proj[field] = v
		}

		mteps, ok := asNumber(proj["m_teps"])
		if !ok {
			return nil, fmt.Errorf("field %q is not numeric: %v", "m_teps", proj["m_teps"])
		}
		proj[heatmapRoundedField] = math.Round(mteps)

		out = append(out, proj)
	}

	return out, nil
}

// scalarKey normalizes a field value for use as a reduction key, so that
// numerically equal values collapse to one category.
func scalarKey(v any) any {
	if n, ok := asNumber(v); ok {
		return n
	}
	return v
}
