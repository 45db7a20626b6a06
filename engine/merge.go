package engine

// ============================================================================
// TEMPLATE MERGER — Overlay projected data onto a chart-type template
// ============================================================================
// The merge is additive: it fills or overwrites the documented slots
// (data.values, encoding.{x,y}.field/axis/type) and never removes a
// template key. The source template is never touched — all writes go to a
// deep copy.
//
// Heatmap templates receive only data values; their encoding block ships
// preconfigured in the template.
// ============================================================================

// Merge produces the assembled spec from a template, the projected records,
// and the inferred axis types.
func Merge(tpl Template, records []Record, chart Chart, types AxisTypes) Spec {
	spec := Spec(deepCopyMap(tpl))

	spec["data"] = map[string]any{"values": recordValues(records)}

	if chart.Variant == Heatmap {
		return spec
	}

	x := encodingSlot(spec, "x")
	x["field"] = chart.Axes.X
	x["axis"] = map[string]any{"title": chart.Labels.XAxis}
	x["type"] = string(types.X)

	y := encodingSlot(spec, "y")
	y["field"] = chart.Axes.Y
	y["axis"] = map[string]any{"title": chart.Labels.YAxis}
	y["type"] = string(types.Y)

	return spec
}

// encodingSlot returns the axis map under encoding, creating intermediate
// maps when the template omits them. Filling a missing slot is additive;
// dropping it would be a merge that loses data.
func encodingSlot(spec Spec, axis string) map[string]any {
	enc, ok := spec["encoding"].(map[string]any)
	if !ok {
		enc = make(map[string]any)
		spec["encoding"] = enc
	}
	slot, ok := enc[axis].(map[string]any)
	if !ok {
		slot = make(map[string]any)
		enc[axis] = slot
	}
	return slot
}

// recordValues converts records to plain maps for JSON embedding.
func recordValues(records []Record) []map[string]any {
	values := make([]map[string]any, len(records))
	for i, rec := range records {
		values[i] = map[string]any(rec)
	}
	return values
}

// deepCopyMap copies a nested template map. Scalar leaves are shared —
// records and templates hold only immutable JSON scalars.
func deepCopyMap(src map[string]any) map[string]any {
	dst := make(map[string]any, len(src))
	for k, v := range src {
		dst[k] = deepCopyValue(v)
	}
	return dst
}

func deepCopyValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return deepCopyMap(t)
	case []any:
		cp := make([]any, len(t))
		for i, e := range t {
			cp[i] = deepCopyValue(e)
		}
		return cp
	}
	return v
}
