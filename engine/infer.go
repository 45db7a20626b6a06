package engine

// ============================================================================
// TYPE INFERENCE — Classify axis fields for the Vega encoding block
// ============================================================================
// Classification is per column, not per value: a field is quantitative when
// every stored value is a floating-point number, ordinal otherwise. A mixed
// column (some numeric, some string) therefore classifies as ordinal even
// when the strings are numeric-looking — a known imprecision carried over
// from classifying by storage type.
// ============================================================================

// InferFieldType classifies one field across the projected records.
func InferFieldType(records []Record, field string) FieldType {
	if len(records) == 0 {
		return Ordinal
	}
	for _, rec := range records {
		if _, ok := rec[field].(float64); !ok {
			return Ordinal
		}
	}
	return Quantitative
}

// InferAxisTypes classifies both mapped axis fields.
func InferAxisTypes(records []Record, axes AxisMapping) AxisTypes {
	return AxisTypes{
		X: InferFieldType(records, axes.X),
		Y: InferFieldType(records, axes.Y),
	}
}
