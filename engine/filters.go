package engine

// ============================================================================
// FILTERS — Equality-Conjunction Record Selection
// ============================================================================
// Single pass: checks ALL predicate entries per record in one loop.
// Survivor order is the table's order. Pure — inputs are never mutated.
// ============================================================================

// ApplyFilters returns the sub-table of records matching every predicate
// entry by exact value equality. A record missing a predicate key fails the
// match rather than raising. An empty predicate set returns the table
// unchanged.
func ApplyFilters(table Table, filters Filters) Table {
	if filters.IsEmpty() {
		return table
	}

	matched := make([]Record, 0, table.Len())
	for i := 0; i < table.Len(); i++ {
		rec := table.At(i)
		pass := true
		for key, want := range filters {
			got, ok := rec[key]
			if !ok || !scalarEqual(got, want) {
				pass = false
				break
			}
		}
		if pass {
			matched = append(matched, rec)
		}
	}

	return NewTable(matched)
}

// scalarEqual compares two JSON scalars. Numeric values are compared
// numerically regardless of Go type: JSON decoding yields float64 while
// YAML manifests decode whole numbers as int, and a predicate written in
// either must match the same field.
func scalarEqual(a, b any) bool {
	an, aok := asNumber(a)
	bn, bok := asNumber(b)
	if aok && bok {
		return an == bn
	}
	if aok != bok {
		return false
	}
	return a == b
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
