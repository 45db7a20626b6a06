package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ============================================================================
// TYPE INFERENCE TESTS
// ============================================================================

func TestInferFieldType(t *testing.T) {
	tests := []struct {
		name    string
		records []Record
		field   string
		want    FieldType
	}{
		{
			name:    "all floats → quantitative",
			records: []Record{{"m_teps": 12.4}, {"m_teps": 3.1}},
			field:   "m_teps",
			want:    Quantitative,
		},
		{
			name:    "all strings → ordinal",
			records: []Record{{"dataset": "road"}, {"dataset": "soc"}},
			field:   "dataset",
			want:    Ordinal,
		},
		{
			name:    "bools → ordinal",
			records: []Record{{"undirected": true}},
			field:   "undirected",
			want:    Ordinal,
		},
		{
			// Column-level classification: one string value makes the whole
			// column ordinal even when the rest are numeric.
			name:    "mixed column → ordinal",
			records: []Record{{"m_teps": 12.4}, {"m_teps": "3.1"}},
			field:   "m_teps",
			want:    Ordinal,
		},
		{
			name:    "no records → ordinal",
			records: nil,
			field:   "m_teps",
			want:    Ordinal,
		},
		{
			name:    "field absent → ordinal",
			records: []Record{{"dataset": "road"}},
			field:   "m_teps",
			want:    Ordinal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferFieldType(tt.records, tt.field))
		})
	}
}

func TestInferAxisTypes(t *testing.T) {
	records := []Record{
		{"dataset": "road", "m_teps": 12.4},
		{"dataset": "soc", "m_teps": 3.1},
	}

	got := InferAxisTypes(records, AxisMapping{X: "dataset", Y: "m_teps"})

	assert.Equal(t, AxisTypes{X: Ordinal, Y: Quantitative}, got)
}
