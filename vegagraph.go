// Package vegagraph converts benchmark JSON emitted by graph-algorithm runs
// into Vega chart specifications.
//
// Usage:
//
//	import "github.com/ffarhour/vegagraph/engine"
//
//	spec, err := engine.Assemble(tpl, table, engine.Chart{
//	    Variant: engine.Bar,
//	    Filters: engine.Filters{"algorithm": "BFS", "undirected": true},
//	    Axes:    engine.AxisMapping{X: "dataset", Y: "m_teps"},
//	    Labels:  labels,
//	})
//
// The engine takes a loaded result table and a chart definition, and
// returns an assembled Vega-Lite spec ready for an external compiler.
//
// Loading input tables and chart templates is handled by the helpers
// package; compiling the assembled spec is handled by the render package.
// The engine never touches the filesystem — all computation is local.
package vegagraph
