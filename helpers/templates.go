package helpers

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ffarhour/vegagraph/engine"
)

// ============================================================================
// TEMPLATE STORE — Cached template lookup for batch runs
// ============================================================================
// A manifest run assembles many charts in one process, most of them sharing
// a handful of chart types. The store memoizes template loads per chart
// type; the engine itself stays cache-free, so single-chart invocations
// remain fully independent.
// ============================================================================

// templateCacheSize covers the known chart types with headroom for
// consumer-defined ones.
const templateCacheSize = 8

// TemplateStore loads chart templates from a config directory, caching by
// chart type. Returned templates are read-only by contract — the merger
// always works on its own deep copy.
type TemplateStore struct {
	dir   string
	cache *lru.Cache[string, engine.Template]
}

// NewTemplateStore creates a store over configDir.
func NewTemplateStore(configDir string) (*TemplateStore, error) {
	cache, err := lru.New[string, engine.Template](templateCacheSize)
	if err != nil {
		return nil, err
	}
	return &TemplateStore{dir: configDir, cache: cache}, nil
}

// Load returns the template for a chart type, from cache when present.
func (s *TemplateStore) Load(chartType string) (engine.Template, error) {
	if tpl, ok := s.cache.Get(chartType); ok {
		return tpl, nil
	}
	tpl, err := LoadTemplate(s.dir, chartType)
	if err != nil {
		return nil, err
	}
	s.cache.Add(chartType, tpl)
	return tpl, nil
}
