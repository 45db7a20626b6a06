package helpers

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ffarhour/vegagraph/engine"
)

// OutputFileName builds the generated file's name from the chart labels:
// _<engine>_<algorithm>_<suffix>.json. The leading underscore marks the
// file as generated output so LoadTable never re-ingests it. An empty
// suffix gets a short random one so repeated runs do not overwrite each
// other.
func OutputFileName(labels engine.Labels) string {
	suffix := labels.FileSuffix
	if suffix == "" {
		suffix = uuid.NewString()[:8]
	}
	return fmt.Sprintf("_%s_%s_%s.json", labels.Engine, labels.Algorithm, suffix)
}
