package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/releasekit/verconfig/internal/config"
)

// WriteJSON writes the configuration as pretty-printed JSON to w. Field
// order follows the document model; map keys are emitted sorted, so the
// output is deterministic.
func WriteJSON(w io.Writer, cfg *config.Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling configuration to JSON: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing JSON output: %w", err)
	}
	_, err = w.Write([]byte("\n"))
	return err
}
