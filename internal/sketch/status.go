package sketch

import (
	"fmt"
	"strings"
)

// DebugLine formats frame, TPS, extents and pointer state.
func (i *Instance) DebugLine(tps float64) string {
	e := i.adapter.Extents()
	p := i.renderer.Pointer()
	return fmt.Sprintf("frame %d  tps %.0f  %dx%d  pointer (%.0f, %.0f) over=%v",
		i.renderer.Frame(), tps, e.Width, e.Height, p.X, p.Y, p.Over)
}

// StatusLine joins a debug line and the last error, skipping whichever is empty.
func StatusLine(debugLine string, lastErr error) string {
	var parts []string
	if debugLine != "" {
		parts = append(parts, debugLine)
	}
	if lastErr != nil {
		parts = append(parts, "Error: "+lastErr.Error())
	}
	return strings.Join(parts, " | ")
}
