package messages

import "github.com/cheerioskun/grepninja/internal/models"

// SearchCompletedMsg is sent when a background search over the explorer's
// targets has finished
type SearchCompletedMsg struct {
	Seq         int              // Query sequence number; stale results are dropped
	Pattern     string           // Pattern text the search ran with
	Output      string           // Rendered report
	Diagnostics string           // Open and read failures
	Result      models.RunResult // Per-target counts
	Err         error            // Compile or output failure
}

// Idle returns true if no search was run because the pattern was empty
func (m SearchCompletedMsg) Idle() bool {
	return m.Pattern == "" && m.Err == nil
}
