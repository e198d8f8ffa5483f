package game

import "github.com/atotto/clipboard"

// copyToClipboard is swapped out in tests.
var copyToClipboard = clipboard.WriteAll

// copySummary puts the last round and session totals on the clipboard and
// returns the status line shown on the intermission screen.
func copySummary(r *Round, s SessionStats) string {
	text := s.Summary()
	if r != nil {
		text = r.Summary() + "\n" + text
	}
	if err := copyToClipboard(text); err != nil {
		return "clipboard unavailable: " + err.Error()
	}
	return "summary copied to clipboard"
}
