package model

// Centralized icons for the UI components
// Using simple single-width characters for consistent terminal rendering
const (
	IconOK      = "✓" // Check mark (present / in sync)
	IconMissing = "✗" // Thin X (absent)
	IconStale   = "≈" // Almost equal (set, but differs from detected)
	IconMuted   = "◆" // Diamond for suppressed explore
)

// Icon picks the status icon for a present/absent pair.
func Icon(ok bool) string {
	if ok {
		return IconOK
	}
	return IconMissing
}
