package alumni

// BackToTopThreshold is the vertical scroll offset past which the
// "back to top" control is shown.
const BackToTopThreshold = 300

// ShowBackToTop reports whether the "back to top" control should be visible
// at the given scroll offset. The embedded page script applies the same rule.
func ShowBackToTop(offset float64) bool {
	return offset > BackToTopThreshold
}
