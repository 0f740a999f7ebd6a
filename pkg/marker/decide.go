package marker

// Decision is the outcome of the display rule.
type Decision int

const (
	// Render shows the report and (re)creates the marker.
	Render Decision = iota
	// Skip produces no output at all.
	Skip
)

func (d Decision) String() string {
	if d == Skip {
		return "skip"
	}
	return "render"
}

// Decide applies the display rule. A clean result in quiet mode is skipped
// only when no report window is open for the target; with an open window the
// report is rendered so the window updates to show no issues.
func Decide(clean, quiet, markerExists bool) Decision {
	if quiet && clean && !markerExists {
		return Skip
	}
	return Render
}
