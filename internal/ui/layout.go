package ui

// Layout proportions.
const (
	// LeftColumnPercent is the share of the width given to the category and
	// item panes.
	LeftColumnPercent = 30

	// MinLeftColumnWidth keeps the left column readable on narrow terminals.
	MinLeftColumnWidth = 20

	// Song table column shares, in percent of the table width.
	TitleColumnPercent  = 50
	ArtistColumnPercent = 30
)

// SelectionMarker prefixes the highlighted row of a list pane.
const SelectionMarker = ">> "

// DiagnosticsLines is how many log lines the diagnostics overlay loads.
const DiagnosticsLines = 200
