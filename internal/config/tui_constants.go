package config

// Layout constants.
const (
	// ProgressWidth is the preferred width of the remaining-time bar.
	ProgressWidth = 40

	// MinProgressWidth is the narrowest bar drawn on small terminals.
	MinProgressWidth = 10

	// CompactModeThreshold drops the help line below this width.
	CompactModeThreshold = 50

	// FieldWidth is the rendered width of an hour or minute field.
	FieldWidth = 4
)
