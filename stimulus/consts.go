package stimulus

const (
	// receptive field stimuli sit on a 9x9 grid, 10 position units per cell,
	// centred on (0, 0) with y pointing up
	DisplayGridSize = 9
	rfCellSize      = 10.0
	rfGridOffset    = 4.0

	DurationUnit = "s"
)
