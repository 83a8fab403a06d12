package scanner

const (
	defaultBatchSize     = 45
	defaultDeriveWorkers = 8

	// windowPages is how many foreground pages Items keeps.
	windowPages = 3
)
