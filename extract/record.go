package extract

// OpSize describes the configured workload shape of one benchmark run.
// Values are kept exactly as they appear in the log.
type OpSize struct {
	InsertKeyTotal string
	InsertKeyPerTx string
	ScanTotal      string
	ScanPerTx      string
	IterPerScan    string
}

// Load is the outcome of a preload phase.
type Load struct {
	Keys       string
	DurationMs string
}

// Scan is the outcome of a scan phase. Ops is captured from the scan line
// itself and is independent of OpSize.ScanTotal.
type Scan struct {
	Ops        string
	DurationMs string
}

// KeyCount is the final number of keys reported by the database.
type KeyCount struct {
	Keys string
}

// Run is the Nth record of each kind found in one log file.
type Run struct {
	Index    int
	OpSize   OpSize
	Load     Load
	Scan     Scan
	KeyCount KeyCount
}
