package extract

import "fmt"

// Extraction holds every record found in one file's content, each slice in
// order of appearance.
type Extraction struct {
	OpSizes   []OpSize
	Loads     []Load
	Scans     []Scan
	KeyCounts []KeyCount
}

// Counts returns the number of records of each kind, in table order.
func (x Extraction) Counts() [4]int {
	return [4]int{len(x.OpSizes), len(x.Loads), len(x.Scans), len(x.KeyCounts)}
}

// Extract applies every entry of Patterns to the whole of content. Text
// that matches no pattern is ignored.
func Extract(content string) Extraction {
	var x Extraction

	for _, p := range Patterns {
		for _, f := range p.FindAll(content) {
			p.add(&x, f)
		}
	}

	return x
}

// MismatchError is returned by Correlate when the record kinds of a file
// were found a different number of times.
type MismatchError struct {
	Path   string
	Counts [4]int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf(
		"%s: record counts differ: op size %d, preload %d, scan %d, key count %d",
		e.Path, e.Counts[0], e.Counts[1], e.Counts[2], e.Counts[3],
	)
}

// Correlate zips the records of x by position. It never truncates: unless
// all four kinds occur equally often it returns no runs and a
// *MismatchError naming path.
func Correlate(path string, x Extraction) ([]Run, error) {
	counts := x.Counts()
	for _, c := range counts[1:] {
		if c != counts[0] {
			return nil, &MismatchError{Path: path, Counts: counts}
		}
	}

	runs := make([]Run, counts[0])
	for i := range runs {
		runs[i] = Run{
			Index:    i,
			OpSize:   x.OpSizes[i],
			Load:     x.Loads[i],
			Scan:     x.Scans[i],
			KeyCount: x.KeyCounts[i],
		}
	}

	return runs, nil
}
