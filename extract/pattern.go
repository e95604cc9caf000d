// Package extract pulls benchmark records out of free-form log text and
// correlates them into per-run tuples.
package extract

import (
	"fmt"
	"regexp"
)

// Pattern is one entry of the extraction table: a compiled expression, the
// number of fields each match must carry and how a match is recorded.
type Pattern struct {
	Name  string
	Arity int
	expr  *regexp.Regexp
	add   func(x *Extraction, fields []string)
}

func newPattern(
	name string,
	arity int,
	expr string,
	add func(x *Extraction, fields []string),
) Pattern {
	re := regexp.MustCompile(expr)
	if re.NumSubexp() != arity {
		panic(fmt.Sprintf(
			"extract: pattern %q has %d capture groups, want %d",
			name, re.NumSubexp(), arity,
		))
	}

	return Pattern{Name: name, Arity: arity, expr: re, add: add}
}

// Captures use greedy (.*) bounded by the literal text that follows them.
// Without the (?s) flag a capture never crosses a newline.
var (
	OpSizePattern = newPattern("op size", 5,
		`op size: OpSize \{ insert_key_total_count: (.*), `+
			`insert_key_per_tx_count: (.*), scan_total_count: (.*), `+
			`scan_per_tx_count: (.*), iter_per_scan_count: (.*) \}`,
		func(x *Extraction, f []string) {
			x.OpSizes = append(x.OpSizes, OpSize{
				InsertKeyTotal: f[0],
				InsertKeyPerTx: f[1],
				ScanTotal:      f[2],
				ScanPerTx:      f[3],
				IterPerScan:    f[4],
			})
		})
	PreloadPattern = newPattern("preload", 2,
		`Preload done: loaded (.*) keys in (.*)ms`,
		func(x *Extraction, f []string) {
			x.Loads = append(x.Loads, Load{Keys: f[0], DurationMs: f[1]})
		})
	ScanPattern = newPattern("scan", 2,
		`Scan done: (.*) scan ops in (.*)ms`,
		func(x *Extraction, f []string) {
			x.Scans = append(x.Scans, Scan{Ops: f[0], DurationMs: f[1]})
		})
	KeyCountPattern = newPattern("key count", 1,
		`Database keys: (.*) keys`,
		func(x *Extraction, f []string) {
			x.KeyCounts = append(x.KeyCounts, KeyCount{Keys: f[0]})
		})
)

// Patterns lists the extraction table in correlation order.
var Patterns = []Pattern{
	OpSizePattern,
	PreloadPattern,
	ScanPattern,
	KeyCountPattern,
}

// FindAll returns the capture groups of every non-overlapping match in
// content, left to right. Each element has exactly p.Arity fields.
func (p Pattern) FindAll(content string) [][]string {
	matches := p.expr.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}

	fields := make([][]string, 0, len(matches))
	for _, m := range matches {
		fields = append(fields, m[1:])
	}

	return fields
}
