package workload

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDeterministic(t *testing.T) {
	cfg := Config{
		Database: "lmdb",
		Profile:  Small,
		Runs:     3,
		Threads:  4,
		Seed:     42,
	}

	var buf1, buf2 bytes.Buffer

	sum1, err := NewGenerator(cfg).Generate(&buf1)
	require.NoError(t, err)

	sum2, err := NewGenerator(cfg).Generate(&buf2)
	require.NoError(t, err)

	assert.Equal(t, buf1.String(), buf2.String(), "logs are not deterministic for same seed")
	assert.Equal(t, sum1, sum2)
}

func TestGenerateCounts(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantRuns  int
		wantLines int
		wantScans int
	}{
		{
			name:      "lmdb",
			cfg:       Config{Database: "lmdb", Profile: Small, Runs: 2, Seed: 1},
			wantRuns:  2,
			wantLines: 14,
			wantScans: 1,
		},
		{
			name:      "redb compacts",
			cfg:       Config{Database: "redb", Profile: Medium, Runs: 1, Seed: 2},
			wantRuns:  1,
			wantLines: 11,
			wantScans: 2,
		},
		{
			name:      "no runs",
			cfg:       Config{Profile: Big, Seed: 3},
			wantRuns:  0,
			wantLines: 0,
		},
		{
			name:      "omit key count",
			cfg:       Config{Profile: Small, Runs: 3, Seed: 4, OmitLastKeyCount: true},
			wantRuns:  3,
			wantLines: 20,
			wantScans: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			sum, err := NewGenerator(tt.cfg).Generate(&buf)
			require.NoError(t, err)

			assert.Len(t, sum.Runs, tt.wantRuns)
			assert.Equal(t, tt.wantLines, sum.Lines)
			assert.Equal(t, sum.Lines, strings.Count(buf.String(), "\n"))

			for i, r := range sum.Runs {
				assert.Len(t, r.Scans, tt.wantScans, "run %d", i)
			}
		})
	}
}

func TestGenerateLineFormats(t *testing.T) {
	var buf bytes.Buffer

	sum, err := NewGenerator(Config{
		Database: "rocksdb",
		Profile:  Small,
		Runs:     1,
		Threads:  8,
		Dir:      "/data/bench",
		Seed:     7,
	}).Generate(&buf)
	require.NoError(t, err)

	run := sum.Runs[0]
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 7)

	assert.Equal(t,
		"op size: OpSize { insert_key_total_count: 1000000, "+
			"insert_key_per_tx_count: 1000, scan_total_count: 100000, "+
			"scan_per_tx_count: 100, iter_per_scan_count: 1000 }",
		lines[0],
	)
	assert.Equal(t, "thread count: 8", lines[1])
	assert.Equal(t, `dir: "/data/bench"`, lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "rocksdb: Preload done: loaded 1000000 keys in "), lines[3])
	assert.True(t, strings.HasPrefix(lines[4], "rocksdb: Scan done: 100000 scan ops in "), lines[4])
	assert.True(t, strings.HasPrefix(lines[5], "rocksdb: Database keys: "), lines[5])
	assert.True(t, strings.HasPrefix(lines[6], "rocksdb: Database size: "), lines[6])

	assert.NotZero(t, run.LoadDurationMs)
	assert.NotZero(t, run.Scans[0].DurationMs)
	assert.LessOrEqual(t, run.KeyCount, run.LoadedKeys)
}

func TestGenerateOmitLastKeyCount(t *testing.T) {
	var buf bytes.Buffer

	sum, err := NewGenerator(Config{
		Profile:          Small,
		Runs:             2,
		Seed:             5,
		OmitLastKeyCount: true,
	}).Generate(&buf)
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(buf.String(), "Database keys:"))
	assert.False(t, sum.Runs[0].KeyCountOmit)
	assert.True(t, sum.Runs[1].KeyCountOmit)
}

func TestProfileByName(t *testing.T) {
	tests := []struct {
		name    string
		want    Profile
		wantErr bool
	}{
		{"s", Small, false},
		{"m", Medium, false},
		{"b", Big, false},
		{"x", Profile{}, true},
		{"", Profile{}, true},
	}

	for _, tt := range tests {
		got, err := ProfileByName(tt.name)
		if tt.wantErr {
			assert.Error(t, err, "ProfileByName(%q)", tt.name)
		} else {
			assert.NoError(t, err, "ProfileByName(%q)", tt.name)
		}
		assert.Equal(t, tt.want, got, "ProfileByName(%q)", tt.name)
	}
}
