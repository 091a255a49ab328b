package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/cubefall/game"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Board    string
	Policy   string
	Seed     uint64

	// Results
	Games          int
	Pieces         int
	Layers         int
	BestLayers     int
	Ticks          int64
	Plans          int64
	Predicted      int64
	TotalUpdates   int64
	TotalTime      time.Duration
	UpdateTime     Stats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats

	CommandsApplied int64
	CommandsIgnored int64
}

// record adds a finished game to the totals and reports whether it cleared
// more layers than any earlier game.
func (r *Report) record(s *game.Session) bool {
	r.Games++
	r.Pieces += s.PiecesSpawned()
	r.Layers += s.LayersCleared()

	if r.Games == 1 || s.LayersCleared() > r.BestLayers {
		r.BestLayers = s.LayersCleared()
		return true
	}
	return false
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# cubefall Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Board:** {{.Board}}
- **Rotation Policy:** {{.Policy}}
- **Seed:** {{.Seed}}

## Play Results
- **Games Finished:** {{.Games}}
- **Pieces Spawned:** {{.Pieces}}
- **Layers Cleared:** {{.Layers}} (best game: {{.BestLayers}}, per game: {{per .Layers .Games}})
- **Gravity Ticks:** {{.Ticks}}
- **Bot Plans:** {{.Plans}} (predicted clears: {{.Predicted}})
- **Commands:** {{.CommandsApplied}} applied, {{.CommandsIgnored}} ignored

## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Sys Memory:     {{.MemStatsStart.Sys}} (start) -> {{.MemStatsEnd.Sys}} (end) -> delta: {{bsub .MemStatsEnd.Sys .MemStatsStart.Sys}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"per": func(n, d int) string {
			if d == 0 {
				return "N/A"
			}
			return fmt.Sprintf("%.2f", float64(n)/float64(d))
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
