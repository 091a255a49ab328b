package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/cubefall/game"
	"github.com/plus3/cubefall/loop"
	"github.com/plus3/cubefall/shape"
	"github.com/plus3/cubefall/termview"
)

func main() {
	def := game.DefaultConfig()

	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	width := flag.Int("width", def.Width, "Board width in cells.")
	depth := flag.Int("depth", def.Depth, "Board depth in cells.")
	height := flag.Int("height", def.Height, "Board height in cells.")
	seed := flag.Uint64("seed", 1, "Shape selection seed. 0 picks one at random.")
	policy := flag.String("policy", def.Rotation.String(), "Rotation policy when a turn is blocked: revert or cycle.")
	show := flag.Bool("show", false, "Print the final board of the longest game.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting cubefall stress test...")

	// 1. Setup session, bot, and scheduler
	cfg := def.WithSize(*width, *depth, *height)
	cfg.Seed = *seed
	cfg.DropCommits = true
	rotation, err := game.ParseRotationPolicy(*policy)
	if err != nil {
		log.Fatalf("Invalid -policy: %v", err)
	}
	cfg.Rotation = rotation

	session, err := game.New(cfg, shape.Default())
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}
	bot := NewBot(session)
	scheduler, gravity := loop.NewGameScheduler(session, bot)

	// 2. Run games until the deadline, in simulated time
	report := &Report{
		Duration:       *duration,
		Board:          fmt.Sprintf("%dx%dx%d", cfg.Width, cfg.Depth, cfg.Height),
		Policy:         cfg.Rotation.String(),
		Seed:           cfg.Seed,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running bot for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	// Half a gravity step per frame gives the bot a frame to act before
	// each tick.
	dt := cfg.Gravity.Seconds() / 2

	startTime := time.Now()
	var totalUpdates int64
	var best string

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			scheduler.Once(dt)
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++

			if session.GameOver() {
				if report.record(session) && *show {
					best = termview.New(os.Stdout).Session(session)
				}
				session.Restart()
				bot.Reset()
			}
		}
	}
	if session.PiecesSpawned() > 1 {
		report.record(session)
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.Ticks = gravity.Ticks
	report.Plans = bot.Plans
	report.Predicted = bot.Predicted
	stats := scheduler.GetStats()
	report.CommandsApplied = stats.CommandsApplied
	report.CommandsIgnored = stats.CommandsIgnored
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	// 3. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	if best != "" {
		fmt.Println(best)
	}

	log.Println("Stress test complete.")
}
