package stats

import (
	"fmt"
	"time"

	"github.com/omniscale/crscheck/logging"
)

// Counts of a generation or verification run.
type Counts struct {
	Processed int64
	Passed    int64
	Failed    int64
	Skipped   int64
}

type counter struct {
	Counts
	name          string
	total         int64
	start         time.Time
	lastReport    time.Time
	lastProcessed int64
}

// Statistics collects counts from the caller and reports the progress
// every second. All methods are safe for concurrent use.
type Statistics struct {
	passed   chan int
	failed   chan int
	skipped  chan int
	messages chan string
	stop     chan chan Counts
}

func (s *Statistics) AddPassed(n int)    { s.passed <- n }
func (s *Statistics) AddFailed(n int)    { s.failed <- n }
func (s *Statistics) AddSkipped(n int)   { s.skipped <- n }
func (s *Statistics) Message(msg string) { s.messages <- msg }

// Stop ends the reporter and returns the final counts.
func (s *Statistics) Stop() Counts {
	result := make(chan Counts)
	s.stop <- result
	return <-result
}

// StatsReporter starts a reporter for a run over total items.
func StatsReporter(name string, total int) *Statistics {
	c := counter{name: name, total: int64(total), start: time.Now()}
	c.lastReport = c.start
	s := Statistics{
		passed:   make(chan int),
		failed:   make(chan int),
		skipped:  make(chan int),
		messages: make(chan string),
		stop:     make(chan chan Counts),
	}

	go func() {
		tick := time.NewTicker(time.Second)
		defer tick.Stop()
		for {
			select {
			case n := <-s.passed:
				c.Passed += int64(n)
				c.Processed += int64(n)
			case n := <-s.failed:
				c.Failed += int64(n)
				c.Processed += int64(n)
			case n := <-s.skipped:
				c.Skipped += int64(n)
				c.Processed += int64(n)
			case msg := <-s.messages:
				c.Print()
				logging.Infof("%s", msg)
			case <-tick.C:
				c.Print()
			case result := <-s.stop:
				c.Print()
				result <- c.Counts
				return
			}
		}
	}()
	return &s
}

func (c *counter) Print() {
	logging.Progress(c.String())
	c.lastProcessed = c.Processed
	c.lastReport = time.Now()
}

func (c *counter) String() string {
	dur := time.Since(c.lastReport)
	rate := 0
	if dur > 0 {
		rate = int(float64(c.Processed-c.lastProcessed) / dur.Seconds())
	}
	progress := fmt.Sprintf("%d", c.Processed)
	if c.total > 0 {
		progress = fmt.Sprintf("%d/%d (%3d%%)", c.Processed, c.total, c.Processed*100/c.total)
	}
	return fmt.Sprintf("[%s] %s passed: %d failed: %d skipped: %d %5d/s",
		c.name, progress, c.Passed, c.Failed, c.Skipped, rate)
}
