package game

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/tomz197/ringballs/internal/level"
)

// EndReason says why a session ended.
type EndReason int

const (
	EndNone          EndReason = iota // Still playing
	EndEscape                         // Player pressed escape
	EndKiller                         // A ball hit a killer
	EndNegativeScore                  // A penalty pushed the score below zero
)

// String returns the reason as it appears in logs and reports.
func (r EndReason) String() string {
	switch r {
	case EndNone:
		return "playing"
	case EndEscape:
		return "escape"
	case EndKiller:
		return "killer"
	case EndNegativeScore:
		return "negative score"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// Results is the final report of a session.
type Results struct {
	Level  level.Tier
	Score  int
	Hits   [level.KindCount]int
	Reason EndReason
}

// Reporter receives score and result reports. The receiver decides how to
// format them and where they go.
type Reporter interface {
	ReportScore(score int)
	ReportLevel(tier level.Tier)
	ReportResults(r Results)
}

// QuitRequester is told when the simulation decides the session must end.
// Teardown is up to the implementation; the current step always completes first.
type QuitRequester interface {
	RequestQuit()
}

// QuitFunc adapts a function to QuitRequester.
type QuitFunc func()

// RequestQuit calls f.
func (f QuitFunc) RequestQuit() {
	f()
}

// LogReporter writes reports as structured log entries.
type LogReporter struct {
	Logger *log.Logger
}

// ReportScore logs the current score.
func (r LogReporter) ReportScore(score int) {
	r.Logger.Info("score", "score", score)
}

// ReportLevel logs a level change.
func (r LogReporter) ReportLevel(tier level.Tier) {
	r.Logger.Info("new level", "level", tier)
}

// ReportResults logs the final results.
func (r LogReporter) ReportResults(res Results) {
	r.Logger.Info("final results",
		"level", res.Level,
		"score", res.Score,
		"prizes", res.Hits[level.Prize],
		"penalties", res.Hits[level.Penalty],
		"reason", res.Reason,
	)
}

// nopQuitter ignores quit requests; the driver polls Simulation.QuitRequested instead.
type nopQuitter struct{}

// RequestQuit does nothing.
func (nopQuitter) RequestQuit() {}
