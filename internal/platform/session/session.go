// Package session follows a running round on behalf of a front end: it logs
// notable events, forwards them to a cue sink and records finished rounds.
package session

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tank-arena/internal/core"
	"github.com/vovakirdan/tank-arena/internal/storage"
)

// CueSink receives the events of every tick, e.g. to play sounds.
type CueSink interface {
	Play(events []core.Event)
}

// Options configures a Recorder. Every field is optional.
type Options struct {
	Store  *storage.Store // Nil disables score saving
	Logger *log.Logger    // Nil discards logs
	Cues   CueSink        // Nil plays nothing
}

// Recorder observes step results of one game.
type Recorder struct {
	gameID string
	seed   int64
	opts   Options
	logger *log.Logger

	tick       uint64 // Steps observed
	roundStart uint64 // Step the current round began at
	saved      bool
}

// NewRecorder creates a recorder for the given game and seed.
func NewRecorder(gameID string, seed int64, opts Options) *Recorder {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{
		gameID: gameID,
		seed:   seed,
		opts:   opts,
		logger: logger.With("game", gameID),
	}
}

// Logger returns the recorder's logger, tagged with the game ID.
func (r *Recorder) Logger() *log.Logger {
	return r.logger
}

// Ticks returns the number of observed steps.
func (r *Recorder) Ticks() uint64 {
	return r.tick
}

// Observe handles the result of one step.
func (r *Recorder) Observe(result core.StepResult) {
	r.tick++

	for _, e := range result.Events {
		switch e.Kind {
		case core.EventLevelUp:
			r.logger.Info("level up", "level", e.Value, "score", result.State.Score)
		case core.EventLifeLost:
			r.logger.Debug("life lost", "lives", e.Value)
		case core.EventGameOver:
			r.logger.Info("game over", "score", result.State.Score, "level", result.State.Level)
			r.save(result.State)
		case core.EventRestart:
			r.logger.Info("round restarted")
			r.roundStart = r.tick
			r.saved = false
		}
	}
	if r.opts.Cues != nil && len(result.Events) > 0 {
		r.opts.Cues.Play(result.Events)
	}
}

// save records a finished round once. Rounds without points are skipped.
func (r *Recorder) save(st core.GameState) {
	if r.saved || r.opts.Store == nil || st.Score <= 0 {
		return
	}
	r.saved = true

	_, err := r.opts.Store.SaveRound(storage.RoundResult{
		GameID: r.gameID,
		Score:  st.Score,
		Level:  st.Level,
		Ticks:  int64(r.tick - r.roundStart), //#nosec G115 -- tick counts fit in int64
		Seed:   r.seed,
	})
	if err != nil {
		// Best-effort save, game continues regardless
		r.logger.Warn("cannot save score", "err", err)
		return
	}
	r.logger.Info("score saved", "score", st.Score)
}
