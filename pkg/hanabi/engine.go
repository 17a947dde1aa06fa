package hanabi

import (
	"os"
	"sync"

	"github.com/decred/slog"

	"github.com/vctt94/hanabi-engine/pkg/statemachine"
)

// EngineStateFn is the status state-function type for Engine, following
// the teacher's Rob Pike pattern (see pkg/statemachine).
type EngineStateFn = statemachine.StateFn[Engine]

// Engine owns one game's complete state and is the only way to mutate
// or observe it. It is safe for concurrent use: every exported method
// takes the engine's lock before touching state, the same discipline
// the teacher's Game and Player types apply even though a single table
// is only ever driven by one actor at a time.
type Engine struct {
	mu    sync.RWMutex
	state HanabiState
	log   slog.Logger

	// debugChecks, when set, runs the full invariant checker after
	// every action in addition to at restore time (spec §2).
	debugChecks bool

	sm *statemachine.StateMachine[Engine]
}

// defaultLogger builds a quiet stderr logger, used when no logger is
// supplied to a constructor. Grounded on the teacher's
// pkg/poker/game_test.go createTestLogger helper.
func defaultLogger() slog.Logger {
	backend := slog.NewBackend(os.Stderr)
	log := backend.Logger("hanabi")
	log.SetLevel(slog.LevelError)
	return log
}

func newEngineFromValidatedState(state HanabiState) *Engine {
	e := &Engine{state: state, log: defaultLogger()}
	e.sm = statemachine.NewStateMachine(e, stateFnFor(state.Status))
	return e
}

// SetLogger installs a logger the engine uses for its own internal
// lifecycle notices (terminal transitions and entering the last round,
// at debug level). The engine never logs the errors it returns to
// callers.
func (e *Engine) SetLogger(log slog.Logger) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.log = log
}

// SetDebugChecks toggles running the invariant checker after every
// action, for debug builds per spec §2.
func (e *Engine) SetDebugChecks(on bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.debugChecks = on
}

// FromState deep-copies state, validates every invariant in spec §3,
// and returns an Engine over the accepted copy, or ErrInvalidSnapshot
// identifying the first violated invariant.
func FromState(state HanabiState) (*Engine, error) {
	copied := state.clone()
	if err := CheckInvariants(&copied); err != nil {
		return nil, err
	}
	return newEngineFromValidatedState(copied), nil
}

// GetSnapshot returns a deep copy of the engine's current state.
// Mutating the returned value never affects the engine.
func (e *Engine) GetSnapshot() HanabiState {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state.clone()
}

// IsGameOver reports whether the game has reached an absorbing status.
func (e *Engine) IsGameOver() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state.Status.terminal()
}

// GetScore returns the sum of firework heights over active suits.
func (e *Engine) GetScore() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return scoreOf(&e.state)
}

func scoreOf(state *HanabiState) int {
	total := 0
	for _, suit := range state.Settings.ActiveSuits {
		total += len(state.Fireworks[suit])
	}
	return total
}

func (e *Engine) currentPlayer() *Player {
	if e.state.CurrentTurnPlayerIdx < 0 || e.state.CurrentTurnPlayerIdx >= len(e.state.Players) {
		return nil
	}
	return &e.state.Players[e.state.CurrentTurnPlayerIdx]
}

func (e *Engine) playerByID(id string) (*Player, int) {
	for i := range e.state.Players {
		if e.state.Players[i].ID == id {
			return &e.state.Players[i], i
		}
	}
	return nil, -1
}

func (e *Engine) appendLog(entry LogEntry) {
	e.state.Logs = append(e.state.Logs, entry)
}

func (e *Engine) nextLogID() string {
	id := formatLogID(e.state.NextLogID)
	e.state.NextLogID++
	return id
}

func (e *Engine) base() baseLogEntry {
	return baseLogEntry{ID: e.nextLogID(), Turn: e.state.Turn}
}
