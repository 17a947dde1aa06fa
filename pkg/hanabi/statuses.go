package hanabi

import "github.com/vctt94/hanabi-engine/pkg/statemachine"

// Status transitions are decided by plain conditional logic in
// checkTerminal (mirroring the teacher's maybeAdvancePhase), which then
// calls e.sm.SetState(stateFnFor(status)) to keep the Rob-Pike state
// machine's current function in lockstep with e.state.Status — the
// same two-writes-together discipline the teacher applies to
// Game.phase and Game.stateMachine in maybeAdvancePhase.

func stateFnFor(status Status) EngineStateFn {
	switch status {
	case StatusActive:
		return stateActive
	case StatusLastRound:
		return stateLastRound
	case StatusWon:
		return stateWon
	case StatusLost:
		return stateLost
	case StatusFinished:
		return stateFinished
	default:
		return stateActive
	}
}

func stateActive(entity *Engine, callback func(string, statemachine.StateEvent)) EngineStateFn {
	if callback != nil {
		callback("ACTIVE", statemachine.StateEntered)
	}
	return stateActive
}

func stateLastRound(entity *Engine, callback func(string, statemachine.StateEvent)) EngineStateFn {
	if callback != nil {
		callback("LAST_ROUND", statemachine.StateEntered)
	}
	return stateLastRound
}

func stateWon(entity *Engine, callback func(string, statemachine.StateEvent)) EngineStateFn {
	if callback != nil {
		callback("WON", statemachine.StateEntered)
	}
	return nil
}

func stateLost(entity *Engine, callback func(string, statemachine.StateEvent)) EngineStateFn {
	if callback != nil {
		callback("LOST", statemachine.StateEntered)
	}
	return nil
}

func stateFinished(entity *Engine, callback func(string, statemachine.StateEvent)) EngineStateFn {
	if callback != nil {
		callback("FINISHED", statemachine.StateEntered)
	}
	return nil
}

// CurrentStateName returns the human-readable name of the engine's
// current status state function, primarily for logging/debugging.
func (e *Engine) CurrentStateName() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return string(e.state.Status)
}
