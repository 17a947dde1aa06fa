package statemachine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type counter struct {
	value int
}

func countingUpTo3(entity *counter, callback func(string, StateEvent)) StateFn[counter] {
	entity.value++
	if callback != nil {
		callback("counting", StateEntered)
	}
	if entity.value >= 3 {
		return nil
	}
	return countingUpTo3
}

func TestDispatchAdvancesUntilTerminal(t *testing.T) {
	c := &counter{}
	sm := NewStateMachine(c, countingUpTo3)

	require.False(t, sm.IsTerminal())
	sm.Dispatch(nil)
	require.Equal(t, 1, c.value)
	sm.Dispatch(nil)
	sm.Dispatch(nil)
	require.Equal(t, 3, c.value)
	require.True(t, sm.IsTerminal())

	// Dispatching a terminal machine is a no-op.
	sm.Dispatch(nil)
	require.Equal(t, 3, c.value)
}

func TestDispatchInvokesCallback(t *testing.T) {
	c := &counter{}
	sm := NewStateMachine(c, countingUpTo3)

	var seen []string
	sm.Dispatch(func(name string, event StateEvent) {
		seen = append(seen, name)
		require.Equal(t, StateEntered, event)
	})
	require.Equal(t, []string{"counting"}, seen)
}

func TestSetStateForcesImmediateDispatch(t *testing.T) {
	c := &counter{}
	sm := NewStateMachine(c, countingUpTo3)

	sm.SetState(func(entity *counter, callback func(string, StateEvent)) StateFn[counter] {
		entity.value = 100
		return nil
	})
	require.Equal(t, 100, c.value)
	require.True(t, sm.IsTerminal())
	require.Nil(t, sm.GetCurrentState())
}
