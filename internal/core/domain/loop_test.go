package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		from    LoopState
		outcome Outcome
		want    LoopState
	}{
		{StateEditing, OutcomeUnchanged, StateDone},
		{StateEditing, OutcomeChanged, StateCompiling},
		{StateCompiling, OutcomeFailed, StateEditing},
		{StateCompiling, OutcomeSucceeded, StateRasterizing},
		{StateRasterizing, OutcomeFailed, StateEditing},
		{StateRasterizing, OutcomeSucceeded, StateCopying},
		{StateCopying, OutcomeFailed, StateEditing},
		{StateCopying, OutcomeSucceeded, StateEditing},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"/"+string(tt.outcome), func(t *testing.T) {
			got, ok := Transition(tt.from, tt.outcome)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransition_Invalid(t *testing.T) {
	_, ok := Transition(StateDone, OutcomeChanged)
	assert.False(t, ok)

	_, ok = Transition(StateCompiling, OutcomeUnchanged)
	assert.False(t, ok)
}

func TestTransition_OnlyEditingCanFinish(t *testing.T) {
	for key, to := range transitions {
		if to == StateDone {
			assert.Equal(t, StateEditing, key.from)
			assert.Equal(t, OutcomeUnchanged, key.outcome)
		}
	}
}

func TestRequiresAcknowledgment(t *testing.T) {
	assert.False(t, RequiresAcknowledgment(StateEditing))
	assert.False(t, RequiresAcknowledgment(StateCompiling))
	assert.True(t, RequiresAcknowledgment(StateRasterizing))
	assert.True(t, RequiresAcknowledgment(StateCopying))
}

func TestLoopState_IsTerminal(t *testing.T) {
	assert.True(t, StateDone.IsTerminal())
	assert.False(t, StateEditing.IsTerminal())
}
