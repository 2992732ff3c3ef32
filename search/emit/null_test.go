package emit

import "testing"

// TestNullEmitter_NoOp verifies NullEmitter discards all events without panicking.
func TestNullEmitter_NoOp(t *testing.T) {
	emitter := NewNullEmitter()

	events := []Event{
		{RunID: "run-001", Step: 1, Msg: MsgSearchStart},
		{RunID: "run-001", Step: 1000, Msg: MsgProgress, Meta: map[string]interface{}{"fringe_size": 10}},
		{RunID: "run-001", Step: 1200, State: "3", Msg: MsgGoalFound, Meta: nil},
	}
	for _, event := range events {
		emitter.Emit(event)
	}
}

// TestNullEmitter_InterfaceContract verifies NullEmitter implements Emitter.
func TestNullEmitter_InterfaceContract(t *testing.T) {
	var _ Emitter = NewNullEmitter()
}
