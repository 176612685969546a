package buffer

import (
	"context"

	"github.com/looplab/fsm"

	"beagle/internal/config/logger"
)

// FSM states
const (
	Active   = "active"
	Frozen   = "frozen"
	Disposed = "disposed"
)

// FSM events
const (
	Select  = "select"
	Release = "release"
	Dispose = "dispose"
)

// newLifecycleFSM creates the buffer state machine, starting in the active state
func newLifecycleFSM(log logger.Logger) *fsm.FSM {
	return fsm.NewFSM(
		Active,
		fsm.Events{
			{Name: Select, Src: []string{Active}, Dst: Frozen},
			{Name: Release, Src: []string{Frozen}, Dst: Active},
			{Name: Dispose, Src: []string{Active, Frozen}, Dst: Disposed},
		},
		fsm.Callbacks{
			"after_event": func(ctx context.Context, e *fsm.Event) {
				log.Debug().Msgf("STATE %s → %s (trigger: %s)", e.Src, e.Dst, e.Event)
			},
		},
	)
}

// fire triggers a transition; transitions not allowed from the current state are ignored
func fire(machine *fsm.FSM, event string, log logger.Logger) {
	if !machine.Can(event) {
		log.Debug().Str("state", machine.Current()).Str("event", event).Msg("Ignored lifecycle event")
		return
	}

	if err := machine.Event(context.Background(), event); err != nil {
		log.Debug().Err(err).Str("event", event).Msg("Lifecycle transition failed")
	}
}
