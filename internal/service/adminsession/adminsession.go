package adminsession

import (
	"sync"
	"time"
)

// State is where a single admin's multi-step flow currently sits.
type State string

const (
	Idle                        State = "idle"
	AwaitingChannelInfo         State = "awaiting_channel_info"
	AwaitingChannelRemovalIndex State = "awaiting_channel_removal_index"
	AwaitingOrderIDForComplete  State = "awaiting_order_id_for_complete"
	AwaitingOrderIDForCancel    State = "awaiting_order_id_for_cancel"
	AwaitingBroadcastBody       State = "awaiting_broadcast_body"
	AwaitingPointsTargetUser    State = "awaiting_points_target_user"
	AwaitingPointsAmount        State = "awaiting_points_amount"
)

// Event is an admin command or a reply to a pending prompt.
type Event string

const (
	EventAddChannel    Event = "add_channel"
	EventRemoveChannel Event = "remove_channel"
	EventCompleteOrder Event = "complete_order"
	EventCancelOrder   Event = "cancel_order"
	EventBroadcast     Event = "broadcast"
	EventAdjustPoints  Event = "adjust_points"
	EventInput         Event = "input"
	EventCancel        Event = "cancel"
)

// transitions is the full table. Any (state, event) pair absent here is
// out of band and resets the session to Idle.
var transitions = map[State]map[Event]State{
	Idle: {
		EventAddChannel:    AwaitingChannelInfo,
		EventRemoveChannel: AwaitingChannelRemovalIndex,
		EventCompleteOrder: AwaitingOrderIDForComplete,
		EventCancelOrder:   AwaitingOrderIDForCancel,
		EventBroadcast:     AwaitingBroadcastBody,
		EventAdjustPoints:  AwaitingPointsTargetUser,
		EventCancel:        Idle,
	},
	AwaitingChannelInfo:         {EventInput: Idle, EventCancel: Idle},
	AwaitingChannelRemovalIndex: {EventInput: Idle, EventCancel: Idle},
	AwaitingOrderIDForComplete:  {EventInput: Idle, EventCancel: Idle},
	AwaitingOrderIDForCancel:    {EventInput: Idle, EventCancel: Idle},
	AwaitingBroadcastBody:       {EventInput: Idle, EventCancel: Idle},
	AwaitingPointsTargetUser: {
		EventInput:  AwaitingPointsAmount,
		EventCancel: Idle,
	},
	AwaitingPointsAmount: {EventInput: Idle, EventCancel: Idle},
}

type session struct {
	state   State
	touched time.Time
}

// Machine holds one session per admin. Sessions idle out after ttl and
// are treated as Idle on next touch.
type Machine struct {
	mu       sync.Mutex
	sessions map[int64]*session
	ttl      time.Duration
	now      func() time.Time
}

func New(ttl time.Duration) *Machine {
	return &Machine{
		sessions: make(map[int64]*session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Current reports the actor's state without advancing it. Expired sessions
// read as Idle.
func (m *Machine) Current(actorID int64) State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lookup(actorID).state
}

// Step applies ev to the actor's session and returns the resulting state.
// Accepted reports whether the table had a transition for the pair; when
// false the session has been reset to Idle.
func (m *Machine) Step(actorID int64, ev Event) (state State, accepted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.lookup(actorID)
	next, ok := transitions[s.state][ev]
	if !ok {
		next = Idle
	}
	s.state = next
	s.touched = m.now()
	m.sessions[actorID] = s
	if next == Idle {
		delete(m.sessions, actorID)
	}
	return next, ok
}

// Reset drops the actor's session outright.
func (m *Machine) Reset(actorID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, actorID)
}

func (m *Machine) lookup(actorID int64) *session {
	s, ok := m.sessions[actorID]
	if !ok {
		return &session{state: Idle}
	}
	if m.ttl > 0 && m.now().Sub(s.touched) > m.ttl {
		delete(m.sessions, actorID)
		return &session{state: Idle}
	}
	return s
}
