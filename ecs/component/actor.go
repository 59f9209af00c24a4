package component

// ActorState is the behavior state of an actor.
type ActorState int

const (
	StateLocomotion ActorState = iota
	StateAttacking
)

func (s ActorState) String() string {
	switch s {
	case StateLocomotion:
		return "locomotion"
	case StateAttacking:
		return "attacking"
	default:
		return "unknown"
	}
}

// Trigger is a discrete event that may move an actor between states.
type Trigger int

const (
	// TriggerAttackPressed fires on the tick the attack control goes down.
	TriggerAttackPressed Trigger = iota
	// TriggerAttackFinished fires when the actor's own attack clip ends.
	TriggerAttackFinished
)

func (t Trigger) String() string {
	switch t {
	case TriggerAttackPressed:
		return "attack_pressed"
	case TriggerAttackFinished:
		return "attack_finished"
	default:
		return "unknown"
	}
}

type transitionKey struct {
	from    ActorState
	trigger Trigger
}

var actorTransitions = map[transitionKey]ActorState{
	{StateLocomotion, TriggerAttackPressed}:  StateAttacking,
	{StateAttacking, TriggerAttackFinished}: StateLocomotion,
}

// Next returns the state reached from s on t. Pairs without a transition,
// such as an attack press while already attacking, leave s unchanged.
func (s ActorState) Next(t Trigger) ActorState {
	if next, ok := actorTransitions[transitionKey{s, t}]; ok {
		return next
	}
	return s
}

// Actor is the behavior core of a controllable character.
type Actor struct {
	Archetype string
	MoveSpeed float64
	State     ActorState
	// AttackFacing is the facing captured when the current attack started.
	AttackFacing Facing
}

func (a *Actor) Attacking() bool {
	return a != nil && a.State == StateAttacking
}

var ActorComponent = NewComponent[Actor]()
