package engine

import "dungeon-crawl/systems"

// RunState is the turn scheduler's state.
type RunState int

const (
	PreRun RunState = iota
	AwaitingInput
	PlayerTurn
	MonsterTurn
)

func (s RunState) String() string {
	switch s {
	case PreRun:
		return "PreRun"
	case AwaitingInput:
		return "AwaitingInput"
	case PlayerTurn:
		return "PlayerTurn"
	case MonsterTurn:
		return "MonsterTurn"
	default:
		return "unknown"
	}
}

// Intent is one decoded player action.
type Intent int

const (
	IntentNone Intent = iota
	IntentNorth
	IntentSouth
	IntentWest
	IntentEast
	IntentNorthWest
	IntentNorthEast
	IntentSouthWest
	IntentSouthEast
	IntentWait
)

var intentDirections = map[Intent]systems.Direction{
	IntentNorth:     systems.DirUp,
	IntentSouth:     systems.DirDown,
	IntentWest:      systems.DirLeft,
	IntentEast:      systems.DirRight,
	IntentNorthWest: systems.DirUpLeft,
	IntentNorthEast: systems.DirUpRight,
	IntentSouthWest: systems.DirDownLeft,
	IntentSouthEast: systems.DirDownRight,
}

// Direction returns the movement direction of a step intent, or DirNone.
func (i Intent) Direction() systems.Direction {
	return intentDirections[i]
}

func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "none"
	case IntentWait:
		return "wait"
	case IntentNorth:
		return "north"
	case IntentSouth:
		return "south"
	case IntentWest:
		return "west"
	case IntentEast:
		return "east"
	case IntentNorthWest:
		return "northwest"
	case IntentNorthEast:
		return "northeast"
	case IntentSouthWest:
		return "southwest"
	case IntentSouthEast:
		return "southeast"
	default:
		return "unknown"
	}
}
