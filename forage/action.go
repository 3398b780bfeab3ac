package forage

// Action is one of the four grid moves.
type Action int

// Actions in table column order.
const (
	Up Action = iota
	Down
	Left
	Right
)

// NumActions is the size of the action dimension of the value table.
const NumActions = 4

var (
	actionNames = [NumActions]string{"up", "down", "left", "right"}

	actionDeltas = [NumActions]Position{
		{Row: -1, Col: 0},
		{Row: 1, Col: 0},
		{Row: 0, Col: -1},
		{Row: 0, Col: 1},
	}
)

// String returns the lowercase action name used in extracted paths.
func (a Action) String() string {
	if a < 0 || a >= NumActions {
		return "unknown"
	}
	return actionNames[a]
}

// ParseAction maps an action name back to its Action.
func ParseAction(name string) (Action, bool) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), true
		}
	}
	return 0, false
}
