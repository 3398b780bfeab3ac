/*
Package forage trains a tabular Q-learning agent that forages for food on a
square grid while its health drains, and extracts a greedy path from the
learned value table.

A training call owns all of its state: the value table, the food copies, the
health counter and the exploration rate. Randomness is injected through a
*rand.Rand so runs can be reproduced from a seed.
*/
package forage

import (
	"encoding/json"
	"fmt"
)

// Position is a (row, col) cell on the grid.
type Position struct {
	Row int `bson:"row"`
	Col int `bson:"col"`
}

// MarshalJSON encodes the position as a [row, col] pair.
func (p Position) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.Row, p.Col})
}

// UnmarshalJSON decodes a [row, col] pair.
func (p *Position) UnmarshalJSON(data []byte) error {
	var pair []int
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("position must have 2 coordinates, got %d", len(pair))
	}
	p.Row, p.Col = pair[0], pair[1]
	return nil
}

// Grid is the square world the agent moves in.
type Grid struct {
	Dimension int
}

// Move applies the action delta to pos and clamps each axis to the grid.
// There is no wraparound.
func (g Grid) Move(pos Position, a Action) Position {
	d := actionDeltas[a]
	return Position{
		Row: clamp(pos.Row+d.Row, 0, g.Dimension-1),
		Col: clamp(pos.Col+d.Col, 0, g.Dimension-1),
	}
}

// InBound reports whether pos lies on the grid.
func (g Grid) InBound(pos Position) bool {
	return pos.Row >= 0 && pos.Row < g.Dimension && pos.Col >= 0 && pos.Col < g.Dimension
}

// Origin is the start cell of every episode.
func (g Grid) Origin() Position {
	return Position{}
}

// Corner is the bottom-right cell that ends path extraction.
func (g Grid) Corner() Position {
	return Position{Row: g.Dimension - 1, Col: g.Dimension - 1}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
