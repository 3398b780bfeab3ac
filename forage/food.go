package forage

import "math/rand"

// PlaceFood draws count food positions. Rows and columns are drawn from
// [1, dim-1] so food never spawns on the origin. Two items may share a cell.
func PlaceFood(rng *rand.Rand, dim, count int) []Position {
	food := make([]Position, count)
	for i := range food {
		food[i] = Position{
			Row: 1 + rng.Intn(dim-1),
			Col: 1 + rng.Intn(dim-1),
		}
	}
	return food
}

// FoodSet is the food still available to one episode or extraction run.
// Items are kept in order; a cell holding two items must be entered twice.
type FoodSet struct {
	items []Position
}

// NewFoodSet copies positions into a new set.
func NewFoodSet(positions []Position) *FoodSet {
	return &FoodSet{items: append([]Position(nil), positions...)}
}

// Has reports whether food remains at pos.
func (f *FoodSet) Has(pos Position) bool {
	for _, p := range f.items {
		if p == pos {
			return true
		}
	}
	return false
}

// Take consumes the first food item at pos and reports whether there was one.
func (f *FoodSet) Take(pos Position) bool {
	for i, p := range f.items {
		if p == pos {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of items left.
func (f *FoodSet) Len() int {
	return len(f.items)
}

// Positions returns a copy of the remaining items.
func (f *FoodSet) Positions() []Position {
	return append([]Position(nil), f.items...)
}
