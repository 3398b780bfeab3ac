package forage

// MaxPathLength bounds the greedy walk on a dim×dim grid.
func MaxPathLength(dim int) int {
	return 2 * dim * dim
}

// ExtractPath walks the greedy policy of a copy of table from the origin and
// returns the action names taken. The copy keeps learning along the way and
// food eaten on the walk is not offered again, so the agent does not circle
// the same item forever. The walk stops on the far corner or after
// MaxPathLength steps.
func ExtractPath(grid Grid, table *QTable, food []Position) []string {
	r := newRollout(grid, table.Clone(), food)
	limit := MaxPathLength(grid.Dimension)
	corner := grid.Corner()

	path := make([]string, 0, limit)
	for steps := 0; steps < limit; steps++ {
		a := r.table.ArgMax(r.pos)
		path = append(path, a.String())
		r.step(a, extractionSchedule)
		if r.pos == corner {
			break
		}
	}
	return path
}
