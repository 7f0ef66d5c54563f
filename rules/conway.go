package rules

/*
ApplyConwayRules decides whether a cell is alive in the next generation.

Exactly three live neighbors always yields a live cell, whether the cell was dead
(birth) or alive (survival). Exactly two keeps the cell in whatever state it is
already in. Any other count leaves it dead.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	switch neighbors {
	case 3:
		return true
	case 2:
		return alive
	default:
		return false
	}
}
