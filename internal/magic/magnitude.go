// Package magic computes the level of magical effect definitions and the
// casting totals of the characters who cast them.
package magic

// linearCap is the running level up to which a contribution adds one level per unit
const linearCap = 5

// magnitude is the number of levels one unit adds past the linear region
const magnitude = 5

// AddMagnitude folds one contribution into a running level. Each unit adds one
// level while the running level is below five and a full magnitude (five
// levels) after that, stepping one unit at a time.
func AddMagnitude(base, contribution int) int {
	if contribution <= 0 {
		return base
	}
	if base+contribution <= linearCap {
		return base + contribution
	}

	total := base
	for i := 0; i < contribution; i++ {
		if total < linearCap {
			total++
		} else {
			total += magnitude
		}
	}
	return total
}

// FoldMagnitudes applies AddMagnitude left to right over the contributions
func FoldMagnitudes(base int, contributions ...int) int {
	total := base
	for _, c := range contributions {
		total = AddMagnitude(total, c)
	}
	return total
}
