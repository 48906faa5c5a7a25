package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// CheckCollision reports whether two entities overlap: the distance between
// their centers is strictly less than the sum of their radii.
func CheckCollision(a, b Collider) bool {
	ea, eb := a.Body(), b.Body()
	return core.Distance(ea.Position, eb.Position) < ea.radius+eb.radius
}

// ResolveCollisions kills both members of every overlapping pair drawn from
// the two groups and returns the number of pairs resolved.
//
// Groups are walked in reverse index order. Dead entities are skipped, so an
// entity dies (and notifies) at most once and a bullet stops at its first hit.
// Nothing is removed from either slice; owners compact on their own pass.
func ResolveCollisions[A, B Collider](groupA []A, groupB []B) int {
	hits := 0
	for i := len(groupA) - 1; i >= 0; i-- {
		a := groupA[i].Body()
		for j := len(groupB) - 1; j >= 0 && a.Alive(); j-- {
			b := groupB[j].Body()
			if !b.Alive() || !CheckCollision(a, b) {
				continue
			}
			a.Die()
			b.Die()
			hits++
		}
	}
	return hits
}
