package catalog

// Intn is the slice of math/rand used for random selection.
type Intn interface {
	Intn(n int) int
}

// PickRandom chooses a uniformly random record. ok is false on an empty set.
func PickRandom(results []Record, rng Intn) (rec Record, index int, ok bool) {
	if len(results) == 0 || rng == nil {
		return Record{}, -1, false
	}
	i := rng.Intn(len(results))
	return results[i], i, true
}
