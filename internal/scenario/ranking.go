package scenario

// Ranking groups one analysis response's scenarios by type and selects the
// best-in-category references. Best pointers alias the input slice; they are
// references, not copies.
type Ranking struct {
	Flips      []*Scenario
	Rentals    []*Scenario
	Wholesales []*Scenario

	BestOverall *Scenario
	BestFlip    *Scenario
	BestRental  *Scenario
}

// Rank partitions scenarios by type, preserving the backend's order within
// each group. The backend is the rank authority for cross-type comparison:
// BestOverall is the first element of the raw list, never recomputed by
// comparing ROI against cash-on-cash. BestFlip and BestRental are the first
// of their partitions. Wholesale exposes no best: the assignment fee is not
// a rate metric. Ties resolve by list order, first wins; there is no
// secondary sort.
func Rank(list []Scenario) Ranking {
	var r Ranking
	for i := range list {
		s := &list[i]
		switch s.Type {
		case TypeRental:
			r.Rentals = append(r.Rentals, s)
		case TypeWholesale:
			r.Wholesales = append(r.Wholesales, s)
		default:
			r.Flips = append(r.Flips, s)
		}
	}
	if len(list) > 0 {
		r.BestOverall = &list[0]
	}
	if len(r.Flips) > 0 {
		r.BestFlip = r.Flips[0]
	}
	if len(r.Rentals) > 0 {
		r.BestRental = r.Rentals[0]
	}
	return r
}
