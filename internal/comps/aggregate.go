package comps

import "github.com/shopspring/decimal"

// DistanceRange is the min/max over comps that expose a distance. Absent
// entirely when no comp qualifies.
type DistanceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Aggregate holds derived statistics over one comp set. It is recomputed
// whenever the set changes and is never transmitted. Display values are
// rounded to whole units; the unrounded means are retained for any further
// computation.
type Aggregate struct {
	TotalFound          int            `json:"total_found"`
	Distance            *DistanceRange `json:"distance_range,omitempty"`
	AveragePrice        int64          `json:"average_price"`
	AveragePricePerSqft int64          `json:"average_price_per_sqft"`

	MeanPrice        decimal.Decimal `json:"-"`
	MeanPricePerSqft decimal.Decimal `json:"-"`
}

// Summarize computes the aggregate for a comp list. It is a pure function of
// its input: identical lists always yield identical aggregates.
func Summarize(list []Comp) Aggregate {
	agg := Aggregate{TotalFound: len(list)}

	priceSum, ppsfSum := decimal.Zero, decimal.Zero
	priceN, ppsfN := 0, 0
	for _, c := range list {
		if c.Price > 0 {
			priceSum = priceSum.Add(decimal.NewFromFloat(c.Price))
			priceN++
		}
		if c.PricePerSqft != nil {
			ppsfSum = ppsfSum.Add(decimal.NewFromFloat(*c.PricePerSqft))
			ppsfN++
		}
		if c.DistanceMiles != nil {
			d := *c.DistanceMiles
			if agg.Distance == nil {
				agg.Distance = &DistanceRange{Min: d, Max: d}
			} else {
				if d < agg.Distance.Min {
					agg.Distance.Min = d
				}
				if d > agg.Distance.Max {
					agg.Distance.Max = d
				}
			}
		}
	}

	if priceN > 0 {
		agg.MeanPrice = priceSum.Div(decimal.NewFromInt(int64(priceN)))
		agg.AveragePrice = agg.MeanPrice.Round(0).IntPart()
	}
	if ppsfN > 0 {
		agg.MeanPricePerSqft = ppsfSum.Div(decimal.NewFromInt(int64(ppsfN)))
		agg.AveragePricePerSqft = agg.MeanPricePerSqft.Round(0).IntPart()
	}
	return agg
}
