package ranking

import "sort"

// ChatterStat is one chatter's sales over a window as read from the sales store.
type ChatterStat struct {
	Chatter    string
	Total      float64
	ActiveDays int
}

// DailyAverage is Total divided by the days the chatter had any sale.
func (s ChatterStat) DailyAverage() float64 {
	if s.ActiveDays <= 0 {
		return 0
	}
	return s.Total / float64(s.ActiveDays)
}

// RankedChatter is a ChatterStat with its 1-based rank and tier.
type RankedChatter struct {
	Rank         int     `json:"rank"`
	Tier         int     `json:"tier"`
	Chatter      string  `json:"chatter"`
	Total        float64 `json:"total"`
	ActiveDays   int     `json:"active_days"`
	DailyAverage float64 `json:"daily_average"`
}

// tierCutoffs are the cumulative rank percentiles of tiers 5 down to 2.
var tierCutoffs = []struct {
	percent int
	tier    int
}{
	{10, 5},
	{30, 4},
	{60, 3},
	{85, 2},
}

// TierFor returns the tier of the 1-based rank among n chatters.
// A rank falls inside a cutoff when the chatters above it cover less than
// the cutoff's share, so tier 5 always holds ceil(n/10) chatters.
func TierFor(rank, n int) int {
	for _, c := range tierCutoffs {
		if (rank-1)*100 < c.percent*n {
			return c.tier
		}
	}
	return 1
}

// Rank orders stats by daily average, highest first, and assigns tiers.
// Ties keep their input order.
func Rank(stats []ChatterStat) []RankedChatter {
	sorted := make([]ChatterStat, len(stats))
	copy(sorted, stats)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DailyAverage() > sorted[j].DailyAverage()
	})

	ranked := make([]RankedChatter, 0, len(sorted))
	for i, s := range sorted {
		ranked = append(ranked, RankedChatter{
			Rank:         i + 1,
			Tier:         TierFor(i+1, len(sorted)),
			Chatter:      s.Chatter,
			Total:        s.Total,
			ActiveDays:   s.ActiveDays,
			DailyAverage: s.DailyAverage(),
		})
	}
	return ranked
}
