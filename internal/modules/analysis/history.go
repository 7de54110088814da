package analysis

// HistoricalEvent is one reference hurricane with its average claims paid,
// shown alongside simulated results for context.
type HistoricalEvent struct {
	Event            string  `json:"event"`
	AvgClaimsPaidUSD float64 `json:"avg_claims_paid_usd"`
	ZoneImpacted     string  `json:"zone_impacted"`
}

// HistoricalEvents returns the static comparison table of recent major
// Florida hurricane losses.
func HistoricalEvents() []HistoricalEvent {
	return []HistoricalEvent{
		{Event: "Hurricane Ian (2022)", AvgClaimsPaidUSD: 1.095e8, ZoneImpacted: "South"},
		{Event: "Hurricane Michael (2018)", AvgClaimsPaidUSD: 1.84e8, ZoneImpacted: "Central"},
	}
}
