package entity

// RegistryTotals are the headline dashboard counters.
type RegistryTotals struct {
	Records     int64
	Batches     int64
	Events      int64
	Connections int64
}

// LabelCount is a generic (label, count) aggregation row, used for gender,
// relationship-status, occupation and age-bucket breakdowns.
type LabelCount struct {
	Label string
	Count int64
}
