package domain

// SampleStatus is the processing state of a lab sample.
type SampleStatus string

const (
	SampleCompleted  SampleStatus = "completed"
	SampleInProgress SampleStatus = "in-progress"
	SamplePending    SampleStatus = "pending"
	SampleFailed     SampleStatus = "failed"
)

// Sample is a mock lab sample shown behind the guarded routes.
type Sample struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Date        string       `json:"date"`
	Status      SampleStatus `json:"status"`
	Type        string       `json:"type"`
	BatchNumber string       `json:"batchNumber"`
	CollectedBy string       `json:"collectedBy"`
}

// TrendPoint is one point of the samples-processed trend.
type TrendPoint struct {
	Date  string `json:"date"`
	Value int    `json:"value"`
}

// MonthlyStat is a per-month outcome breakdown used by reports.
type MonthlyStat struct {
	Month     string `json:"month"`
	Completed int    `json:"completed"`
	Pending   int    `json:"pending"`
	Failed    int    `json:"failed"`
}

// DistributionSlice is one slice of the results distribution.
type DistributionSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}
