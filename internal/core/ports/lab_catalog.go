package ports

import "github.com/datalab/sample-tracker/internal/core/domain"

// LabCatalog serves the mock lab data rendered behind protected routes.
type LabCatalog interface {
	Samples() []domain.Sample
	Sample(id string) (domain.Sample, bool)
	Trend() []domain.TrendPoint
	Monthly() []domain.MonthlyStat
	ResultsDistribution() []domain.DistributionSlice
}
