package memory

import "github.com/datalab/sample-tracker/internal/core/domain"

// LabCatalog serves fixed mock lab data. It is never written to.
type LabCatalog struct {
	samples []domain.Sample
}

func NewLabCatalog() *LabCatalog {
	return &LabCatalog{samples: mockSamples}
}

func (c *LabCatalog) Samples() []domain.Sample {
	return append([]domain.Sample(nil), c.samples...)
}

func (c *LabCatalog) Sample(id string) (domain.Sample, bool) {
	for _, s := range c.samples {
		if s.ID == id {
			return s, true
		}
	}
	return domain.Sample{}, false
}

func (c *LabCatalog) Trend() []domain.TrendPoint {
	return append([]domain.TrendPoint(nil), mockTrend...)
}

func (c *LabCatalog) Monthly() []domain.MonthlyStat {
	return append([]domain.MonthlyStat(nil), mockMonthly...)
}

func (c *LabCatalog) ResultsDistribution() []domain.DistributionSlice {
	return append([]domain.DistributionSlice(nil), mockDistribution...)
}

var mockSamples = []domain.Sample{
	{ID: "S-23051", Name: "Water Quality Test", Date: "2023-05-15", Status: domain.SampleCompleted, Type: "water", BatchNumber: "B-2305-01", CollectedBy: "John Smith"},
	{ID: "S-23052", Name: "Soil Analysis", Date: "2023-05-16", Status: domain.SampleCompleted, Type: "soil", BatchNumber: "B-2305-02", CollectedBy: "Maria Garcia"},
	{ID: "S-23053", Name: "Air Particle Test", Date: "2023-05-18", Status: domain.SampleInProgress, Type: "air", BatchNumber: "B-2305-03", CollectedBy: "Robert Johnson"},
	{ID: "S-23054", Name: "Biological Culture", Date: "2023-05-20", Status: domain.SamplePending, Type: "tissue", BatchNumber: "B-2305-04", CollectedBy: "Jennifer Lee"},
	{ID: "S-23055", Name: "Chemical Analysis", Date: "2023-05-21", Status: domain.SampleFailed, Type: "water", BatchNumber: "B-2305-05", CollectedBy: "David Kim"},
	{ID: "S-23056", Name: "River Water Quality", Date: "2023-05-22", Status: domain.SampleCompleted, Type: "water", BatchNumber: "B-2305-06", CollectedBy: "Sarah Wilson"},
	{ID: "S-23057", Name: "Agricultural Soil Test", Date: "2023-05-23", Status: domain.SampleInProgress, Type: "soil", BatchNumber: "B-2305-07", CollectedBy: "Michael Brown"},
	{ID: "S-23058", Name: "Indoor Air Quality Test", Date: "2023-05-24", Status: domain.SamplePending, Type: "air", BatchNumber: "B-2305-08", CollectedBy: "Emily Davis"},
	{ID: "S-23059", Name: "Plant Tissue Culture", Date: "2023-05-25", Status: domain.SampleCompleted, Type: "tissue", BatchNumber: "B-2305-09", CollectedBy: "James Wilson"},
	{ID: "S-23060", Name: "Industrial Wastewater", Date: "2023-05-26", Status: domain.SampleInProgress, Type: "water", BatchNumber: "B-2305-10", CollectedBy: "Sophia Martinez"},
}

var mockTrend = []domain.TrendPoint{
	{Date: "Jan", Value: 45}, {Date: "Feb", Value: 52}, {Date: "Mar", Value: 49},
	{Date: "Apr", Value: 63}, {Date: "May", Value: 71}, {Date: "Jun", Value: 83},
	{Date: "Jul", Value: 78}, {Date: "Aug", Value: 91}, {Date: "Sep", Value: 102},
	{Date: "Oct", Value: 95}, {Date: "Nov", Value: 110}, {Date: "Dec", Value: 118},
}

var mockMonthly = []domain.MonthlyStat{
	{Month: "Jan", Completed: 32, Pending: 8, Failed: 2},
	{Month: "Feb", Completed: 35, Pending: 10, Failed: 3},
	{Month: "Mar", Completed: 38, Pending: 7, Failed: 2},
	{Month: "Apr", Completed: 42, Pending: 9, Failed: 4},
	{Month: "May", Completed: 48, Pending: 12, Failed: 3},
	{Month: "Jun", Completed: 52, Pending: 15, Failed: 5},
	{Month: "Jul", Completed: 58, Pending: 10, Failed: 3},
	{Month: "Aug", Completed: 65, Pending: 8, Failed: 2},
	{Month: "Sep", Completed: 70, Pending: 12, Failed: 4},
	{Month: "Oct", Completed: 76, Pending: 15, Failed: 6},
	{Month: "Nov", Completed: 82, Pending: 10, Failed: 3},
	{Month: "Dec", Completed: 88, Pending: 12, Failed: 4},
}

var mockDistribution = []domain.DistributionSlice{
	{Name: "Within Normal Range", Value: 145},
	{Name: "Slightly Elevated", Value: 35},
	{Name: "Moderately Elevated", Value: 28},
	{Name: "Significantly Elevated", Value: 15},
	{Name: "Below Detection Limit", Value: 12},
}
