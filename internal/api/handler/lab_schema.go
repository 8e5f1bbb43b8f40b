package handler

import "github.com/datalab/sample-tracker/internal/core/domain"

type accessNotice struct {
	AccessDenied  bool               `json:"accessDenied"`
	RequiredLevel domain.AccessLevel `json:"requiredLevel,omitempty"`
}

type statusCounts map[domain.SampleStatus]int

type dashboardResponse struct {
	User          *domain.Identity    `json:"user"`
	Notice        *accessNotice       `json:"notice,omitempty"`
	TotalSamples  int                 `json:"totalSamples"`
	ByStatus      statusCounts        `json:"byStatus"`
	RecentSamples []domain.Sample     `json:"recentSamples"`
	Trend         []domain.TrendPoint `json:"trend"`
}

type samplesResponse struct {
	Data  []domain.Sample `json:"data"`
	Total int             `json:"total"`
}

type databaseResponse struct {
	Data     []domain.Sample `json:"data"`
	ByStatus statusCounts    `json:"byStatus"`
	ByType   map[string]int  `json:"byType"`
}

type laboratoryResponse struct {
	AwaitingResults []domain.Sample `json:"awaitingResults"`
}

type reportsResponse struct {
	Monthly      []domain.MonthlyStat       `json:"monthly"`
	Distribution []domain.DistributionSlice `json:"distribution"`
	Trend        []domain.TrendPoint        `json:"trend"`
}

type settingsResponse struct {
	User     *domain.Identity `json:"user"`
	Sections []string         `json:"sections"`
}

// Form payloads. They are validated and acknowledged; nothing is stored.

type sampleRequest struct {
	Name          string `json:"name"          validate:"min=2"`
	Type          string `json:"type"          validate:"required"`
	Description   string `json:"description"`
	BatchNumber   string `json:"batchNumber"   validate:"required"`
	DateCollected string `json:"dateCollected" validate:"required"`
	Temperature   string `json:"temperature"`
	PH            string `json:"ph"`
	Notes         string `json:"notes"`
}

type labResultRequest struct {
	SampleID    string `json:"sampleId"    validate:"min=3"`
	LabType     string `json:"labType"     validate:"required,oneof=clinical research"`
	TestType    string `json:"testType"    validate:"required"`
	Value       string `json:"value"       validate:"required"`
	Units       string `json:"units"       validate:"required"`
	Notes       string `json:"notes"`
	CollectedBy string `json:"collectedBy" validate:"required"`
}

type profileRequest struct {
	Name       string `json:"name"       validate:"min=2"`
	Email      string `json:"email"      validate:"required,email"`
	Role       string `json:"role"       validate:"required"`
	Department string `json:"department"`
}

// notificationsRequest leaves a preference nil when the form omits it; the
// defaults apply.
type notificationsRequest struct {
	SampleCreated   *bool `json:"sampleCreated"`
	SampleUpdated   *bool `json:"sampleUpdated"`
	SampleCompleted *bool `json:"sampleCompleted"`
	ReportGenerated *bool `json:"reportGenerated"`
	SystemUpdates   *bool `json:"systemUpdates"`
}

type notificationPreferences struct {
	SampleCreated   bool `json:"sampleCreated"`
	SampleUpdated   bool `json:"sampleUpdated"`
	SampleCompleted bool `json:"sampleCompleted"`
	ReportGenerated bool `json:"reportGenerated"`
	SystemUpdates   bool `json:"systemUpdates"`
}

func (r notificationsRequest) resolve() notificationPreferences {
	return notificationPreferences{
		SampleCreated:   boolOr(r.SampleCreated, true),
		SampleUpdated:   boolOr(r.SampleUpdated, true),
		SampleCompleted: boolOr(r.SampleCompleted, true),
		ReportGenerated: boolOr(r.ReportGenerated, true),
		SystemUpdates:   boolOr(r.SystemUpdates, false),
	}
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

// acknowledgement is the toast shown after a form is accepted.
type acknowledgement struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type notificationsResponse struct {
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	Preferences notificationPreferences `json:"preferences"`
}
