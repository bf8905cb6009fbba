package plan

import "time"

// Version is the engine version recorded in run metadata.
const Version = "0.1.0"

// RunMetadata records how a plan was produced: the seed, a unique run id,
// timing, per-validator pass/fail, and generation statistics.
type RunMetadata struct {
	RunID string `json:"run_id"`
	Seed  int64  `json:"seed"`

	// Units for all coordinates and dimensions.
	Units string `json:"units"`

	// NorthDirection is degrees from the Y axis to north (0 = Y is north).
	NorthDirection float64 `json:"north_direction"`

	GeneratedAt time.Time `json:"generation_timestamp"`
	Version     string    `json:"version"`

	ValidationResults map[string]bool `json:"validation_results"`
	Statistics        map[string]any  `json:"statistics"`
}

// NewRunMetadata returns metadata for one run with empty result maps.
func NewRunMetadata(runID string, seed int64) *RunMetadata {
	return &RunMetadata{
		RunID:             runID,
		Seed:              seed,
		Units:             "meters",
		GeneratedAt:       time.Now().UTC(),
		Version:           Version,
		ValidationResults: make(map[string]bool),
		Statistics:        make(map[string]any),
	}
}

// AddValidation records a validator's pass/fail result.
func (m *RunMetadata) AddValidation(name string, passed bool) {
	m.ValidationResults[name] = passed
}

// AddStatistic records one generation statistic.
func (m *RunMetadata) AddStatistic(name string, value any) {
	m.Statistics[name] = value
}

// AllPassed reports whether every recorded validation passed. A run with
// no recorded validations counts as passed.
func (m *RunMetadata) AllPassed() bool {
	for _, ok := range m.ValidationResults {
		if !ok {
			return false
		}
	}
	return true
}
