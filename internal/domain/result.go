package domain

// Status is the coarse outcome reported by the backend. It is an open set:
// values other than the constants below are legal and must be tolerated.
type Status string

const (
	StatusSuccess        Status = "success"
	StatusError          Status = "error"
	StatusPartialSuccess Status = "partial_success"
)

// ResultKind discriminates the shapes an AutomationResult can take.
type ResultKind string

const (
	KindStepBased  ResultKind = "steps"
	KindExtraction ResultKind = "extraction"
	KindError      ResultKind = "error"
	KindEmpty      ResultKind = "empty"
)

// AutomationResult is the backend payload. Optional fields are empty when
// absent; callers test presence through the Has* accessors only.
type AutomationResult struct {
	Status          Status
	OriginalCommand string
	Message         string
	Description     string
	FinalScreenshot string
	Screenshot      string

	Steps    []Step
	HasSteps bool

	Data    []DataEntry
	HasData bool

	// Raw is the verbatim response body.
	Raw []byte
}

func (r AutomationResult) HasMessage() bool         { return r.Message != "" }
func (r AutomationResult) HasDescription() bool     { return r.Description != "" }
func (r AutomationResult) HasFinalScreenshot() bool { return r.FinalScreenshot != "" }
func (r AutomationResult) HasScreenshot() bool      { return r.Screenshot != "" }

// Kind reports which union member the payload represents.
func (r AutomationResult) Kind() ResultKind {
	switch {
	case r.HasSteps:
		return KindStepBased
	case r.HasData:
		return KindExtraction
	case r.Status == StatusError:
		return KindError
	default:
		return KindEmpty
	}
}

// Step is one action taken during interactive automation.
type Step struct {
	Action  string
	Status  Status
	Details string
	Error   string
	Image   string
	// ExtractedData is the raw JSON value, nil when absent or null.
	ExtractedData []byte
}

func (s Step) HasDetails() bool       { return s.Details != "" }
func (s Step) HasError() bool         { return s.Error != "" }
func (s Step) HasImage() bool         { return s.Image != "" }
func (s Step) HasExtractedData() bool { return len(s.ExtractedData) > 0 }

// DataEntry is one named field of an extraction result, kept in backend order.
type DataEntry struct {
	Key   string
	Value []byte
}

// IsSequence reports whether the value is a JSON array.
func (e DataEntry) IsSequence() bool {
	return valueKind(e.Value) == kindArray
}

// Rows returns the display rows for the entry. Arrays yield one row per
// element; any other value yields a single row of compact JSON.
func (e DataEntry) Rows() []string {
	elements, ok := arrayElements(e.Value)
	if !ok {
		return []string{CompactJSON(e.Value)}
	}
	rows := make([]string, 0, len(elements))
	for _, element := range elements {
		rows = append(rows, naturalText(element))
	}
	return rows
}
