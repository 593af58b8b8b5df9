package extractor

// Outcome of probing the embedded state blocks of a page.
type Outcome int

const (
	// No state block on the page, or none of the known shapes held a media URL
	OutcomeNotFound Outcome = iota
	OutcomeFound
	// A state block was present but its contents were not valid JSON
	OutcomeMalformed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeMalformed:
		return "malformed"
	default:
		return "not_found"
	}
}

type StageResult struct {
	Outcome Outcome
	URL     string
	// Which state block and strategy produced URL, e.g. "SIGI_STATE/itemModule"
	Source string
}

type Stage string

const (
	StageStructured Stage = "structured"
	StageFallback   Stage = "fallback"
)
