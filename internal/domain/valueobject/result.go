package valueobject

type OpStatus int

const (
	// OpStatusSkipped marks operations never attempted because the run
	// stopped before reaching them.
	OpStatusSkipped OpStatus = iota
	OpStatusApplied
	OpStatusFailed
)

func (s OpStatus) String() string {
	switch s {
	case OpStatusApplied:
		return "applied"
	case OpStatusFailed:
		return "failed"
	case OpStatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Result is the outcome of one change operation.
type Result struct {
	Change *Change
	Status OpStatus
	Err    error
}

type Verdict int

const (
	VerdictFull Verdict = iota
	VerdictPartial
	VerdictFailed
)

func (v Verdict) String() string {
	switch v {
	case VerdictFull:
		return "full"
	case VerdictPartial:
		return "partial"
	case VerdictFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Summary aggregates the per-operation outcomes of one reconciliation run.
type Summary struct {
	Zone    string
	Results []*Result
}

func (s *Summary) Applied() int { return s.count(OpStatusApplied) }
func (s *Summary) Failed() int  { return s.count(OpStatusFailed) }
func (s *Summary) Skipped() int { return s.count(OpStatusSkipped) }

func (s *Summary) count(status OpStatus) int {
	n := 0
	for _, r := range s.Results {
		if r.Status == status {
			n++
		}
	}
	return n
}

// Verdict is Full when every operation applied, Failed when none did, and
// Partial otherwise. An empty run is Full: nothing to do is success.
func (s *Summary) Verdict() Verdict {
	applied := s.Applied()
	switch {
	case applied == len(s.Results):
		return VerdictFull
	case applied == 0:
		return VerdictFailed
	default:
		return VerdictPartial
	}
}
