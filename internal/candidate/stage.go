package candidate

// Stage is a generation phase. Stages run in declaration order and never
// repeat.
type Stage int

const (
	StageOne      Stage = iota // girl names
	StageTwo                   // boy names
	StageThree                 // case variants of cached names with numeric suffixes
	StageFour                  // general word dictionary
	StageFive                  // four-symbol alphanumeric brute force
	StageComplete              // terminal
)

func (s Stage) String() string {
	switch s {
	case StageOne:
		return "one"
	case StageTwo:
		return "two"
	case StageThree:
		return "three"
	case StageFour:
		return "four"
	case StageFive:
		return "five"
	case StageComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// advance returns the stage that follows an exhausted stage and whether the
// source should refill from it within the same call.
func advance(s Stage) (next Stage, retry bool) {
	switch s {
	case StageOne:
		return StageTwo, true
	case StageTwo:
		return StageThree, true
	case StageThree:
		return StageFour, true
	case StageFour:
		return StageFive, true
	default:
		return StageComplete, false
	}
}
