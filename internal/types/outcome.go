package types

// Outcome is the non-error result of a relationship write.
type Outcome int

const (
	OutcomeCreated Outcome = iota
	OutcomeAlreadyExists
	OutcomeDeleted
	OutcomeUpdated
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeAlreadyExists:
		return "already_exists"
	case OutcomeDeleted:
		return "deleted"
	case OutcomeUpdated:
		return "updated"
	default:
		return "unknown"
	}
}
