package schedule

import "github.com/quicklic/clinic-scheduler/internal/httperr"

// Status codes are the 4-char wire values mobile clients already
// depend on.
type Status string

const (
	StatusPending   Status = "PEND"
	StatusConfirmed Status = "CONF"
	StatusNoShow    Status = "NOSW"
	StatusCancelled Status = "CANC"
	StatusDiscarded Status = "DISC"
	StatusDone      Status = "DONE"
)

type Actor int

const (
	ActorDoctor Actor = iota
	ActorPatient
	ActorSystem
)

func InitialStatus() Status {
	return StatusPending
}

func IsTerminal(s Status) bool {
	switch s {
	case StatusNoShow, StatusCancelled, StatusDiscarded, StatusDone:
		return true
	}
	return false
}

// ActiveStatuses are the two non-terminal states; only these occupy
// the doctor's calendar.
func ActiveStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed}
}

// CanTransition validates a lifecycle transition before any mutation.
//
//	PENDING   -> CONFIRMED | NOSHOW | DISCARD (doctor), CANCEL (patient), DISCARD (system)
//	CONFIRMED -> DONE | NOSHOW | DISCARD | CONFIRMED (doctor), CANCEL (patient), DISCARD (system)
//
// Terminal states admit nothing.
func CanTransition(from, to Status, by Actor) error {
	if IsTerminal(from) {
		return httperr.ErrBusiness("invalid_status_transition")
	}
	if from != StatusPending && from != StatusConfirmed {
		return httperr.ErrBusiness("invalid_status_transition")
	}

	switch by {
	case ActorDoctor:
		switch to {
		case StatusConfirmed, StatusNoShow, StatusDiscarded:
			return nil
		case StatusDone:
			if from == StatusConfirmed {
				return nil
			}
		}
	case ActorPatient:
		if to == StatusCancelled {
			return nil
		}
	case ActorSystem:
		if to == StatusDiscarded {
			return nil
		}
	}

	return httperr.ErrBusiness("invalid_status_transition")
}
