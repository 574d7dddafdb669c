package notification

import "fmt"

type Kind string

const (
	KindCreated   Kind = "APPOINTMENT_CREATED"
	KindConfirmed Kind = "APPOINTMENT_CONFIRMED"
	KindCancelled Kind = "APPOINTMENT_CANCELED"
	KindNoShow    Kind = "APPOINTMENT_NOSHOW"
	KindDiscarded Kind = "APPOINTMENT_DISCARD"
	KindDone      Kind = "APPOINTMENT_DONE"
)

// Message renders the heading/content pair for a notification kind.
// Wording is kept identical to what the mobile apps already display.
func Message(kind Kind, actorName, qid string) (heading, content string) {
	switch kind {
	case KindCreated:
		return fmt.Sprintf("New appointment %s has been scheduled.", qid),
			fmt.Sprintf("%s has scheduled a new appointment %s with you.", actorName, qid)
	case KindConfirmed:
		return fmt.Sprintf("Appointment %s has been confirmed.", qid),
			fmt.Sprintf("%s has confirmed your appointment %s.", actorName, qid)
	case KindCancelled:
		return fmt.Sprintf("Appointment %s has been canceled.", qid),
			fmt.Sprintf("%s has canceled an appointment %s with you.", actorName, qid)
	case KindNoShow:
		return fmt.Sprintf("Appointment %s has been marked as no show.", qid),
			fmt.Sprintf("%s has marked your appointment %s as no show.", actorName, qid)
	case KindDiscarded:
		return fmt.Sprintf("Appointment %s has been discarded.", qid),
			fmt.Sprintf("%s has discarded your appointment %s.", actorName, qid)
	case KindDone:
		return fmt.Sprintf("Appointment %s has been completed.", qid),
			fmt.Sprintf("%s has completed your appointment %s.", actorName, qid)
	}
	return "", ""
}
