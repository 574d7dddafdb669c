package notification

import "go.uber.org/zap"

// Event is one pending notification. ActorName and QID feed the
// message templates.
type Event struct {
	UserID        uint
	AppointmentID *uint
	Kind          Kind
	ActorName     string
	QID           string
}

type sink interface {
	Write(ev Event) error
}

// Dispatcher delivers notifications asynchronously and best-effort:
// delivery failures are logged, never propagated, and a full queue
// drops the event rather than block the request path.
type Dispatcher struct {
	sink  sink
	log   *zap.Logger
	queue chan Event
}

func NewDispatcher(sink sink, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		log:   log,
		queue: make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.sink.Write(ev); err != nil {
			d.log.Error("notification delivery failed",
				zap.Uint("user_id", ev.UserID),
				zap.String("kind", string(ev.Kind)),
				zap.Error(err),
			)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.log.Warn("notification queue full, dropping event",
			zap.Uint("user_id", ev.UserID),
			zap.String("kind", string(ev.Kind)),
		)
	}
}
