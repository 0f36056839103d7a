package notify

import (
	"context"
	"fmt"

	"github.com/Domenick1991/seatbook/internal/domain"
	"github.com/Domenick1991/seatbook/internal/logger"
)

// Notifier tells passengers about changes to their booking. Delivery is a log
// line for now.
type Notifier struct {
	log *logger.Logger
}

func NewNotifier(log *logger.Logger) *Notifier {
	return &Notifier{log: log}
}

func (n *Notifier) Send(ctx context.Context, event domain.BookingEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg, ok := message(event)
	if !ok {
		n.log.Debug("event not notifiable", "event_id", event.ID, "type", event.Type)
		return nil
	}

	n.log.Info("notify passenger",
		"event_id", event.ID,
		"passenger", event.PassengerName,
		"flight_id", event.FlightID,
		"message", msg,
	)
	return nil
}

func message(event domain.BookingEvent) (string, bool) {
	switch event.Type {
	case domain.EventSeatBooked:
		return fmt.Sprintf("your seat on flight %s is booked", event.FlightID), true
	case domain.EventBookingCancelled:
		return fmt.Sprintf("your booking on flight %s was cancelled", event.FlightID), true
	default:
		return "", false
	}
}
