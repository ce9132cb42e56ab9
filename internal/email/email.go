package email

import (
	"context"
	"fmt"

	"github.com/hamzaht1/centre-formation-app-sub000/internal/events"
)

// Sender is the notification boundary. Actual mail delivery lives outside this
// service; the worker only formats and emits the notification.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event events.PlanningEvent) error {
	fmt.Printf("notify trainer %d: %s for session %d on %s %s-%s\n",
		event.TrainerID, event.Type, event.SessionID, event.Date, event.StartTime, event.EndTime)
	return nil
}
