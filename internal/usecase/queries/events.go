package queries

import (
	"context"

	"vending-server/internal/domain/vending"
)

//go:generate mockgen -source=events.go -destination=../../../tests/mock/queries/events.go -package=queriesmock

// Mailbox holds undelivered events per character.
type Mailbox interface {
	Drain(charID int32) []vending.Event
}

type EventQueries interface {
	Drain(ctx context.Context, charID int32) []vending.Event
}

type eventQueriesImpl struct {
	mailbox Mailbox
}

func NewEventQueries(mailbox Mailbox) EventQueries {
	return &eventQueriesImpl{mailbox: mailbox}
}

func (q *eventQueriesImpl) Drain(_ context.Context, charID int32) []vending.Event {
	return q.mailbox.Drain(charID)
}
