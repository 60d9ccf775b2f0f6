package domain

import "time"

// Comment is an append-only message in a ticket thread. AuthorID always
// comes from the verified principal, never from client input.
type Comment struct {
	ID        int64
	TicketID  int64
	AuthorID  int64
	Message   string
	CreatedAt time.Time
}
