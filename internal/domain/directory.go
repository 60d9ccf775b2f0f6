package domain

import "time"

// Sector is an organizational unit tickets are routed to.
type Sector struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

// Employee is a directory entry mirrored from the auth registry.
type Employee struct {
	ID        int64
	Name      string
	Email     string
	SectorID  int64
	Title     string
	CreatedAt time.Time
}
