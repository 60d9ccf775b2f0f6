package domain

import "time"

// User is the credential record behind a login. Role, sector and title are
// copied into token claims at login time.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	SectorID     int64
	Title        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
