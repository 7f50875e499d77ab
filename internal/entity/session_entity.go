package entity

import "time"

// Session is the registry row for one conversation thread.
type Session struct {
	Id            string
	UserId        *string
	UserEmail     *string
	UserName      *string
	StartedAt     time.Time
	LastMessageAt time.Time
}

// SessionOverview is derived by grouping the message log per session id.
// It exists only as a query result; sessions without messages never appear.
type SessionOverview struct {
	SessionId     string
	MessageCount  int64
	StartedAt     time.Time
	LastMessageAt time.Time
}
