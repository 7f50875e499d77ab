package specification

import "gorm.io/gorm"

// BySessionID filters message-log and summary rows by session identifier.
type BySessionID struct {
	SessionID string
}

func (s BySessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionID)
}
