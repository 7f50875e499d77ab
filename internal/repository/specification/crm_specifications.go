package specification

import "gorm.io/gorm"

// CustomerSearch matches customers whose name, email, phone or company
// contains the term, case-insensitive.
type CustomerSearch struct {
	Term string
}

func (s CustomerSearch) Apply(db *gorm.DB) *gorm.DB {
	like := "%" + s.Term + "%"
	return db.Where(
		"name ILIKE ? OR email ILIKE ? OR phone ILIKE ? OR company ILIKE ?",
		like, like, like, like,
	)
}

// ByKeyIn filters settings rows by a key whitelist.
type ByKeyIn struct {
	Keys []string
}

func (s ByKeyIn) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("key IN ?", s.Keys)
}

// ByEmail filters by email column (admin users).
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}
