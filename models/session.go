package models

import "time"

// Session is a server-side login session. The cookie carries only the opaque
// token; everything else is resolved from this row.
type Session struct {
	BaseModel
	Token     string    `gorm:"type:varchar(36);uniqueIndex;not null"`
	UserID    uint      `gorm:"index;not null"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	ExpiresAt time.Time `gorm:"index;not null"`
}

// Expired reports whether the session is past its expiry.
func (s Session) Expired() bool {
	return time.Now().UTC().After(s.ExpiresAt)
}
