package models

// User is an admin account. The public site has no user concept; users exist
// only to gate the back-office.
type User struct {
	BaseModel
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Name         string `gorm:"type:varchar(255)" json:"name,omitempty"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
}
