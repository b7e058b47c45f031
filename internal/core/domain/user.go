package domain

import "time"

// User mirrors an account of the external identity provider.
type User struct {
	UserID    string    `json:"id" db:"id"` // Primary Key (UUID issued by the identity provider)
	Email     string    `json:"email" db:"email"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// DemoUserID is the id the schema migration assigns to the seeded demo account.
const DemoUserID = "5ef288d4-e9eb-4e17-8d8a-bbe41073441a"
