package domain

// User is the authenticated payer, provided by the caller. Account management
// itself belongs to the hosted backend, not to this module.
type User struct {
	ID    string
	Name  string
	Email string
}
