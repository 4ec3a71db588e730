package models

// User is a registered account in the local database. The password itself is
// never stored; Salt and Verifier are enough to check a login attempt.
type User struct {
	ID        string
	Email     string
	Name      string
	Salt      []byte
	Verifier  []byte
	Confirmed bool
}
