package models

// Account is an entry of the profile screen list. It lives in memory only.
type Account struct {
	ID    int64
	Name  string
	Email string
}
