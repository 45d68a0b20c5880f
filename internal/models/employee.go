package models

import "strings"

// Employee represents one entry of the static fund directory. The roster is
// loaded once at startup and never mutated.
type Employee struct {
	Name       string
	Email      string
	Department string
}

// FirstName returns the token before the first space of the full name, used
// to fill template placeholders.
func (e Employee) FirstName() string {
	if i := strings.IndexByte(e.Name, ' '); i > 0 {
		return e.Name[:i]
	}
	return e.Name
}
