package models

import "strconv"

// User represents an account as returned by the remote API
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SearchText returns the text free-text search runs against
func (u User) SearchText() string {
	return u.Name
}

// Field returns the named field rendered as a string
func (u User) Field(name string) (string, bool) {
	switch name {
	case "id":
		return strconv.Itoa(u.ID), true
	case "name":
		return u.Name, true
	case "email":
		return u.Email, true
	}
	return "", false
}

// UserFields lists the attributes a user can be filtered on
var UserFields = []string{"id", "name", "email"}
