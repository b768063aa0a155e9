package models

import "strconv"

// Post represents a blog post as returned by the remote API
type Post struct {
	ID     int    `json:"id"`
	UserID int    `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// SearchText returns the text free-text search runs against
func (p Post) SearchText() string {
	return p.Title
}

// Field returns the named field rendered as a string
func (p Post) Field(name string) (string, bool) {
	switch name {
	case "id":
		return strconv.Itoa(p.ID), true
	case "userId":
		return strconv.Itoa(p.UserID), true
	case "title":
		return p.Title, true
	case "body":
		return p.Body, true
	}
	return "", false
}

// PostFields lists the attributes a post can be filtered on
var PostFields = []string{"id", "userId", "title", "body"}
