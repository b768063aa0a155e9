package models

import "strconv"

// Comment represents a comment attached to a post
type Comment struct {
	ID     int    `json:"id"`
	PostID int    `json:"postId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Body   string `json:"body"`
}

// SearchText returns the text free-text search runs against
func (c Comment) SearchText() string {
	return c.Name
}

// Field returns the named field rendered as a string
func (c Comment) Field(name string) (string, bool) {
	switch name {
	case "id":
		return strconv.Itoa(c.ID), true
	case "postId":
		return strconv.Itoa(c.PostID), true
	case "name":
		return c.Name, true
	case "email":
		return c.Email, true
	case "body":
		return c.Body, true
	}
	return "", false
}

// CommentFields lists the attributes a comment can be filtered on
var CommentFields = []string{"id", "postId", "name", "email", "body"}
