package models

import "fmt"

// Resource identifies one of the fetched collections
type Resource string

const (
	Users    Resource = "users"
	Posts    Resource = "posts"
	Comments Resource = "comments"
)

// Resources lists every collection in display order
var Resources = []Resource{Users, Posts, Comments}

// ParseResource converts a path segment into a Resource
func ParseResource(s string) (Resource, error) {
	switch Resource(s) {
	case Users, Posts, Comments:
		return Resource(s), nil
	}
	return "", fmt.Errorf("unknown resource %q", s)
}

// Fields returns the filterable attributes of the resource
func (r Resource) Fields() []string {
	switch r {
	case Users:
		return UserFields
	case Posts:
		return PostFields
	case Comments:
		return CommentFields
	}
	return nil
}

func (r Resource) String() string {
	return string(r)
}
