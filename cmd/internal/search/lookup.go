package search

import "github.com/hungpv1995/datagrid/cmd/internal/models"

// PostTitleFor returns the title of the post with the given id, or "" if absent
func PostTitleFor(posts []models.Post, id int) string {
	for _, p := range posts {
		if p.ID == id {
			return p.Title
		}
	}
	return ""
}

// CommentsForPost returns the comments attached to postID in collection order
func CommentsForPost(comments []models.Comment, postID int) []models.Comment {
	out := make([]models.Comment, 0)
	for _, c := range comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out
}

// UserNameFor returns the name of the user with the given id, or "" if absent
func UserNameFor(users []models.User, id int) string {
	for _, u := range users {
		if u.ID == id {
			return u.Name
		}
	}
	return ""
}
