package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRemotePayloads(t *testing.T) {
	var posts []Post
	require.NoError(t, json.Unmarshal([]byte(`[{"userId":1,"id":7,"title":"t","body":"b"}]`), &posts))
	require.Len(t, posts, 1)
	assert.Equal(t, Post{ID: 7, UserID: 1, Title: "t", Body: "b"}, posts[0])

	var comments []Comment
	require.NoError(t, json.Unmarshal([]byte(`[{"postId":7,"id":3,"name":"n","email":"e@x","body":"b"}]`), &comments))
	assert.Equal(t, 7, comments[0].PostID)

	var users []User
	require.NoError(t, json.Unmarshal([]byte(`[{"id":1,"name":"Leanne","email":"l@x","username":"Bret"}]`), &users))
	assert.Equal(t, "Leanne", users[0].Name)
}

func TestField(t *testing.T) {
	u := User{ID: 4, Name: "Anna", Email: "anna@example.com"}

	v, ok := u.Field("id")
	assert.True(t, ok)
	assert.Equal(t, "4", v)

	v, ok = u.Field("email")
	assert.True(t, ok)
	assert.Equal(t, "anna@example.com", v)

	_, ok = u.Field("Email")
	assert.False(t, ok, "field names are case-sensitive")

	_, ok = Post{}.Field("User")
	assert.False(t, ok)

	v, _ = Comment{PostID: 12}.Field("postId")
	assert.Equal(t, "12", v)
}

func TestParseResource(t *testing.T) {
	r, err := ParseResource("posts")
	require.NoError(t, err)
	assert.Equal(t, Posts, r)
	assert.Equal(t, PostFields, r.Fields())

	_, err = ParseResource("albums")
	assert.Error(t, err)
}
