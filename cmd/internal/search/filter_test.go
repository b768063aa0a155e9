package search

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hungpv1995/datagrid/cmd/internal/models"
	"github.com/stretchr/testify/assert"
)

func names(users []models.User) []string {
	out := make([]string, 0, len(users))
	for _, u := range users {
		out = append(out, u.Name)
	}
	return out
}

var sampleUsers = []models.User{
	{ID: 1, Name: "Anna", Email: "anna@example.com"},
	{ID: 2, Name: "Bob", Email: "bob@example.com"},
	{ID: 3, Name: "Anton", Email: "anton@example.com"},
	{ID: 4, Name: "Joanne", Email: "joanne@example.org"},
	{ID: 5, Name: "Brian", Email: "BRIAN@example.com"},
}

func TestFilterSearchIsCaseInsensitiveAndOrdered(t *testing.T) {
	users := []models.User{{Name: "Anna"}, {Name: "Bob"}, {Name: "Anton"}}

	got := names(Filter(users, Query{Term: "an"}))
	if diff := cmp.Diff([]string{"Anna", "Anton"}, got); diff != "" {
		t.Errorf("Filter() mismatch (-want +got):\n%s", diff)
	}

	got = names(Filter(users, Query{Term: "AN"}))
	assert.Equal(t, []string{"Anna", "Anton"}, got)
}

func TestFilterEmptyTermMatchesAll(t *testing.T) {
	assert.Equal(t, sampleUsers, Filter(sampleUsers, Query{}))
}

func TestFilterEmptyInputAndNoMatches(t *testing.T) {
	got := Filter([]models.User(nil), Query{Term: "x"})
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got = Filter(sampleUsers, Query{Term: "zzz"})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterSearchProperty(t *testing.T) {
	for _, term := range []string{"", "a", "AN", "n", "bri", "oa", "q"} {
		t.Run(fmt.Sprintf("term=%q", term), func(t *testing.T) {
			got := Filter(sampleUsers, Query{Term: term})
			in := make(map[int]bool)
			for _, u := range got {
				in[u.ID] = true
				assert.Contains(t, strings.ToLower(u.Name), strings.ToLower(term))
			}
			for _, u := range sampleUsers {
				if !in[u.ID] {
					assert.NotContains(t, strings.ToLower(u.Name), strings.ToLower(term))
				}
			}
		})
	}
}

func TestFilterAttributeRefinesSearch(t *testing.T) {
	cases := []Query{
		{Term: "an", Attribute: "email", Value: "anton@example.com"},
		{Term: "", Attribute: "name", Value: "Bob"},
		{Term: "b", Attribute: "email", Value: "brian@example.com"},
		{Term: "o", Attribute: "id", Value: "4"},
	}
	for _, q := range cases {
		narrowed := Filter(sampleUsers, q)
		searched := Filter(sampleUsers, Query{Term: q.Term})
		for _, u := range narrowed {
			assert.Contains(t, searched, u)
			v, ok := u.Field(q.Attribute)
			assert.True(t, ok)
			assert.Equal(t, q.Value, v)
		}
	}
}

func TestFilterEmailSelectsSingleUser(t *testing.T) {
	q := Query{Attribute: "email", Value: "joanne@example.org"}
	got := Filter(sampleUsers, q)
	assert.Equal(t, []models.User{sampleUsers[3]}, got)

	q.Term = "joa"
	assert.Equal(t, got, Filter(sampleUsers, q))
}

func TestFilterAttributeIsStrict(t *testing.T) {
	// case-sensitive equality, no substring match
	assert.Empty(t, Filter(sampleUsers, Query{Attribute: "email", Value: "brian@example.com"}))
	assert.Empty(t, Filter(sampleUsers, Query{Attribute: "name", Value: "Ann"}))
	// unknown attribute matches nothing
	assert.Empty(t, Filter(sampleUsers, Query{Attribute: "Email", Value: "anna@example.com"}))
}

func TestFilterIgnoresHalfSpecifiedAttribute(t *testing.T) {
	assert.Len(t, Filter(sampleUsers, Query{Attribute: "email"}), len(sampleUsers))
	assert.Len(t, Filter(sampleUsers, Query{Value: "Bob"}), len(sampleUsers))
}

func TestFilterPostsByTitleAndUser(t *testing.T) {
	posts := []models.Post{
		{ID: 1, UserID: 1, Title: "Go generics"},
		{ID: 2, UserID: 2, Title: "Rust traits"},
		{ID: 3, UserID: 1, Title: "go modules"},
	}
	got := Filter(posts, Query{Term: "GO", Attribute: "userId", Value: "1"})
	assert.Equal(t, []models.Post{posts[0], posts[2]}, got)
	assert.True(t, Matches(posts[1], Query{Term: "rust"}))
}
