package tui

import (
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hungpv1995/datagrid/cmd/internal/models"
	"github.com/hungpv1995/datagrid/cmd/internal/pagination"
	"github.com/hungpv1995/datagrid/cmd/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct{}

func (stubFetcher) FetchUsers(context.Context) ([]models.User, error) {
	users := make([]models.User, 23)
	for i := range users {
		users[i] = models.User{ID: i + 1, Name: fmt.Sprintf("User %d", i+1), Email: fmt.Sprintf("u%d@example.com", i+1)}
	}
	users[4].Name = "Anna"
	return users, nil
}

func (stubFetcher) FetchPosts(context.Context) ([]models.Post, error) {
	return []models.Post{{ID: 7, UserID: 5, Title: "hello world"}}, nil
}

func (stubFetcher) FetchComments(context.Context) ([]models.Comment, error) {
	return []models.Comment{{ID: 1, PostID: 7, Name: "first!"}, {ID: 2, PostID: 8, Name: "other"}}, nil
}

func loadedModel(t *testing.T) Model {
	t.Helper()
	grid := state.NewGrid(pagination.PageSize, nil)
	m := New(context.Background(), grid, stubFetcher{})

	msg := m.Init()()
	next, _ := m.Update(msg)
	return next.(Model)
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(s string) []tea.KeyMsg {
	keys := make([]tea.KeyMsg, 0, len(s))
	for _, r := range s {
		keys = append(keys, runes(string(r)))
	}
	return keys
}

func TestInitLoadsAllCollections(t *testing.T) {
	m := loadedModel(t)

	assert.Len(t, m.table.Rows(), 10)
	assert.Contains(t, m.View(), "Page 1 of 3")
}

func TestPagingKeys(t *testing.T) {
	m := loadedModel(t)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight})
	assert.Len(t, m.table.Rows(), 3)
	assert.Contains(t, m.View(), "Page 3 of 3")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Contains(t, m.View(), "Page 3 of 3")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Contains(t, m.View(), "Page 2 of 3")
}

func TestSearchResetsToFirstPage(t *testing.T) {
	m := loadedModel(t)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})

	m = press(t, m, runes("/"))
	assert.Equal(t, modeSearch, m.mode)
	m = press(t, m, typeText("ann")...)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, modeBrowse, m.mode)
	require.Len(t, m.table.Rows(), 1)
	assert.Equal(t, "Anna", m.table.Rows()[0][1])
	assert.Contains(t, m.View(), "Page 1 of 1")
}

func TestFilterKey(t *testing.T) {
	m := loadedModel(t)

	m = press(t, m, runes("f"))
	m = press(t, m, typeText("email=u3@example.com")...)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Len(t, m.table.Rows(), 1)
	assert.Equal(t, "3", m.table.Rows()[0][0])

	m = press(t, m, runes("f"))
	assert.Equal(t, "email=u3@example.com", m.input.Value())
	m.input.SetValue("")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Len(t, m.table.Rows(), 10)
}

func TestTabAndCommentsDrillDown(t *testing.T) {
	m := loadedModel(t)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, models.Posts, m.active)
	require.Len(t, m.table.Rows(), 1)
	assert.Equal(t, "Anna", m.table.Rows()[0][2])

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, modeComments, m.mode)
	require.Len(t, m.table.Rows(), 1)
	assert.Equal(t, "first!", m.table.Rows()[0][1])
	assert.Contains(t, m.View(), `Comments on "hello world"`)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, modeBrowse, m.mode)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, models.Comments, m.active)
	assert.Equal(t, "hello world", m.table.Rows()[0][3])
}

func TestParseFilter(t *testing.T) {
	attr, val, ok := ParseFilter("email=a=b@example.com")
	assert.True(t, ok)
	assert.Equal(t, "email", attr)
	assert.Equal(t, "a=b@example.com", val)

	_, _, ok = ParseFilter("email")
	assert.False(t, ok)
	_, _, ok = ParseFilter("=x")
	assert.False(t, ok)
	_, _, ok = ParseFilter("name=")
	assert.False(t, ok)
}
