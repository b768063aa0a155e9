// Package state holds the session-owned collections and per-table view
// state, and derives the visible page of each table from them.
package state

import (
	"context"
	"fmt"
	"sync"

	"github.com/hungpv1995/datagrid/cmd/internal/models"
	"github.com/hungpv1995/datagrid/cmd/internal/pagination"
	"github.com/hungpv1995/datagrid/cmd/internal/search"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Fetcher retrieves the three remote collections
type Fetcher interface {
	FetchUsers(ctx context.Context) ([]models.User, error)
	FetchPosts(ctx context.Context) ([]models.Post, error)
	FetchComments(ctx context.Context) ([]models.Comment, error)
}

// View is the derived, paginated output of one table
type View[T any] struct {
	Resource    models.Resource `json:"resource"`
	Rows        []T             `json:"rows"`
	Page        int             `json:"page"`
	TotalPages  int             `json:"total_pages"`
	HasPrevious bool            `json:"has_previous"`
	HasNext     bool            `json:"has_next"`
	Total       int             `json:"total"`
	Matched     int             `json:"matched"`
	Status      Status          `json:"status"`
	Err         string          `json:"error,omitempty"`
	Query       search.Query    `json:"query"`
}

type Grid struct {
	mu       sync.Mutex
	users    Collection[models.User]
	posts    Collection[models.Post]
	comments Collection[models.Comment]
	views    map[models.Resource]*ViewState
	logger   *zap.Logger
}

func NewGrid(pageSize int, logger *zap.Logger) *Grid {
	if pageSize <= 0 {
		pageSize = pagination.PageSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	views := make(map[models.Resource]*ViewState, len(models.Resources))
	for _, r := range models.Resources {
		views[r] = NewViewState(pageSize)
	}
	return &Grid{views: views, logger: logger}
}

// Load fetches all three collections concurrently. A failed fetch is logged
// and recorded on its own collection only; Load itself never fails.
func (g *Grid) Load(ctx context.Context, f Fetcher) {
	var eg errgroup.Group
	for _, r := range models.Resources {
		r := r
		eg.Go(func() error {
			_ = g.Reload(ctx, f, r)
			return nil
		})
	}
	_ = eg.Wait()
}

// Reload re-fetches one collection. A completion that is overtaken by a
// newer Reload of the same collection is discarded.
func (g *Grid) Reload(ctx context.Context, f Fetcher, r models.Resource) error {
	switch r {
	case models.Users:
		return reload(g, &g.users, r, func() ([]models.User, error) { return f.FetchUsers(ctx) })
	case models.Posts:
		return reload(g, &g.posts, r, func() ([]models.Post, error) { return f.FetchPosts(ctx) })
	case models.Comments:
		return reload(g, &g.comments, r, func() ([]models.Comment, error) { return f.FetchComments(ctx) })
	}
	return fmt.Errorf("unknown resource %q", r)
}

func reload[T search.Record](g *Grid, c *Collection[T], r models.Resource, fetch func() ([]T, error)) error {
	g.mu.Lock()
	gen := c.Begin()
	g.mu.Unlock()

	items, err := fetch()

	g.mu.Lock()
	defer g.mu.Unlock()

	if err != nil {
		if !c.Fail(gen, err) {
			g.logger.Debug("Discarded stale fetch failure",
				zap.String("resource", r.String()),
				zap.Uint64("generation", gen),
				zap.Error(err))
			return err
		}
		g.logger.Error("Failed to fetch collection",
			zap.String("resource", r.String()),
			zap.Uint64("generation", gen),
			zap.Error(err))
		return err
	}

	if !c.Complete(gen, items) {
		g.logger.Debug("Discarded stale fetch result",
			zap.String("resource", r.String()),
			zap.Uint64("generation", gen))
		return nil
	}

	vs := g.views[r]
	vs.Pager.Reset(len(search.Filter(c.Items(), vs.Query)))
	g.logger.Info("Loaded collection",
		zap.String("resource", r.String()),
		zap.Int("count", len(items)))
	return nil
}

// Search sets the free-text term of a table and returns it to page 1
func (g *Grid) Search(r models.Resource, term string) error {
	return g.update(r, func(vs *ViewState) { vs.SetSearch(term) })
}

// Filter sets the attribute filter of a table and returns it to page 1
func (g *Grid) Filter(r models.Resource, attribute, value string) error {
	return g.update(r, func(vs *ViewState) { vs.SetFilter(attribute, value) })
}

// ClearFilter drops the attribute filter of a table
func (g *Grid) ClearFilter(r models.Resource) error {
	return g.update(r, func(vs *ViewState) { vs.ClearFilter() })
}

// Page jumps a table to page n, clamped into range
func (g *Grid) Page(r models.Resource, n int) error {
	return g.navigate(r, func(p *pagination.Pager) { p.Jump(n) })
}

func (g *Grid) Next(r models.Resource) error {
	return g.navigate(r, (*pagination.Pager).Next)
}

func (g *Grid) Previous(r models.Resource) error {
	return g.navigate(r, (*pagination.Pager).Previous)
}

func (g *Grid) update(r models.Resource, fn func(*ViewState)) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	vs, ok := g.views[r]
	if !ok {
		return fmt.Errorf("unknown resource %q", r)
	}
	fn(vs)
	vs.Pager.Reset(g.matched(r))
	return nil
}

func (g *Grid) navigate(r models.Resource, fn func(*pagination.Pager)) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	vs, ok := g.views[r]
	if !ok {
		return fmt.Errorf("unknown resource %q", r)
	}
	vs.Pager.Resize(g.matched(r))
	fn(&vs.Pager)
	return nil
}

// matched counts the filtered rows of r. Callers hold g.mu.
func (g *Grid) matched(r models.Resource) int {
	q := g.views[r].Query
	switch r {
	case models.Users:
		return len(search.Filter(g.users.Items(), q))
	case models.Posts:
		return len(search.Filter(g.posts.Items(), q))
	case models.Comments:
		return len(search.Filter(g.comments.Items(), q))
	}
	return 0
}

func (g *Grid) Users() View[models.User] {
	g.mu.Lock()
	defer g.mu.Unlock()
	return buildView(models.Users, &g.users, g.views[models.Users])
}

func (g *Grid) Posts() View[models.Post] {
	g.mu.Lock()
	defer g.mu.Unlock()
	return buildView(models.Posts, &g.posts, g.views[models.Posts])
}

func (g *Grid) Comments() View[models.Comment] {
	g.mu.Lock()
	defer g.mu.Unlock()
	return buildView(models.Comments, &g.comments, g.views[models.Comments])
}

func buildView[T search.Record](r models.Resource, c *Collection[T], vs *ViewState) View[T] {
	filtered := search.Filter(c.Items(), vs.Query)
	vs.Pager.Resize(len(filtered))

	v := View[T]{
		Resource:    r,
		Rows:        pagination.Slice(filtered, vs.Pager.Current, vs.Pager.PageSize),
		Page:        vs.Pager.Current,
		TotalPages:  vs.Pager.Total,
		HasPrevious: vs.Pager.HasPrevious(),
		HasNext:     vs.Pager.HasNext(),
		Total:       len(c.Items()),
		Matched:     len(filtered),
		Status:      c.Status(),
		Query:       vs.Query,
	}
	if err := c.Err(); err != nil {
		v.Err = err.Error()
	}
	return v
}

// Status returns the load state of a collection and its failure reason
func (g *Grid) Status(r models.Resource) (Status, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch r {
	case models.Users:
		return g.users.Status(), g.users.Err()
	case models.Posts:
		return g.posts.Status(), g.posts.Err()
	case models.Comments:
		return g.comments.Status(), g.comments.Err()
	}
	return StatusIdle, fmt.Errorf("unknown resource %q", r)
}

// CommentsForPost returns the comments attached to a post
func (g *Grid) CommentsForPost(postID int) []models.Comment {
	g.mu.Lock()
	defer g.mu.Unlock()
	return search.CommentsForPost(g.comments.Items(), postID)
}

// PostTitle returns the title of a post, or "" if it is not loaded
func (g *Grid) PostTitle(id int) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return search.PostTitleFor(g.posts.Items(), id)
}

// UserName returns the name of a user, or "" if it is not loaded
func (g *Grid) UserName(id int) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return search.UserNameFor(g.users.Items(), id)
}

// Query returns the current search and filter input of a table
func (g *Grid) Query(r models.Resource) search.Query {
	g.mu.Lock()
	defer g.mu.Unlock()

	if vs, ok := g.views[r]; ok {
		return vs.Query
	}
	return search.Query{}
}
