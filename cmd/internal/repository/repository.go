package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/hungpv1995/datagrid/cmd/internal/models"
	"go.uber.org/zap"
)

// DefaultBaseURL is the public placeholder API the viewer reads from
const DefaultBaseURL = "https://jsonplaceholder.typicode.com"

type Repository struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

func NewRepository(baseURL string, client *http.Client, logger *zap.Logger) *Repository {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Repository{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		logger:  logger,
	}
}

// FetchUsers retrieves the full user collection
func (r *Repository) FetchUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.fetch(ctx, models.Users, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// FetchPosts retrieves the full post collection
func (r *Repository) FetchPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := r.fetch(ctx, models.Posts, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// FetchComments retrieves the full comment collection
func (r *Repository) FetchComments(ctx context.Context) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.fetch(ctx, models.Comments, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *Repository) fetch(ctx context.Context, resource models.Resource, out any) error {
	url := fmt.Sprintf("%s/%s", r.baseURL, resource)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &NetworkError{Resource: resource, Err: fmt.Errorf("failed to build request: %w", err)}
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)

	r.logger.Debug("Fetching collection",
		zap.String("resource", resource.String()),
		zap.String("url", url),
		zap.String("request_id", requestID))

	res, err := r.client.Do(req)
	if err != nil {
		return &NetworkError{Resource: resource, Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, res.Body)
		return &NetworkError{Resource: resource, StatusCode: res.StatusCode}
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return &DecodeError{Resource: resource, Err: err}
	}

	r.logger.Debug("Fetched collection",
		zap.String("resource", resource.String()),
		zap.String("request_id", requestID))
	return nil
}
