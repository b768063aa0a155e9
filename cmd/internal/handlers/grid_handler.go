package handlers

import (
	"context"
	"encoding/json"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/hungpv1995/datagrid/cmd/internal/models"
	"github.com/hungpv1995/datagrid/cmd/internal/state"
	"go.uber.org/zap"
)

type GridHandler struct {
	grid    *state.Grid
	fetcher state.Fetcher
	logger  *zap.Logger
	page    *template.Template
}

func NewGridHandler(grid *state.Grid, fetcher state.Fetcher, logger *zap.Logger) *GridHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &GridHandler{
		grid:    grid,
		fetcher: fetcher,
		logger:  logger,
	}
	h.page = template.Must(template.New("index").Funcs(template.FuncMap{
		"userName":  grid.UserName,
		"postTitle": grid.PostTitle,
		"fields":    models.Resource.Fields,
	}).Parse(indexTemplate))
	return h
}

// Register mounts the grid routes on r
func (h *GridHandler) Register(r *mux.Router) {
	r.HandleFunc("/", h.Index).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/posts/{id:[0-9]+}/comments", h.PostComments).Methods("GET")
	api.HandleFunc("/{resource}", h.GetView).Methods("GET")
	api.HandleFunc("/{resource}/search", h.Search).Methods("POST")
	api.HandleFunc("/{resource}/filter", h.Filter).Methods("POST")
	api.HandleFunc("/{resource}/filter/clear", h.ClearFilter).Methods("POST")
	api.HandleFunc("/{resource}/page", h.Page).Methods("POST")
	api.HandleFunc("/{resource}/reload", h.Reload).Methods("POST")
}

// Index handles GET / and renders all three tables
func (h *GridHandler) Index(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Users    state.View[models.User]
		Posts    state.View[models.Post]
		Comments state.View[models.Comment]
	}{
		Users:    h.grid.Users(),
		Posts:    h.grid.Posts(),
		Comments: h.grid.Comments(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.page.Execute(w, data); err != nil {
		h.logger.Error("Failed to render page", zap.Error(err))
	}
}

// GetView handles GET /api/{resource}
func (h *GridHandler) GetView(w http.ResponseWriter, r *http.Request) {
	res, ok := h.resource(w, r)
	if !ok {
		return
	}
	h.writeView(w, res)
}

// Search handles POST /api/{resource}/search?q=<term>
func (h *GridHandler) Search(w http.ResponseWriter, r *http.Request) {
	res, ok := h.resource(w, r)
	if !ok {
		return
	}
	if err := h.grid.Search(res, r.FormValue("q")); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	h.respond(w, r, res)
}

// Filter handles POST /api/{resource}/filter?attribute=<field>&value=<value>
func (h *GridHandler) Filter(w http.ResponseWriter, r *http.Request) {
	res, ok := h.resource(w, r)
	if !ok {
		return
	}
	if err := h.grid.Filter(res, r.FormValue("attribute"), r.FormValue("value")); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	h.respond(w, r, res)
}

// ClearFilter handles POST /api/{resource}/filter/clear
func (h *GridHandler) ClearFilter(w http.ResponseWriter, r *http.Request) {
	res, ok := h.resource(w, r)
	if !ok {
		return
	}
	if err := h.grid.ClearFilter(res); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	h.respond(w, r, res)
}

// Page handles POST /api/{resource}/page with either page=<n> or dir=next|prev
func (h *GridHandler) Page(w http.ResponseWriter, r *http.Request) {
	res, ok := h.resource(w, r)
	if !ok {
		return
	}

	var err error
	switch dir := r.FormValue("dir"); dir {
	case "next":
		err = h.grid.Next(res)
	case "prev":
		err = h.grid.Previous(res)
	case "":
		n, convErr := strconv.Atoi(r.FormValue("page"))
		if convErr != nil {
			http.Error(w, "Invalid page number", http.StatusBadRequest)
			return
		}
		err = h.grid.Page(res, n)
	default:
		http.Error(w, "Invalid direction", http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	h.respond(w, r, res)
}

// Reload handles POST /api/{resource}/reload
func (h *GridHandler) Reload(w http.ResponseWriter, r *http.Request) {
	res, ok := h.resource(w, r)
	if !ok {
		return
	}
	// a client disconnect must not cancel the fetch
	ctx := context.WithoutCancel(r.Context())
	// a failed fetch is recorded on the collection and shows up in the view
	_ = h.grid.Reload(ctx, h.fetcher, res)
	h.respond(w, r, res)
}

// PostComments handles GET /api/posts/{id}/comments
func (h *GridHandler) PostComments(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid post ID", http.StatusBadRequest)
		return
	}

	writeJSON(w, h.logger, map[string]interface{}{
		"post_id":  id,
		"title":    h.grid.PostTitle(id),
		"comments": h.grid.CommentsForPost(id),
	})
}

func (h *GridHandler) resource(w http.ResponseWriter, r *http.Request) (models.Resource, bool) {
	res, err := models.ParseResource(mux.Vars(r)["resource"])
	if err != nil {
		http.Error(w, "Unknown resource", http.StatusNotFound)
		return "", false
	}
	return res, true
}

// respond sends browsers back to the page and API clients the new view
func (h *GridHandler) respond(w http.ResponseWriter, r *http.Request, res models.Resource) {
	if strings.Contains(r.Header.Get("Accept"), "text/html") {
		http.Redirect(w, r, "/#"+res.String(), http.StatusSeeOther)
		return
	}
	h.writeView(w, res)
}

func (h *GridHandler) writeView(w http.ResponseWriter, res models.Resource) {
	switch res {
	case models.Users:
		writeJSON(w, h.logger, h.grid.Users())
	case models.Posts:
		writeJSON(w, h.logger, h.grid.Posts())
	case models.Comments:
		writeJSON(w, h.logger, h.grid.Comments())
	}
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", zap.Error(err))
	}
}
