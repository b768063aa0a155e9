package state

import (
	"github.com/hungpv1995/datagrid/cmd/internal/pagination"
	"github.com/hungpv1995/datagrid/cmd/internal/search"
)

// ViewState is the user-driven input of one table. Any change to the query
// returns the table to page 1.
type ViewState struct {
	Query search.Query     `json:"query"`
	Pager pagination.Pager `json:"pager"`
}

func NewViewState(pageSize int) *ViewState {
	return &ViewState{Pager: pagination.NewPager(0, pageSize)}
}

func (v *ViewState) SetSearch(term string) {
	v.Query.Term = term
	v.Pager.Jump(1)
}

func (v *ViewState) SetFilter(attribute, value string) {
	v.Query.Attribute = attribute
	v.Query.Value = value
	v.Pager.Jump(1)
}

func (v *ViewState) ClearFilter() {
	v.SetFilter("", "")
}
