package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/hungpv1995/datagrid/cmd/internal/models"
	"github.com/hungpv1995/datagrid/cmd/internal/state"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

type showOptions struct {
	search string
	attr   string
	value  string
	page   int
	post   int
}

var showOpts showOptions

var showCmd = &cobra.Command{
	Use:   "show [users|posts|comments]",
	Short: "Print one page of a table",
	Long: `Fetches all collections and prints one page of the chosen table.

Example:
  datagrid show users --search an --page 1
  datagrid show users --attr email --value Sincere@april.biz
  datagrid show comments --post 1`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"users", "posts", "comments"},
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := models.ParseResource(args[0])
		if err != nil {
			return err
		}

		grid := state.NewGrid(cfg.View.PageSize, logger)
		grid.Load(cmd.Context(), newRepository())

		return runShow(cmd.OutOrStdout(), cmd.ErrOrStderr(), grid, res, showOpts)
	},
}

func init() {
	showCmd.Flags().StringVarP(&showOpts.search, "search", "s", "", "case-insensitive search term")
	showCmd.Flags().StringVar(&showOpts.attr, "attr", "", "attribute to filter on")
	showCmd.Flags().StringVar(&showOpts.value, "value", "", "exact value the attribute must equal")
	showCmd.Flags().IntVarP(&showOpts.page, "page", "p", 1, "page to print")
	showCmd.Flags().IntVar(&showOpts.post, "post", 0, "list the comments of this post instead of a page")
}

func runShow(w, errW io.Writer, grid *state.Grid, res models.Resource, opts showOptions) error {
	for _, r := range models.Resources {
		if status, err := grid.Status(r); status == state.StatusFailed {
			color.New(color.FgRed).Fprintf(errW, "warning: %s unavailable: %v\n", r, err)
		}
	}

	if opts.post > 0 {
		renderPostComments(w, grid, opts.post)
		return nil
	}

	if status, err := grid.Status(res); status == state.StatusFailed {
		return fmt.Errorf("failed to load %s: %w", res, err)
	}

	if err := grid.Search(res, opts.search); err != nil {
		return err
	}
	if err := grid.Filter(res, opts.attr, opts.value); err != nil {
		return err
	}
	if err := grid.Page(res, opts.page); err != nil {
		return err
	}

	renderTable(w, grid, res)
	return nil
}

func renderTable(w io.Writer, grid *state.Grid, res models.Resource) {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)

	var page, total, matched, all int
	switch res {
	case models.Users:
		v := grid.Users()
		table.SetHeader([]string{"ID", "Name", "Email"})
		for _, u := range v.Rows {
			table.Append([]string{strconv.Itoa(u.ID), u.Name, u.Email})
		}
		page, total, matched, all = v.Page, v.TotalPages, v.Matched, v.Total
	case models.Posts:
		v := grid.Posts()
		table.SetHeader([]string{"ID", "Title", "User"})
		for _, p := range v.Rows {
			table.Append([]string{strconv.Itoa(p.ID), p.Title, grid.UserName(p.UserID)})
		}
		page, total, matched, all = v.Page, v.TotalPages, v.Matched, v.Total
	case models.Comments:
		v := grid.Comments()
		table.SetHeader([]string{"ID", "Name", "Email", "Post"})
		for _, c := range v.Rows {
			table.Append([]string{strconv.Itoa(c.ID), c.Name, c.Email, grid.PostTitle(c.PostID)})
		}
		page, total, matched, all = v.Page, v.TotalPages, v.Matched, v.Total
	}

	table.Render()
	fmt.Fprintf(w, "Page %d of %d (%d of %d %s)\n", page, total, matched, all, res)
}

func renderPostComments(w io.Writer, grid *state.Grid, postID int) {
	title := grid.PostTitle(postID)
	if title == "" {
		title = "(unknown post)"
	}
	color.New(color.Bold).Fprintf(w, "Comments on post %d: %s\n", postID, title)

	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"ID", "Name", "Email"})
	for _, c := range grid.CommentsForPost(postID) {
		table.Append([]string{strconv.Itoa(c.ID), c.Name, c.Email})
	}
	table.Render()
}
