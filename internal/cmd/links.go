package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/PauloHFS/pagelinks/internal/view"
)

// RunLinks prints the pagination bar for <pages> <page> [max_links], where
// page is 1-based.
func RunLinks(w io.Writer, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("usage: links <pages> <page> [max_links]")
	}

	pages, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid page count %q: %w", args[0], err)
	}

	maxLinks := view.DefaultMaxLinks
	if len(args) == 3 {
		if maxLinks, err = strconv.Atoi(args[2]); err != nil {
			return fmt.Errorf("invalid max_links %q: %w", args[2], err)
		}
	}

	p := view.NewPagination(pages, view.PageIndex(args[1]), maxLinks)
	if !p.Visible() {
		_, err = fmt.Fprintln(w, "(no pagination)")
		return err
	}

	_, err = fmt.Fprintln(w, view.FormatLinks(p.Links()))
	return err
}
