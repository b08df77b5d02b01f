package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/listkit/internal/config"
	"github.com/rshade/listkit/internal/item"
	"github.com/rshade/listkit/internal/itemfile"
	"github.com/rshade/listkit/internal/listmodel"
	"github.com/rshade/listkit/internal/logging"
	"github.com/rshade/listkit/internal/sortspec"
)

// ErrNoItemFiles is returned when a list command gets no item file.
var ErrNoItemFiles = errors.New("at least one item file is required")

// listFlags are the flags shared by commands that build a list from item files.
type listFlags struct {
	sort   string
	column string
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.sort, "sort", "",
		"sort expression such as name:asc,size:desc (defaults to list.sort from config)")
	cmd.Flags().StringVar(&f.column, "column", "",
		"key of the column type-ahead matches against")
}

// buildList loads the item files and returns a list configured from cfg
// and the flags, with its sort applied.
func buildList(ctx context.Context, cfg *config.Config, flags listFlags, paths []string) (*listmodel.List, error) {
	if len(paths) == 0 {
		return nil, ErrNoItemFiles
	}

	file, err := itemfile.Load(ctx, paths...)
	if err != nil {
		return nil, err
	}

	opts := listmodel.Options{
		Items:   file.Items,
		Columns: file.ListColumns(),
		Logger:  logging.FromContext(ctx),
	}
	cfg.List.ApplyTo(&opts)

	if flags.column != "" {
		if opts.Columns, err = withTypingColumn(opts.Columns, flags.column); err != nil {
			return nil, err
		}
	}

	l, err := listmodel.New(opts)
	if err != nil {
		return nil, err
	}

	expr := flags.sort
	if expr == "" {
		expr = cfg.List.Sort
	}
	spec, err := sortspec.Parse(expr)
	if err != nil {
		return nil, err
	}
	if err = l.SetSortSpec(spec); err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Debug().
		Int("items", l.Len()).
		Int("files", len(paths)).
		Str("sort", spec.String()).
		Msg("list loaded")
	return l, nil
}

// withTypingColumn marks the column with the given key as the only typing
// sensitive one.
func withTypingColumn(columns []listmodel.Column, key string) ([]listmodel.Column, error) {
	if len(columns) == 0 {
		if key != item.ImplicitField {
			return nil, fmt.Errorf("%w: %s", listmodel.ErrUnknownColumn, key)
		}
		return nil, nil
	}

	out := make([]listmodel.Column, len(columns))
	found := false
	for i, c := range columns {
		colKey := c.Key
		if colKey == "" {
			colKey = c.Title
		}
		c.TypingSensitive = colKey == key
		found = found || c.TypingSensitive
		out[i] = c
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", listmodel.ErrUnknownColumn, key)
	}
	return out, nil
}
