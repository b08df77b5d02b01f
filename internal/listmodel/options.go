package listmodel

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rshade/listkit/internal/item"
	"github.com/rshade/listkit/internal/typeahead"
)

// List errors.
var (
	ErrInvalidConfig = errors.New("invalid list configuration")
	ErrReadOnly      = errors.New("list is backed by a data source and cannot be modified")
	ErrNotEditable   = errors.New("column is not editable")
	ErrUnknownColumn = errors.New("unknown column")
)

// DataSource supplies rows for a list that does not own its items.
type DataSource interface {
	Len() int
	Value(row int, key string) any
}

// Column describes one column of a multi-column list.
type Column struct {
	// Title is shown in the header. Derived from Key when empty.
	Title string

	// Key selects the item field shown in the column. Defaults to Title.
	Key string

	// Width in cells. Zero lets the column size itself.
	Width int

	// Editable overrides the default, which is "an edit callback is registered".
	Editable *bool

	// TypingSensitive marks the column that type-ahead matches against.
	// At most one column may set it; the first column is used otherwise.
	TypingSensitive bool
}

// Options configures a List. The zero value gives an empty single-column
// list allowing multiple and empty selection.
type Options struct {
	// Items are the initial items. Mutually exclusive with DataSource.
	// Multi-column lists take map[string]any values keyed by column key.
	Items []any

	// DataSource backs a read-only list. Mutually exclusive with Items.
	DataSource DataSource

	// Columns; none means a single column over bare values.
	Columns []Column

	HideColumnTitles        bool
	EnableDelete            bool
	EnableTypingSensitivity bool
	SingleSelection         bool
	AvoidEmptySelection     bool

	// UniformWidths requires Width to be set on every column or on none.
	UniformWidths bool

	// TypeAheadTimeout defaults to typeahead.DefaultTimeout.
	TypeAheadTimeout time.Duration

	// Clock defaults to time.Now.
	Clock typeahead.Clock

	// Logger defaults to a disabled logger.
	Logger *zerolog.Logger
}

// validate rejects contradictory options.
func (o Options) validate() error {
	if o.Items != nil && o.DataSource != nil {
		return fmt.Errorf("%w: can't pass both items and a data source", ErrInvalidConfig)
	}

	withWidth := 0
	typing := 0
	for i, c := range o.Columns {
		if c.Title == "" && c.Key == "" {
			return fmt.Errorf("%w: column %d needs a title or a key", ErrInvalidConfig, i)
		}
		if c.Width < 0 {
			return fmt.Errorf("%w: column %d has negative width %d", ErrInvalidConfig, i, c.Width)
		}
		if c.Width > 0 {
			withWidth++
		}
		if c.TypingSensitive {
			typing++
		}
	}

	if o.UniformWidths && withWidth > 0 && withWidth != len(o.Columns) {
		return fmt.Errorf("%w: the width of all columns must be set", ErrInvalidConfig)
	}
	if typing > 1 {
		return fmt.Errorf("%w: only one column can be typing sensitive, got %d", ErrInvalidConfig, typing)
	}
	return nil
}

// resolveColumns fills in keys and titles and returns the typing-sensitive
// column index. Lists without column descriptions get one implicit column.
func resolveColumns(in []Column) ([]Column, int) {
	if len(in) == 0 {
		return []Column{{Key: item.ImplicitField}}, 0
	}

	caser := cases.Title(language.English)
	out := make([]Column, len(in))
	typing := 0
	for i, c := range in {
		if c.Key == "" {
			c.Key = c.Title
		}
		if c.Title == "" {
			c.Title = caser.String(c.Key)
		}
		if c.TypingSensitive {
			typing = i
		}
		out[i] = c
	}
	return out, typing
}
