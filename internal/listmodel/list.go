package listmodel

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rshade/listkit/internal/indexset"
	"github.com/rshade/listkit/internal/item"
	"github.com/rshade/listkit/internal/reconcile"
	"github.com/rshade/listkit/internal/sortspec"
	"github.com/rshade/listkit/internal/typeahead"
)

// Callback is invoked with the list that raised the event.
type Callback func(l *List)

// List is a list/table model. See the package documentation.
type List struct {
	columns      []Column
	typingColumn int
	multiColumn  bool
	showTitles   bool

	enableDelete    bool
	singleSelection bool
	avoidEmpty      bool

	items  *item.Collection
	source DataSource

	sort     sortspec.Spec
	recon    *reconcile.Reconciler
	matcher  *typeahead.Matcher
	selected indexset.Set

	onSelection   []Callback
	onEdit        []Callback
	onDoubleClick []Callback

	logger zerolog.Logger
}

// New builds a List from opts. Contradictory options are reported as
// ErrInvalidConfig.
func New(opts Options) (*List, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	columns, typing := resolveColumns(opts.Columns)
	l := &List{
		columns:         columns,
		typingColumn:    typing,
		multiColumn:     len(opts.Columns) > 0,
		showTitles:      !opts.HideColumnTitles && len(opts.Columns) > 0,
		enableDelete:    opts.EnableDelete,
		singleSelection: opts.SingleSelection,
		avoidEmpty:      opts.AvoidEmptySelection,
		source:          opts.DataSource,
		items:           item.NewCollection(opts.Items),
		logger:          logger.With().Str("component", "list").Logger(),
	}
	l.recon = reconcile.New(l.items, l, l.logger)

	if opts.EnableTypingSensitivity {
		l.matcher = typeahead.NewMatcher(opts.TypeAheadTimeout, opts.Clock)
	}

	l.selected = l.normalizeSelection(nil)

	l.logger.Debug().
		Int("columns", len(l.columns)).
		Int("items", l.Len()).
		Bool("data_source", l.source != nil).
		Bool("typing_sensitive", l.matcher != nil).
		Msg("list created")

	return l, nil
}

// Columns returns the resolved column descriptions.
func (l *List) Columns() []Column {
	out := make([]Column, len(l.columns))
	copy(out, l.columns)
	return out
}

// TypingColumn returns the column type-ahead matches against.
func (l *List) TypingColumn() Column {
	return l.columns[l.typingColumn]
}

// ShowsColumnTitles reports whether a header row should be drawn.
func (l *List) ShowsColumnTitles() bool {
	return l.showTitles
}

// Autosizes reports whether columns size themselves, which is the case
// when no column has an explicit width.
func (l *List) Autosizes() bool {
	for _, c := range l.columns {
		if c.Width > 0 {
			return false
		}
	}
	return true
}

// ReadOnly reports whether the list is backed by a data source.
func (l *List) ReadOnly() bool {
	return l.source != nil
}

// Editable reports whether a column accepts user edits.
func (l *List) Editable(key string) bool {
	c, ok := l.column(key)
	if !ok || l.ReadOnly() {
		return false
	}
	if c.Editable != nil {
		return *c.Editable
	}
	return len(l.onEdit) > 0
}

func (l *List) column(key string) (Column, bool) {
	for _, c := range l.columns {
		if c.Key == key {
			return c, true
		}
	}
	return Column{}, false
}

// SortSpec returns the active sort specification.
func (l *List) SortSpec() sortspec.Spec {
	return l.sort
}

// SetSortSpec changes the displayed order. The selection stays on the
// same items.
func (l *List) SetSortSpec(spec sortspec.Spec) error {
	if l.ReadOnly() && !spec.Empty() {
		return fmt.Errorf("sorting: %w", ErrReadOnly)
	}
	return l.keepSelection(func() error {
		l.sort = spec
		l.logger.Debug().Str("sort", spec.String()).Msg("sort changed")
		return nil
	})
}

// Reconciler exposes index translation between logical and displayed order.
func (l *List) Reconciler() *reconcile.Reconciler {
	return l.recon
}

// DisplayedItems returns the items in displayed order.
func (l *List) DisplayedItems() []any {
	n := l.Len()
	out := make([]any, 0, n)
	if l.source != nil {
		for i := range n {
			out = append(out, l.sourceItem(i))
		}
		return out
	}
	for _, e := range l.recon.Displayed() {
		out = append(out, item.Unwrap(e.Fields, l.multiColumn))
	}
	return out
}

// DisplayedValues returns the value of column key for each displayed row.
// Rows missing the field yield nil.
func (l *List) DisplayedValues(key string) []any {
	if l.source != nil {
		n := l.source.Len()
		out := make([]any, n)
		for i := range n {
			out[i] = l.source.Value(i, key)
		}
		return out
	}
	displayed := l.recon.Displayed()
	out := make([]any, len(displayed))
	for i, e := range displayed {
		out[i], _ = e.Value(key)
	}
	return out
}

func (l *List) sourceItem(row int) any {
	if !l.multiColumn {
		return l.source.Value(row, l.columns[0].Key)
	}
	m := make(map[string]any, len(l.columns))
	for _, c := range l.columns {
		m[c.Key] = l.source.Value(row, c.Key)
	}
	return m
}

// OnSelectionChanged registers fn to run whenever the selected rows change.
func (l *List) OnSelectionChanged(fn Callback) {
	l.onSelection = append(l.onSelection, fn)
}

// OnItemEdited registers fn to run after a user edit. Registering an edit
// callback makes columns without an explicit Editable setting editable.
func (l *List) OnItemEdited(fn Callback) {
	l.onEdit = append(l.onEdit, fn)
}

// OnDoubleClick registers fn to run when a row is activated.
func (l *List) OnDoubleClick(fn Callback) {
	l.onDoubleClick = append(l.onDoubleClick, fn)
}

func (l *List) fire(callbacks []Callback) {
	for _, fn := range callbacks {
		fn(l)
	}
}

// DoubleClick activates the displayed row. Rows out of range are ignored.
func (l *List) DoubleClick(row int) {
	if row < 0 || row >= l.Len() {
		return
	}
	l.fire(l.onDoubleClick)
}
