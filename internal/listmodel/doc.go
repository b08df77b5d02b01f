// Package listmodel is a list/table model with a list-like API.
//
// A List owns an ordered collection of items, one or more columns, a
// selection and an externally supplied sort specification. Callers index
// items in logical (insertion) order; the selection and key handling work
// on the displayed (sorted) order and are translated through a
// reconcile.Reconciler.
//
// Interesting events are delivered through explicit registration:
//
//	l.OnSelectionChanged(func(l *listmodel.List) { ... })
//	l.OnItemEdited(func(l *listmodel.List) { ... })
//	l.OnDoubleClick(func(l *listmodel.List) { ... })
//
// A List is confined to the goroutine delivering UI events and is not safe
// for concurrent use.
package listmodel
