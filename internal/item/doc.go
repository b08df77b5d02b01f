// Package item holds the ordered record collection that backs a list.
//
// Every stored record is an Entry: a set of named fields plus an ID that is
// assigned once at insertion and never reused. The collection order is the
// list's logical (insertion) order. Identity-sensitive code, such as
// translating indexes between logical and sorted order, must compare IDs and
// never field values, because two rows can hold identical values.
package item
