// Package itemfile loads list items and column descriptions from YAML files.
//
// A file holds an optional column list and the items:
//
//	columns:
//	  - title: Name
//	    key: name
//	    typing_sensitive: true
//	  - title: Size
//	    width: 8
//	items:
//	  - {name: signal, size: 12}
//	  - {name: sys, size: 40}
//
// Files without columns hold bare values and make a single-column list.
package itemfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/rshade/listkit/internal/listmodel"
)

// maxConcurrentReads bounds how many files are read at once.
const maxConcurrentReads = 4

// ErrColumnMismatch is returned when files disagree on their columns.
var ErrColumnMismatch = errors.New("item files declare different columns")

// ColumnSpec is the YAML form of a column description.
type ColumnSpec struct {
	Title           string `yaml:"title"`
	Key             string `yaml:"key"`
	Width           int    `yaml:"width"`
	Editable        *bool  `yaml:"editable"`
	TypingSensitive bool   `yaml:"typing_sensitive"`
}

// File is the decoded content of one or more item files.
type File struct {
	Columns []ColumnSpec `yaml:"columns"`
	Items   []any        `yaml:"items"`
}

// ListColumns converts the column specs for listmodel.Options.
func (f *File) ListColumns() []listmodel.Column {
	if len(f.Columns) == 0 {
		return nil
	}
	out := make([]listmodel.Column, len(f.Columns))
	for i, c := range f.Columns {
		out[i] = listmodel.Column{
			Title:           c.Title,
			Key:             c.Key,
			Width:           c.Width,
			Editable:        c.Editable,
			TypingSensitive: c.TypingSensitive,
		}
	}
	return out
}

// Parse decodes a single YAML document.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing item file: %w", err)
	}
	return &f, nil
}

// Load reads every path concurrently and concatenates the items in
// argument order. Files that declare columns must all declare the same
// ones.
func Load(ctx context.Context, paths ...string) (*File, error) {
	files := make([]*File, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentReads)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading item file %s: %w", path, err)
			}
			f, err := Parse(data)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			files[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return merge(paths, files)
}

func merge(paths []string, files []*File) (*File, error) {
	out := &File{Items: []any{}}
	for i, f := range files {
		if len(f.Columns) > 0 {
			if len(out.Columns) > 0 && !slices.EqualFunc(out.Columns, f.Columns, sameColumn) {
				return nil, fmt.Errorf("%w: %s", ErrColumnMismatch, paths[i])
			}
			if len(out.Columns) == 0 {
				out.Columns = f.Columns
			}
		}
		out.Items = append(out.Items, f.Items...)
	}
	return out, nil
}

func sameColumn(a, b ColumnSpec) bool {
	return a.Title == b.Title && a.Key == b.Key
}
