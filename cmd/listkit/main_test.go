package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/listkit/internal/cli"
	"github.com/rshade/listkit/pkg/version"
)

func TestMainComponents(t *testing.T) {
	t.Run("version available", func(t *testing.T) {
		assert.NotEmpty(t, version.GetVersion())
	})

	t.Run("cli root command", func(t *testing.T) {
		root := cli.NewRootCmd(version.GetVersion())
		if assert.NotNil(t, root) {
			assert.Equal(t, "listkit", root.Use)
		}
	})
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error returns 0", err: nil, want: 0},
		{name: "missing item files is a usage error", err: cli.ErrNoItemFiles, want: 2},
		{name: "wrapped direction error is a usage error", err: fmt.Errorf("reconcile: %w", cli.ErrIndexDirection), want: 2},
		{name: "other errors return 1", err: errors.New("boom"), want: 1},
		{name: "no match returns 1", err: cli.ErrNoMatch, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}
