package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frozolotl/typst-ansi-hl/internal/iotest"
	"github.com/frozolotl/typst-ansi-hl/internal/syntax"
)

func TestCLIParser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give []string
		want params
	}{
		{
			desc: "no arguments",
			give: []string{},
			want: params{Mode: syntax.ModeMarkup},
		},
		{
			desc: "input path",
			give: []string{"main.typ"},
			want: params{Input: "main.typ", Mode: syntax.ModeMarkup},
		},
		{
			desc: "discord",
			give: []string{"-discord"},
			want: params{Discord: true},
		},
		{
			desc: "discord short",
			give: []string{"-d"},
			want: params{Discord: true},
		},
		{
			desc: "mode code",
			give: []string{"-mode", "code"},
			want: params{Mode: syntax.ModeCode},
		},
		{
			desc: "mode math",
			give: []string{"-mode=math"},
			want: params{Mode: syntax.ModeMath},
		},
		{
			desc: "soft limit",
			give: []string{"-soft-limit", "2000"},
			want: params{SoftLimit: 2000},
		},
		{
			desc: "everything",
			give: []string{"-d", "-mode", "code", "-soft-limit", "100", "in.typ"},
			want: params{
				Discord:   true,
				Mode:      syntax.ModeCode,
				SoftLimit: 100,
				Input:     "in.typ",
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			got, err := (&cliParser{
				Stdout: iotest.Writer(t),
				Stderr: iotest.Writer(t),
			}).Parse(tt.give)
			require.NoError(t, err)
			assert.Equal(t, &tt.want, got)
		})
	}
}

func TestCLIParser_errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give []string
	}{
		{
			desc: "unknown flag",
			give: []string{"--not-a-flag"},
		},
		{
			desc: "bad mode",
			give: []string{"-mode", "prose"},
		},
		{
			desc: "bad soft limit",
			give: []string{"-soft-limit", "lots"},
		},
		{
			desc: "negative soft limit",
			give: []string{"-soft-limit", "-1"},
		},
		{
			desc: "too many arguments",
			give: []string{"a.typ", "b.typ"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			_, err := (&cliParser{
				Stdout: iotest.Writer(t),
				Stderr: iotest.Writer(t),
			}).Parse(tt.give)
			assert.Error(t, err)
			assert.NotErrorIs(t, err, errHelp)
		})
	}
}

func TestCLIParser_help(t *testing.T) {
	t.Parallel()

	tests := [][]string{
		{"-h"},
		{"-help"},
		{"-h", "mode"},
		{"-h=limit"},
		{"-version"},
	}

	for _, args := range tests {
		args := args
		t.Run(args[0], func(t *testing.T) {
			t.Parallel()

			_, err := (&cliParser{
				Stdout: iotest.Writer(t),
				Stderr: iotest.Writer(t),
			}).Parse(args)
			assert.ErrorIs(t, err, errHelp)
		})
	}
}

func TestModeFlag(t *testing.T) {
	t.Parallel()

	var mode syntax.Mode
	f := modeFlag{&mode}

	require.NoError(t, f.Set("math"))
	assert.Equal(t, syntax.ModeMath, mode)
	assert.Equal(t, "math", f.String())
	assert.Equal(t, syntax.ModeMath, f.Get())

	assert.Error(t, f.Set("nope"))
}
