package vector

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsyn/FETX/pkg/fetx"
	"github.com/vsyn/FETX/pkg/fetxerr"
)

func TestParse(t *testing.T) {
	// Columns may be adjacent or whitespace-separated within one file.
	const src = "0 1 5\n015\n2 34\n"

	v, err := Parse(strings.NewReader(src))
	require.NoError(t, err)

	want := Vector{
		Width: 3,
		Rows: [][]fetx.State{
			{fetx.Low, fetx.High, fetx.Undriven},
			{fetx.Low, fetx.High, fetx.Undriven},
			{fetx.UnstableLow, fetx.UnstableHigh, fetx.UnstableMultiple},
		},
	}
	if diff := cmp.Diff(want, v); diff != "" {
		t.Errorf("parsed vector mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSkipsBlankLines(t *testing.T) {
	v, err := Parse(strings.NewReader("01\n\n10\n"))
	require.NoError(t, err)
	assert.Len(t, v.Rows, 2)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"ragged rows", "0 1\n0 1 1\n"},
		{"digit above the state range", "06\n"},
		{"stray character", "0a1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.src))
			require.Error(t, err)
			assert.Equal(t, fetxerr.FFormat, fetxerr.KindOf(err))
		})
	}
}

func TestSplit(t *testing.T) {
	v := Vector{
		Width: 3,
		Rows: [][]fetx.State{
			{fetx.Low, fetx.High, fetx.High},
			{fetx.High, fetx.Low, fetx.Low},
		},
	}

	in, out, err := v.Split(2)
	require.NoError(t, err)

	assert.Equal(t, 2, in.Width)
	assert.Equal(t, 1, out.Width)
	assert.Equal(t, []fetx.State{fetx.Low, fetx.High}, in.Rows[0])
	assert.Equal(t, []fetx.State{fetx.High}, out.Rows[0])
	assert.Equal(t, []fetx.State{fetx.Low}, out.Rows[1])
}

func TestSplitOutOfRange(t *testing.T) {
	v := Vector{Width: 2, Rows: [][]fetx.State{{fetx.Low, fetx.High}}}
	_, _, err := v.Split(3)
	require.Error(t, err)
	assert.Equal(t, fetxerr.Param, fetxerr.KindOf(err))
}

func TestWriteRoundTrip(t *testing.T) {
	v := Vector{
		Width: 4,
		Rows: [][]fetx.State{
			{fetx.Low, fetx.High, fetx.UnstableMultiple, fetx.Undriven},
			{fetx.High, fetx.Low, fetx.UnstableLow, fetx.UnstableHigh},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, v))
	assert.Equal(t, "0145\n1023\n", buf.String())

	reparsed, err := Parse(&buf)
	require.NoError(t, err)
	if diff := cmp.Diff(v, reparsed); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestReadWriteFile(t *testing.T) {
	v := Vector{
		Width: 2,
		Rows:  [][]fetx.State{{fetx.Low, fetx.High}},
	}
	path := t.TempDir() + "/steps.vec"
	require.NoError(t, WriteFile(path, v))

	got, err := Read(path)
	require.NoError(t, err)
	if diff := cmp.Diff(v, got); diff != "" {
		t.Errorf("file round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read("does/not/exist.vec")
	require.Error(t, err)
	assert.Equal(t, fetxerr.FOpen, fetxerr.KindOf(err))
}
