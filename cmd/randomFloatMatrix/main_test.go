package main

import (
	"bytes"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"randMatrix/matrixFile"
)

var discard = log.New(io.Discard, "", 0)

func Test_run(t *testing.T) {
	tests := []struct {
		name      string
		rows      int
		cols      int
		wantLines int
	}{
		{name: "2x3", rows: 2, cols: 3, wantLines: 2},
		{name: "square", rows: 25, cols: 25, wantLines: 25},
		{name: "zero rows", rows: 0, cols: 4, wantLines: 0},
		{name: "zero cols", rows: 3, cols: 0, wantLines: 3},
		{name: "negative rows", rows: -2, cols: 3, wantLines: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outPath := filepath.Join(t.TempDir(), "matrix.txt")
			stdout := &bytes.Buffer{}
			args := []string{strconv.Itoa(tt.rows), strconv.Itoa(tt.cols), outPath}
			require.NoError(t, run(args, stdout, discard))

			assert.Equal(t, "Generated "+args[0]+"x"+args[1]+" matrix in "+outPath+"\n", stdout.String())

			content, err := os.ReadFile(outPath)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLines, strings.Count(string(content), "\n"))

			f, err := os.Open(outPath)
			require.NoError(t, err)
			defer f.Close()
			rows, cols, err := matrixFile.CheckTokens(f, matrixFile.TokenSpec{Low: 0, High: 100, Precision: 6})
			require.NoError(t, err)
			assert.Equal(t, tt.wantLines, rows)
			if tt.wantLines > 0 {
				assert.Equal(t, tt.cols, cols)
			}
		})
	}
}

func Test_runWrongArgumentCount(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "matrix.txt")
	argLists := [][]string{
		{},
		{"2"},
		{"2", "3"},
		{"2", "3", outPath, "extra"},
	}
	for _, args := range argLists {
		stdout := &bytes.Buffer{}
		err := run(args, stdout, discard)
		assert.True(t, errors.Is(err, errUsage), "args %v : got %v", args, err)
		assert.Empty(t, stdout.String())
	}
	_, err := os.Stat(outPath)
	assert.True(t, os.IsNotExist(err), "no output file may be created")
}

func Test_runParseErrorLeavesFileUntouched(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "matrix.txt")
	require.NoError(t, os.WriteFile(outPath, []byte("previous\n"), 0644))

	for _, args := range [][]string{{"abc", "3", outPath}, {"3", "1.5", outPath}, {"", "3", outPath}} {
		err := run(args, &bytes.Buffer{}, discard)
		require.Error(t, err)
		assert.False(t, errors.Is(err, errUsage))
		var numErr *strconv.NumError
		assert.True(t, errors.As(err, &numErr), "want a conversion error, got %v", err)
	}

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "previous\n", string(content))
}

func Test_runOverwritesPreviousOutput(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "matrix.txt")
	require.NoError(t, run([]string{"50", "8", outPath}, &bytes.Buffer{}, discard))
	require.NoError(t, run([]string{"2", "3", outPath}, &bytes.Buffer{}, discard))

	m, err := matrixFile.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows)
	assert.Equal(t, 3, m.Cols)
}

func Test_runUnwritablePath(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "no-such-dir", "matrix.txt")
	stdout := &bytes.Buffer{}
	err := run([]string{"2", "2", outPath}, stdout, discard)
	require.Error(t, err)
	assert.Empty(t, stdout.String())
}

func Test_parseArgs(t *testing.T) {
	app, err := parseArgs([]string{" 7 ", "-3", "out.txt"})
	require.NoError(t, err)
	assert.Equal(t, &application{rows: 7, cols: -3, outputFile: "out.txt"}, app)
}
