//Package matrixFile reads and validates the whitespace separated text matrices written by matrixGen
package matrixFile

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"

	"github.com/klauspost/readahead"
	"github.com/pbnjay/memory"
)

const (
	readaheadBuffers    = 4
	readaheadBufferSize = 1 << 20
	//longest accepted line, ~25M tokens in the default format
	maxLineSize = 256 << 20
	//lower bound for the in-memory size of a parsed matrix relative to its text size. The shortest
	//token plus separator is 2 bytes and is stored as an 8 byte float64
	inMemoryBytesPerTextByte = 4
)

var ErrInconsistentColumns = errors.New("inconsistent number of columns")
var ErrMalformedToken = errors.New("malformed token")
var ErrTooLarge = errors.New("matrix does not fit into memory")

//totalMemory reports the system memory in bytes, 0 if unknown. Replaced in tests
var totalMemory = memory.TotalMemory

//Matrix is a fully materialized text matrix
type Matrix struct {
	Rows int
	Cols int
	Data [][]float64
}

//rowHandler gets called for each line with its 0-based index and the whitespace separated fields
type rowHandler func(rowIDX int, fields [][]byte) error

//scanRows calls handle for every line in r and enforces that all lines have the same number of fields as the first one.
//Returns the number of lines and fields per line
func scanRows(r io.Reader, handle rowHandler) (int, int, error) {
	ra, err := readahead.NewReaderSize(r, readaheadBuffers, readaheadBufferSize)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to setup readahead : %w", err)
	}
	defer ra.Close()

	scanner := bufio.NewScanner(ra)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	rows, cols := 0, 0
	for scanner.Scan() {
		fields := bytes.Fields(scanner.Bytes())
		if rows == 0 {
			cols = len(fields)
		} else if len(fields) != cols {
			return rows, cols, fmt.Errorf("row %v has %v columns, first row has %v : %w", rows+1, len(fields), cols, ErrInconsistentColumns)
		}
		if err := handle(rows, fields); err != nil {
			return rows, cols, err
		}
		rows++
	}
	if err := scanner.Err(); err != nil {
		return rows, cols, fmt.Errorf("error scanning for lines : %w", err)
	}
	return rows, cols, nil
}

//parseToken parses a finite decimal number
func parseToken(token []byte) (float64, error) {
	v, err := strconv.ParseFloat(string(token), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrMalformedToken
	}
	return v, nil
}

//Read parses a whole matrix from r. The first line determines the number of columns, every other line must match it.
//Empty lines are rows without columns
func Read(r io.Reader) (*Matrix, error) {
	m := &Matrix{Data: make([][]float64, 0)}
	rows, cols, err := scanRows(r, func(rowIDX int, fields [][]byte) error {
		row := make([]float64, len(fields))
		for j, field := range fields {
			v, err := parseToken(field)
			if err != nil {
				return fmt.Errorf("row %v col %v %q : %w", rowIDX+1, j+1, field, err)
			}
			row[j] = v
		}
		m.Data = append(m.Data, row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	m.Rows = rows
	m.Cols = cols
	return m, nil
}

//ReadFile reads the matrix stored at path. Refuses files whose parsed representation would likely exceed
//the total system memory
func ReadFile(path string) (*Matrix, error) {
	inFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open matrix file : %w", err)
	}
	defer func() {
		if closeErr := inFile.Close(); closeErr != nil {
			log.Printf("failed to close %v : %v", path, closeErr)
		}
	}()

	info, err := inFile.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat %v : %w", path, err)
	}
	if available := totalMemory(); available > 0 && uint64(info.Size())*inMemoryBytesPerTextByte > available {
		return nil, fmt.Errorf("%v has %v bytes : %w", path, info.Size(), ErrTooLarge)
	}

	m, err := Read(inFile)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %v : %w", path, err)
	}
	return m, nil
}
