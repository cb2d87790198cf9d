//Package main generates a text file with a rows x cols matrix of random floats in [0,100[.
//Usage: randomFloatMatrix rows cols output_file
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"randMatrix/matrixGen"
)

var errUsage = errors.New("wrong number of arguments")

const usageText = "Usage: randomFloatMatrix rows cols output_file\n" +
	"Output: Generates a matrix with random float values to output_file\n"

//application bundles the positional arguments
type application struct {
	rows       int
	cols       int
	outputFile string
}

//parseArgs converts the positional arguments (without program name). Counts may be zero or negative
func parseArgs(args []string) (*application, error) {
	if len(args) != 3 {
		return nil, errUsage
	}
	rows, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return nil, fmt.Errorf("failed to parse rows : %w", err)
	}
	cols, err := strconv.Atoi(strings.TrimSpace(args[1]))
	if err != nil {
		return nil, fmt.Errorf("failed to parse cols : %w", err)
	}
	return &application{rows: rows, cols: cols, outputFile: args[2]}, nil
}

//run generates the matrix described by args and prints the confirmation to stdout
func run(args []string, stdout io.Writer, logger *log.Logger) error {
	app, err := parseArgs(args)
	if err != nil {
		return err
	}

	src, err := matrixGen.NewEntropySource()
	if err != nil {
		return err
	}
	generator, err := matrixGen.NewGenerator(src, matrixGen.DefaultConfig(), nil, logger)
	if err != nil {
		return err
	}
	if err := generator.WriteFile(app.outputFile, app.rows, app.cols); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Generated %vx%v matrix in %v\n", app.rows, app.cols, app.outputFile)
	return nil
}

func main() {
	//generator diagnostics are not part of the output contract
	quiet := log.New(io.Discard, "", 0)
	if err := run(os.Args[1:], os.Stdout, quiet); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Print(usageText)
			os.Exit(1)
		}
		log.Fatalf("randomFloatMatrix failed : %v", err)
	}
}
