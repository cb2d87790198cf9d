//Package main provides a flag based cli for matrixGen with configurable interval, precision and seed
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"randMatrix/matrixGen"
)

//application bundles the command line configuration options
type application struct {
	rows            int
	cols            int
	outPath         string
	seed            uint64
	config          matrixGen.Config
	metricsTextfile string
}

//ParseAndValidateFlags parses args (without program name), and returns the parsed values if all logic checks pass.
//Otherwise a multiline error is returned that also contains an overview over all flags
func ParseAndValidateFlags(args []string) (*application, error) {
	usageBuf := &bytes.Buffer{}
	cmdFlags := flag.NewFlagSet("matrixGen", flag.ContinueOnError)
	cmdFlags.SetOutput(usageBuf)

	defaults := matrixGen.DefaultConfig()
	rows := cmdFlags.Int("rows", 0, "Number of lines to generate")
	cols := cmdFlags.Int("cols", 0, "Number of space separated values per line")
	outPath := cmdFlags.String("out", "", "Path of the matrix file. Existing files are overwritten")
	seed := cmdFlags.Uint64("seed", 0, "Seed for the pseudo RNG. 0 seeds from the operating system's entropy pool")
	low := cmdFlags.Float64("low", defaults.Low, "Inclusive lower bound of the sampled interval")
	high := cmdFlags.Float64("high", defaults.High, "Exclusive upper bound of the sampled interval")
	precision := cmdFlags.Int("precision", defaults.Precision, "Digits after the decimal point")
	metricsTextfile := cmdFlags.String("metricsTextfile", "", "If set, write generation counters in the prometheus text format to this path")

	if err := cmdFlags.Parse(args); err != nil {
		return nil, fmt.Errorf("%v\n%s", err, usageBuf.String())
	}

	config := matrixGen.Config{Low: *low, High: *high, Precision: *precision}
	err := func() (descriptiveError error) {
		//append usage string if we return an error
		defer func() {
			if descriptiveError != nil {
				cmdFlags.PrintDefaults()
				descriptiveError = fmt.Errorf("%v\nUsage:\n%s", descriptiveError.Error(), usageBuf.String())
			}
		}()

		if *outPath == "" {
			return fmt.Errorf("please set \"out\"")
		}
		if *rows < 0 || *cols < 0 {
			return fmt.Errorf("rows and cols must not be negative")
		}
		if cmdFlags.NArg() != 0 {
			return fmt.Errorf("unexpected positional arguments %v", cmdFlags.Args())
		}
		return config.Validate()
	}()
	if err != nil {
		return nil, err
	}

	return &application{
		rows:            *rows,
		cols:            *cols,
		outPath:         *outPath,
		seed:            *seed,
		config:          config,
		metricsTextfile: *metricsTextfile,
	}, nil
}

//run generates the matrix described by app. Counters are registered with reg
func run(app *application, reg *prometheus.Registry, logger *log.Logger) error {
	src := matrixGen.NewSeededSource(app.seed)
	if app.seed == 0 {
		var err error
		if src, err = matrixGen.NewEntropySource(); err != nil {
			return err
		}
	}

	generator, err := matrixGen.NewGenerator(src, app.config, matrixGen.NewMetrics(reg), logger)
	if err != nil {
		return err
	}
	if err := generator.WriteFile(app.outPath, app.rows, app.cols); err != nil {
		return err
	}

	if app.metricsTextfile != "" {
		if err := prometheus.WriteToTextfile(app.metricsTextfile, reg); err != nil {
			return fmt.Errorf("failed to write metrics : %w", err)
		}
	}
	return nil
}

func main() {
	app, err := ParseAndValidateFlags(os.Args[1:])
	if err != nil {
		fmt.Printf("Error parsing config : %v\n", err)
		os.Exit(1)
	}

	logger := log.New(os.Stderr, "matrixGen: ", log.LstdFlags)
	if err := run(app, prometheus.NewRegistry(), logger); err != nil {
		log.Fatalf("Failed to generate matrix : %v\n", err)
	}
	fmt.Printf("Generated %vx%v matrix in %v\n", app.rows, app.cols, app.outPath)
}
