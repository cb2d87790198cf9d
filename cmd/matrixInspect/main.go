//Package main inspects matrix files: dimensions, summary statistics, a printout and optionally
//a format check and a histogram plot
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"randMatrix/histPlot"
	"randMatrix/matrixFile"
	"randMatrix/matrixGen"
	"randMatrix/matrixStats"
)

//application bundles the command line configuration options
type application struct {
	paths      []string
	check      bool
	spec       matrixFile.TokenSpec
	plotFolder string
	bins       int
	workers    int
}

//closeWithErrLog is a helper that calls Close on c and prints a log message if an error occurs
func closeWithErrLog(name string, c io.Closer) {
	if err := c.Close(); err != nil {
		log.Printf("failed to close %v : %v", name, err)
	}
}

//ParseAndValidateFlags parses args (without program name), and returns the parsed values if all logic checks pass.
//Otherwise a multiline error is returned that also contains an overview over all flags
func ParseAndValidateFlags(args []string) (*application, error) {
	usageBuf := &bytes.Buffer{}
	cmdFlags := flag.NewFlagSet("matrixInspect", flag.ContinueOnError)
	cmdFlags.SetOutput(usageBuf)

	defaults := matrixGen.DefaultConfig()
	check := cmdFlags.Bool("check", false, "Verify that every token has \"precision\" fractional digits and lies in [low,high[")
	low := cmdFlags.Float64("low", defaults.Low, "Inclusive lower bound used by check and plot")
	high := cmdFlags.Float64("high", defaults.High, "Exclusive upper bound used by check and plot")
	precision := cmdFlags.Int("precision", defaults.Precision, "Expected digits after the decimal point")
	plotFolder := cmdFlags.String("plot", "", "If set, store a histogram png for every input file in this folder")
	bins := cmdFlags.Int("bins", 20, "Number of histogram bins")
	workers := cmdFlags.Int("numWorkers", runtime.NumCPU(), "Number of files inspected in parallel")

	if err := cmdFlags.Parse(args); err != nil {
		return nil, fmt.Errorf("%v\n%s", err, usageBuf.String())
	}

	err := func() (descriptiveError error) {
		defer func() {
			if descriptiveError != nil {
				cmdFlags.PrintDefaults()
				descriptiveError = fmt.Errorf("%v\nUsage: matrixInspect [flags] file...\n%s", descriptiveError.Error(), usageBuf.String())
			}
		}()
		if cmdFlags.NArg() == 0 {
			return fmt.Errorf("please pass at least one matrix file")
		}
		if !(*low < *high) {
			return fmt.Errorf("low must be smaller than high")
		}
		if *precision < 0 || *precision > matrixGen.MaxPrecision {
			return fmt.Errorf("precision must be in [0,%v]", matrixGen.MaxPrecision)
		}
		if *bins <= 0 {
			return fmt.Errorf("bins must be positive")
		}
		if *workers <= 0 {
			return fmt.Errorf("numWorkers must be positive")
		}
		return nil
	}()
	if err != nil {
		return nil, err
	}

	return &application{
		paths:      cmdFlags.Args(),
		check:      *check,
		spec:       matrixFile.TokenSpec{Low: *low, High: *high, Precision: *precision},
		plotFolder: *plotFolder,
		bins:       *bins,
		workers:    *workers,
	}, nil
}

//checkFile runs matrixFile.CheckTokens on the file at path
func checkFile(path string, spec matrixFile.TokenSpec) error {
	inFile, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %v : %w", path, err)
	}
	defer closeWithErrLog(inFile.Name(), inFile)
	if _, _, err := matrixFile.CheckTokens(inFile, spec); err != nil {
		return fmt.Errorf("format check failed for %v : %w", path, err)
	}
	return nil
}

//StorePlot stores the histogram of values as plot-<name>.png in folderPath
func StorePlot(values []float64, app *application, name string) error {
	plotPath := filepath.Join(app.plotFolder, fmt.Sprintf("plot-%s.png", strings.TrimSuffix(name, filepath.Ext(name))))
	plotFile, err := os.Create(plotPath)
	if err != nil {
		return fmt.Errorf("failed to create plot file : %v", err)
	}
	defer closeWithErrLog(plotFile.Name(), plotFile)

	if err := histPlot.PlotAndStore(values, app.bins, app.spec.Low, app.spec.High, plotFile); err != nil {
		return err
	}
	return plotFile.Sync()
}

//inspect builds the report for the file at position idx of the arguments
func inspect(idx int, path string, app *application) (string, error) {
	if app.check {
		if err := checkFile(path, app.spec); err != nil {
			return "", err
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to stat %v : %w", path, err)
	}
	m, err := matrixFile.ReadFile(path)
	if err != nil {
		return "", err
	}

	report := &bytes.Buffer{}
	fmt.Fprintf(report, "%v: %vx%v matrix, %v\n", path, m.Rows, m.Cols, humanize.Bytes(uint64(info.Size())))
	values := m.Values()
	if summary, err := matrixStats.Summarize(values); err == nil {
		wantMean, wantStdDev := matrixStats.UniformExpectation(app.spec.Low, app.spec.High)
		fmt.Fprintf(report, "%v\nuniform reference mean=%.6f stddev=%.6f\n", summary, wantMean, wantStdDev)
	} else {
		fmt.Fprintf(report, "no values\n")
	}
	if err := matrixFile.Print(report, m); err != nil {
		return "", err
	}

	if app.plotFolder != "" && len(values) > 0 {
		//the argument index keeps plots of equally named files in different folders apart
		if err := StorePlot(values, app, fmt.Sprintf("%d-%s", idx, filepath.Base(path))); err != nil {
			return "", fmt.Errorf("failed to plot %v : %w", path, err)
		}
	}
	return report.String(), nil
}

//run inspects all files with up to app.workers in parallel and writes the reports to out in argument order
func run(ctx context.Context, app *application, out io.Writer) error {
	if app.plotFolder != "" {
		if err := os.MkdirAll(app.plotFolder, os.ModePerm); err != nil {
			return fmt.Errorf("failed to create plot folder : %w", err)
		}
	}

	reports := make([]string, len(app.paths))
	workers, ctx := errgroup.WithContext(ctx)
	workers.SetLimit(app.workers)
	for i, path := range app.paths {
		i, path := i, path
		workers.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			report, err := inspect(i, path, app)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}
	if err := workers.Wait(); err != nil {
		return err
	}

	for i, report := range reports {
		if i > 0 {
			if _, err := io.WriteString(out, "\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(out, report); err != nil {
			return err
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

	if err := run(context.Background(), app, os.Stdout); err != nil {
		log.Fatalf("Inspection failed : %v\n", err)
	}
}
