//Package matrixGen generates text matrices of uniformly distributed random floats.
//Rows are streamed to the output, the full matrix is never held in memory
package matrixGen

import (
	"bufio"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

//MaxPrecision is the largest number of fractional digits a Config may request
const MaxPrecision = 15

var ErrInvalidRange = errors.New("lower bound must be smaller than upper bound")
var ErrInvalidPrecision = errors.New("precision out of range")
var ErrNoTokenInRange = errors.New("no token with the requested precision lies in the interval")

//Config describes the sampled interval [Low,High[ and the token format
type Config struct {
	Low  float64
	High float64
	//Precision is the number of digits after the decimal point of each token
	Precision int
}

//DefaultConfig samples from [0,100[ and formats with 6 fractional digits
func DefaultConfig() Config {
	return Config{Low: 0, High: 100, Precision: 6}
}

//Validate returns an error if c cannot be used to create a Generator
func (c Config) Validate() error {
	if math.IsNaN(c.Low) || math.IsNaN(c.High) || math.IsInf(c.Low, 0) || math.IsInf(c.High, 0) || !(c.Low < c.High) {
		return fmt.Errorf("[%v,%v[ : %w", c.Low, c.High, ErrInvalidRange)
	}
	if c.Precision < 0 || c.Precision > MaxPrecision {
		return fmt.Errorf("%v not in [0,%v] : %w", c.Precision, MaxPrecision, ErrInvalidPrecision)
	}
	if first := c.firstToken(); !(first < c.High) {
		return fmt.Errorf("[%v,%v[ with precision %v, smallest token %v : %w", c.Low, c.High, c.Precision, first, ErrNoTokenInRange)
	}
	return nil
}

//tokenValue returns the value a reader parses from the token of v
func tokenValue(buf []byte, v float64, precision int) float64 {
	//a token produced by AppendToken always parses
	parsed, _ := strconv.ParseFloat(string(AppendToken(buf[:0], v, precision)), 64)
	return parsed
}

//firstToken returns the value of the smallest token that is >= c.Low
func (c Config) firstToken() float64 {
	var buf [64]byte
	first := tokenValue(buf[:], c.Low, c.Precision)
	if first < c.Low {
		first = tokenValue(buf[:], first+math.Pow10(-c.Precision), c.Precision)
	}
	return first
}

//Generator draws rows of independent uniform samples and writes them as text lines
type Generator struct {
	config Config
	dist   distuv.Uniform
	rng    *rand.Rand
	//samples in [innerLow,innerHigh[ are formatted as tokens in [Low,High[ without further checks.
	//Samples outside are formatted and checked, those whose token leaves [Low,High[ are drawn again
	innerLow  float64
	innerHigh float64
	metrics   *Metrics
	logger    *log.Logger
	//reused row, line and token buffers
	values []float64
	line   []byte
	token  []byte
}

//NewSeededSource returns a deterministic source, calling it with the same seed yields the same matrices
func NewSeededSource(seed uint64) rand.Source {
	return rand.NewSource(seed)
}

//NewEntropySource returns a source seeded from the operating system's entropy pool
func NewEntropySource() (rand.Source, error) {
	var seedBuf [8]byte
	if _, err := crand.Read(seedBuf[:]); err != nil {
		return nil, fmt.Errorf("failed to read seed : %w", err)
	}
	return rand.NewSource(binary.LittleEndian.Uint64(seedBuf[:])), nil
}

//NewGenerator creates a Generator drawing from src. metrics and logger may be nil
func NewGenerator(src rand.Source, config Config, metrics *Metrics, logger *log.Logger) (*Generator, error) {
	if src == nil {
		return nil, fmt.Errorf("random source must not be nil")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if metrics == nil {
		metrics = NewMetrics(nil)
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	//Uniform.Rand allocates a rand.Rand per call, Sample uses Quantile with rng instead
	rng := rand.New(src)
	step := math.Pow10(-config.Precision)
	return &Generator{
		config:    config,
		dist:      distuv.Uniform{Min: config.Low, Max: config.High, Src: rng},
		rng:       rng,
		innerLow:  config.Low + step,
		innerHigh: config.High - step,
		metrics:   metrics,
		logger:    logger,
		token:     make([]byte, 0, 64),
	}, nil
}

//Config returns the configuration g was created with
func (g *Generator) Config() Config {
	return g.config
}

//Sample returns a single value in [Low,High[ whose token is also in [Low,High[
func (g *Generator) Sample() float64 {
	for {
		v := g.dist.Quantile(g.rng.Float64())
		if g.inRange(v) {
			return v
		}
		g.metrics.Redraws.Inc()
	}
}

//inRange reports whether v and its token both lie in [Low,High[
func (g *Generator) inRange(v float64) bool {
	if v >= g.innerLow && v < g.innerHigh {
		return true
	}
	if v < g.config.Low || v >= g.config.High {
		return false
	}
	t := tokenValue(g.token, v, g.config.Precision)
	return t >= g.config.Low && t < g.config.High
}

//Row fills dst with independent samples and returns it
func (g *Generator) Row(dst []float64) []float64 {
	for i := range dst {
		dst[i] = g.Sample()
	}
	return dst
}

//Write writes rows lines with cols tokens each to w and returns the number of written bytes.
//Non-positive rows write nothing, non-positive cols write rows empty lines
func (g *Generator) Write(w io.Writer, rows, cols int) (int64, error) {
	bw := bufio.NewWriter(w)
	written := int64(0)
	if cols < 0 {
		cols = 0
	}
	if cap(g.values) < cols {
		g.values = make([]float64, cols)
	}
	g.values = g.values[:cols]
	for i := 0; i < rows; i++ {
		g.line = AppendRow(g.line[:0], g.Row(g.values), g.config.Precision)
		n, err := bw.Write(g.line)
		written += int64(n)
		g.metrics.Bytes.Add(float64(n))
		if err != nil {
			return written, fmt.Errorf("failed to write row %v : %w", i, err)
		}
		g.metrics.Rows.Inc()
		if cols > 0 {
			g.metrics.Values.Add(float64(cols))
		}
	}
	if err := bw.Flush(); err != nil {
		return written, fmt.Errorf("failed to flush rows : %w", err)
	}
	return written, nil
}

//WriteFile creates or truncates path and writes a rows x cols matrix to it.
//The file is closed on all paths. On error the file may contain a partial matrix
func (g *Generator) WriteFile(path string, rows, cols int) (err error) {
	outFile, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create output file : %w", err)
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil {
			g.logger.Printf("failed to close %v : %v", path, closeErr)
			if err == nil {
				err = fmt.Errorf("failed to close output file : %w", closeErr)
			}
		}
	}()

	written, err := g.Write(outFile, rows, cols)
	if err != nil {
		return err
	}
	g.logger.Printf("wrote %vx%v matrix (%v) to %v", rows, cols, humanize.Bytes(uint64(written)), path)
	return nil
}
