package setpacking

import (
	"bufio"
	"bytes"
	"fmt"
	"math"
	"math/rand"
	"os"
	"strconv"
	"strings"
)

// DefaultWeightRange is the weight bound used when RandomNumberList is
// called with weightRange <= 0.
const DefaultWeightRange = 100

// defaultRNGSeed is the fixed seed behind a nil rng. The value is
// arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// RandomNumberList generates n uniformly distributed integers in
// [1, weightRange], the companion weights for a problem instance.
//
// A nil rng selects a deterministic default stream; weightRange <= 0
// selects DefaultWeightRange. If savefile is non-empty the numbers are
// also written there, one decimal integer per line, replacing any
// existing file. Returns ErrNegativeCount for n < 0 and propagates any
// write failure.
func RandomNumberList(rng *rand.Rand, n, weightRange int, savefile string) ([]int, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	if weightRange <= 0 {
		weightRange = DefaultWeightRange
	}
	r := rng
	if r == nil {
		r = rand.New(rand.NewSource(defaultRNGSeed))
	}

	numbers := make([]int, n)
	for i := range numbers {
		numbers[i] = 1 + r.Intn(weightRange)
	}

	if savefile != "" {
		if err := writeNumbers(savefile, numbers); err != nil {
			return nil, err
		}
		moduleLogger().Debug("saved instance weights", "path", savefile, "count", n)
	}

	return numbers, nil
}

// writeNumbers writes one decimal integer per line, truncating path.
func writeNumbers(path string, numbers []int) error {
	var buf bytes.Buffer
	for _, v := range numbers {
		fmt.Fprintf(&buf, "%d\n", v)
	}

	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// ReadNumbersFromFile reads one numeric token per line and returns the
// parsed integers.
//
// The contract is strict: every line must parse as a float64 whose
// rounding to the nearest integer reproduces the value exactly.
// Integer-formatted floats such as "3.0" are accepted; "2.5" fails with
// ErrNonIntegerLine, non-numeric content fails with the wrapped parse
// error, and I/O failures propagate. There is no partial result.
func ReadNumbersFromFile(filename string) ([]int, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var numbers []int
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, fmt.Errorf("setpacking: line %q: %w", line, err)
		}
		r := math.Round(v)
		if r != v {
			return nil, fmt.Errorf("%w: %q", ErrNonIntegerLine, line)
		}
		numbers = append(numbers, int(r))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return numbers, nil
}
