package engine

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"

	"unitengine/internal/quantity"
	"unitengine/internal/units"
)

var pow10 = [...]float64{1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10, 1e11, 1e12, 1e13, 1e14, 1e15}

// fastFloat parses "-123.45" -> -123.45. Up to 15 digits the mantissa is
// exact, so one division rounds correctly; anything longer or fancier
// (exponents, inf) goes through strconv. An empty field is a null.
func fastFloat(b []byte) (float64, error) {
	if len(b) == 0 {
		return math.NaN(), nil
	}
	i := 0
	neg := false
	if b[0] == '-' || b[0] == '+' {
		neg = b[0] == '-'
		i++
	}
	var mant uint64
	digits, frac := 0, -1
	for ; i < len(b); i++ {
		c := b[i]
		switch {
		case c >= '0' && c <= '9':
			mant = mant*10 + uint64(c-'0')
			digits++
			if frac >= 0 {
				frac++
			}
		case c == '.' && frac < 0:
			frac = 0
		default:
			return strconv.ParseFloat(string(b), 64)
		}
	}
	if digits == 0 || digits > 15 {
		return strconv.ParseFloat(string(b), 64)
	}
	v := float64(mant)
	if frac > 0 {
		v /= pow10[frac]
	}
	if neg {
		v = -v
	}
	return v, nil
}

// eachLine calls fn for every non-blank line in chunk, without the line
// terminator.
func eachLine(chunk []byte, fn func(line []byte) error) error {
	for len(chunk) > 0 {
		line, rest, _ := bytes.Cut(chunk, []byte{'\n'})
		chunk = rest
		line = bytes.TrimSuffix(line, []byte{'\r'})
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	return nil
}

// chunkBounds splits content into n ranges that start and end on line
// boundaries. Neighbouring ranges use the same alignment, so every line
// falls in exactly one of them.
func chunkBounds(content []byte, n int) [][2]int {
	align := func(p int) int {
		if p <= 0 {
			return 0
		}
		if p >= len(content) {
			return len(content)
		}
		if i := bytes.IndexByte(content[p:], '\n'); i != -1 {
			return p + i + 1
		}
		return len(content)
	}
	size := len(content) / n
	bounds := make([][2]int, n)
	for i := range bounds {
		end := align((i + 1) * size)
		if i == n-1 {
			end = len(content)
		}
		bounds[i] = [2]int{align(i * size), end}
	}
	return bounds
}

// parseHeader reads "name:unit,name:unit,...". A column without a unit is
// dimensionless. Every unit must be a registered unit name.
func parseHeader(line []byte, reg *units.Registry) ([]*Column, error) {
	fields := strings.Split(strings.TrimSuffix(string(line), "\r"), ",")
	cols := make([]*Column, len(fields))
	seen := make(map[string]bool, len(fields))
	for i, f := range fields {
		name, unit, _ := strings.Cut(strings.TrimSpace(f), ":")
		name, unit = strings.TrimSpace(name), strings.TrimSpace(unit)
		if name == "" {
			return nil, fmt.Errorf("%w: header field %d has no name", ErrMalformed, i)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: duplicate column %q", ErrMalformed, name)
		}
		seen[name] = true

		col := &Column{Name: name}
		if unit != "" {
			if _, err := reg.GetUnit(unit); err != nil {
				return nil, fmt.Errorf("column %q: %w", name, err)
			}
			col.Unit = quantity.Of(unit)
		}
		cols[i] = col
	}
	return cols, nil
}

// LoadColumnar reads a CSV file whose header names each column and its unit,
// and returns one float64 column per header field.
func LoadColumnar(path string, reg *units.Registry) (*Store, error) {
	start := time.Now()
	log.Infof("loading %s", path)

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	store, err := parseColumnar(content, reg, runtime.NumCPU())
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	log.Infof("load complete: %d columns, %d rows in %v", len(store.Names()), store.Rows(), time.Since(start))
	return store, nil
}

func parseColumnar(content []byte, reg *units.Registry, numWorkers int) (*Store, error) {
	header, body, _ := bytes.Cut(content, []byte{'\n'})
	if len(bytes.TrimSpace(header)) == 0 {
		return nil, fmt.Errorf("%w: missing header", ErrMalformed)
	}
	cols, err := parseHeader(header, reg)
	if err != nil {
		return nil, err
	}
	numWorkers = max(1, numWorkers)
	bounds := chunkBounds(body, numWorkers)

	// Count rows per chunk so every column is allocated once.
	rowCounts := make([]int, numWorkers)
	var count errgroup.Group
	for i, b := range bounds {
		count.Go(func() error {
			return eachLine(body[b[0]:b[1]], func([]byte) error {
				rowCounts[i]++
				return nil
			})
		})
	}
	_ = count.Wait()

	offsets := make([]int, numWorkers)
	totalRows := 0
	for i, c := range rowCounts {
		offsets[i] = totalRows
		totalRows += c
	}
	for _, c := range cols {
		c.Values = make([]float64, totalRows)
	}

	sep := []byte{','}
	var parse errgroup.Group
	for i, b := range bounds {
		parse.Go(func() error {
			row := offsets[i]
			return eachLine(body[b[0]:b[1]], func(line []byte) error {
				rest := line
				for j, c := range cols {
					field, tail, found := bytes.Cut(rest, sep)
					if !found && j < len(cols)-1 {
						return fmt.Errorf("%w: row %d has %d fields, want %d", ErrMalformed, row, j+1, len(cols))
					}
					if found && j == len(cols)-1 {
						return fmt.Errorf("%w: row %d has more than %d fields", ErrMalformed, row, len(cols))
					}
					v, err := fastFloat(bytes.TrimSpace(field))
					if err != nil {
						return fmt.Errorf("%w: row %d column %q: %v", ErrMalformed, row, c.Name, err)
					}
					c.Values[row] = v
					rest = tail
				}
				row++
				return nil
			})
		})
	}
	if err := parse.Wait(); err != nil {
		return nil, err
	}
	return NewStore(cols...), nil
}
