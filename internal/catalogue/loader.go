// Package catalogue loads polygon templates from the line-oriented
// shape catalogue format:
//
//	name: (x1,y1),(x2,y2),(x3,y3),...
//
// Malformed lines and unparseable coordinate pairs are skipped
// individually; only an empty result fails the load.
package catalogue

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/kyiku/hackz-mosaic-back/internal/geometry"
)

// ErrEmpty is returned when a source yields no usable outlines. The run
// cannot proceed without at least one shape.
var ErrEmpty = errors.New("catalogue: no usable shapes")

// MinVertices is the smallest outline that still encloses area.
const MinVertices = 3

// Parse reads catalogue lines from r. Lines without a colon are
// skipped, as are coordinate pairs that do not parse; a name whose line
// yields fewer than MinVertices points is dropped.
func Parse(r io.Reader) (map[string]geometry.Outline, error) {
	shapes := make(map[string]geometry.Outline)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		name, rest, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		outline := parseOutline(strings.TrimSpace(rest))
		if len(outline) >= MinVertices {
			shapes[name] = outline
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("catalogue: read failed: %w", err)
	}
	if len(shapes) == 0 {
		return nil, ErrEmpty
	}
	return shapes, nil
}

// parseOutline parses "(x1,y1),(x2,y2),..." keeping every pair that
// parses and dropping the rest.
func parseOutline(s string) geometry.Outline {
	var outline geometry.Outline
	for _, pair := range strings.Split(s, "),") {
		pair = strings.TrimSpace(pair)
		pair = strings.TrimPrefix(pair, "(")
		pair = strings.TrimSuffix(pair, ")")
		xs, ys, ok := strings.Cut(pair, ",")
		if !ok {
			continue
		}
		x, errX := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if errX != nil || errY != nil {
			continue
		}
		outline = append(outline, geometry.Point{X: x, Y: y})
	}
	return outline
}

// LoadFile loads the catalogue from a local file. A missing file is a
// fatal load error.
func LoadFile(path string) (map[string]geometry.Outline, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalogue: failed to open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// ObjectGetter fetches raw catalogue bytes from object storage.
type ObjectGetter interface {
	GetObject(key string) ([]byte, error)
}

// LoadObject loads the catalogue from object storage.
func LoadObject(getter ObjectGetter, key string) (map[string]geometry.Outline, error) {
	data, err := getter.GetObject(key)
	if err != nil {
		return nil, fmt.Errorf("catalogue: failed to get object %s: %w", key, err)
	}
	return Parse(bytes.NewReader(data))
}

// Names returns the shape names in sorted order so seeded runs pick
// templates deterministically.
func Names(shapes map[string]geometry.Outline) []string {
	names := make([]string, 0, len(shapes))
	for name := range shapes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
