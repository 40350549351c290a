// Package params prompts for and clamps the run parameters.
package params

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Configured parameter bounds. Out-of-range input is clamped, never
// rejected.
const (
	MinStretch = 1.0
	MaxStretch = 10.0

	MinSeed = 1
	MaxSeed = 99

	MinDurationSec = 5.0
	MaxDurationSec = 30.0
)

// Defaults applied when the user supplies nothing.
const (
	DefaultStretch     = MinStretch
	DefaultSeed        = MinSeed
	DefaultDurationSec = MinDurationSec
)

// RunParams are the four run parameters after defaulting and clamping.
type RunParams struct {
	Stretch   float64
	Seed      int64
	Duration  time.Duration
	Terminate bool
}

// Clamp returns value bounded to [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Normalize applies defaults to zero values and clamps everything to
// the configured bounds. durationSec is in seconds.
func Normalize(stretch float64, seed int64, durationSec float64) RunParams {
	if stretch == 0 {
		stretch = DefaultStretch
	}
	if seed == 0 {
		seed = DefaultSeed
	}
	if durationSec == 0 {
		durationSec = DefaultDurationSec
	}

	stretch = Clamp(stretch, MinStretch, MaxStretch)
	seed = int64(Clamp(float64(seed), MinSeed, MaxSeed))
	durationSec = Clamp(durationSec, MinDurationSec, MaxDurationSec)

	return RunParams{
		Stretch:  stretch,
		Seed:     seed,
		Duration: time.Duration(durationSec * float64(time.Second)),
	}
}

// Prompt reads the four run parameters interactively from r, echoing
// prompts to w. Blank input takes the default; unparseable or
// out-of-range values fall back to the default or are clamped.
func Prompt(r io.Reader, w io.Writer) RunParams {
	br := bufio.NewReader(r)

	stretch := promptFloat(br, w, "Stretch Value", DefaultStretch)
	seed := promptFloat(br, w, "Random Seed", DefaultSeed)
	duration := promptFloat(br, w, "Duration (s)", DefaultDurationSec)
	terminate := promptString(br, w, "Terminate", "n")

	p := Normalize(stretch, int64(seed), duration)
	p.Terminate = strings.EqualFold(strings.TrimSpace(terminate), "y")
	return p
}

func promptString(br *bufio.Reader, w io.Writer, label, def string) string {
	fmt.Fprintf(w, "%s (default is %s): ", label, def)
	line, err := br.ReadString('\n')
	if err != nil && line == "" {
		return def
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def
	}
	return line
}

func promptFloat(br *bufio.Reader, w io.Writer, label string, def float64) float64 {
	raw := promptString(br, w, label, strconv.FormatFloat(def, 'g', -1, 64))
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return value
}
