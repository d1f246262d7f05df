// Package imagecmp compares rendered images against expected ones with
// per-pixel error thresholds.
package imagecmp

import (
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/chewxy/math32"
	"github.com/pelletier/go-toml/v2"
)

// ThresholdsEnv names an optional TOML file whose entries override the ones
// loaded by LoadThresholds. Drivers differ in rasterization and filtering
// precision, so CI machines can loosen individual cases without code
// changes.
const ThresholdsEnv = "SHADERS_THRESHOLDS"

// Thresholds bound the error of a comparison. Max is the largest allowed
// difference of any channel of any pixel, Mean the largest allowed average
// per-pixel difference, both in 0..255 units.
type Thresholds struct {
	Max  float32 `toml:"max"`
	Mean float32 `toml:"mean"`
}

// Delta is the measured error of a comparison.
type Delta struct {
	Max  float32
	Mean float32
}

func (d Delta) String() string {
	return fmt.Sprintf("max %.3g, mean %.3g", d.Max, d.Mean)
}

// Within reports whether d does not exceed t.
func (d Delta) Within(t Thresholds) bool {
	return d.Max <= t.Max && d.Mean <= t.Mean
}

// ErrSizeMismatch is returned when the images differ in size.
var ErrSizeMismatch = errors.New("image sizes differ")

// Compare measures how much got differs from want. Pixels are compared
// as 8-bit RGBA after converting both images to the RGBA color model.
// The per-pixel error is the largest channel difference.
func Compare(got, want image.Image) (Delta, error) {
	gb, wb := got.Bounds(), want.Bounds()
	if gb.Size() != wb.Size() {
		return Delta{}, fmt.Errorf("%w: got %v, want %v", ErrSizeMismatch, gb.Size(), wb.Size())
	}

	var d Delta
	var sum float32
	for y := 0; y < gb.Dy(); y++ {
		for x := 0; x < gb.Dx(); x++ {
			gr, gg, gbl, ga := got.At(gb.Min.X+x, gb.Min.Y+y).RGBA()
			wr, wg, wbl, wa := want.At(wb.Min.X+x, wb.Min.Y+y).RGBA()
			e := math32.Max(
				math32.Max(channelDelta(gr, wr), channelDelta(gg, wg)),
				math32.Max(channelDelta(gbl, wbl), channelDelta(ga, wa)),
			)
			d.Max = math32.Max(d.Max, e)
			sum += e
		}
	}
	if n := gb.Dx() * gb.Dy(); n > 0 {
		d.Mean = sum / float32(n)
	}
	return d, nil
}

// channelDelta compares two 16-bit channels in 8-bit units.
func channelDelta(a, b uint32) float32 {
	return math32.Abs(float32(a>>8) - float32(b>>8))
}

// Check compares got with want and returns an error describing the
// difference when it exceeds t.
func Check(got, want image.Image, t Thresholds) error {
	d, err := Compare(got, want)
	if err != nil {
		return err
	}
	if !d.Within(t) {
		return fmt.Errorf("images differ: %v, allowed max %.3g, mean %.3g", d, t.Max, t.Mean)
	}
	return nil
}

// Set maps case names to thresholds.
type Set map[string]Thresholds

// Get returns the thresholds of name, or exact comparison when the case
// is not listed.
func (s Set) Get(name string) Thresholds {
	return s[name]
}

// LoadThresholds reads a TOML file with one table per case:
//
//	[defaults2D]
//	max = 0.0
//	mean = 0.0
//
// and applies the file named by ThresholdsEnv on top of it, if set.
func LoadThresholds(path string) (Set, error) {
	set := Set{}
	if err := decodeFile(path, set); err != nil {
		return nil, err
	}
	if override := os.Getenv(ThresholdsEnv); override != "" {
		if err := decodeFile(override, set); err != nil {
			return nil, fmt.Errorf("%s: %w", ThresholdsEnv, err)
		}
	}
	return set, nil
}

func decodeFile(path string, set Set) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open thresholds: %w", err)
	}
	defer f.Close()

	var loaded Set
	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(&loaded); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	for name, t := range loaded {
		set[name] = t
	}
	return nil
}
