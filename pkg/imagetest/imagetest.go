// Package imagetest compares rendered images against PNG baselines stored
// in a testdata directory.
//
// Comparison is statistical rather than bit exact: two images are
// considered equal when the mean squared difference of their 8-bit
// channels is below Tolerance, so small rounding differences between
// execution devices are accepted.
package imagetest

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-fresnel/pkg/core"
	"gonum.org/v1/gonum/stat"
)

// Tolerance is the largest mean squared difference, on the 0-255 scale,
// accepted by ApproxEqual.
const Tolerance = 1.0

// UpdateTestImages makes AssertApproxEqual rewrite baselines instead of
// comparing against them. It is set when the environment variable
// FRESNEL_UPDATE_TESTDATA is "true" and should only be turned on after a
// deliberate change to rendering output.
var UpdateTestImages = os.Getenv("FRESNEL_UPDATE_TESTDATA") == "true"

// TestingT is the subset of *testing.T used by AssertApproxEqual
type TestingT interface {
	Errorf(format string, args ...any)
}

// MeanSquaredDifference averages the squared per-channel difference of
// two images over height*width*4 values. Images must have the same size;
// they are never reshaped to fit.
func MeanSquaredDifference(a, b *image.NRGBA) (float64, error) {
	ab, bb := a.Bounds(), b.Bounds()
	if ab.Dx() != bb.Dx() || ab.Dy() != bb.Dy() {
		return 0, fmt.Errorf("%w: image shape (%d, %d, 4) does not match (%d, %d, 4)",
			core.ErrInvalidArgument, ab.Dy(), ab.Dx(), bb.Dy(), bb.Dx())
	}

	width, height := ab.Dx(), ab.Dy()
	if width == 0 || height == 0 {
		return 0, nil
	}

	sq := make([]float64, 0, width*height*4)
	for y := 0; y < height; y++ {
		rowA := a.Pix[y*a.Stride : y*a.Stride+width*4]
		rowB := b.Pix[y*b.Stride : y*b.Stride+width*4]
		for i := range rowA {
			d := float64(rowA[i]) - float64(rowB[i])
			sq = append(sq, d*d)
		}
	}
	return stat.Mean(sq, nil), nil
}

// ApproxEqual reports whether a and b have the same shape and a mean
// squared difference below Tolerance.
func ApproxEqual(a, b *image.NRGBA) bool {
	msd, err := MeanSquaredDifference(a, b)
	return err == nil && msd < Tolerance
}

// DiffImage returns an opaque image holding the absolute per-channel
// difference of the color channels of a and b.
func DiffImage(a, b *image.NRGBA) *image.NRGBA {
	bounds := image.Rect(0, 0, min(a.Rect.Dx(), b.Rect.Dx()), min(a.Rect.Dy(), b.Rect.Dy()))
	diff := image.NewNRGBA(bounds)
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			ca := a.NRGBAAt(a.Rect.Min.X+x, a.Rect.Min.Y+y)
			cb := b.NRGBAAt(b.Rect.Min.X+x, b.Rect.Min.Y+y)
			diff.SetNRGBA(x, y, color.NRGBA{
				R: absDiff(ca.R, cb.R),
				G: absDiff(ca.G, cb.G),
				B: absDiff(ca.B, cb.B),
				A: 255,
			})
		}
	}
	return diff
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

// AssertApproxEqual checks that img is approximately equal to the baseline
// stored at testdata/<filename>, with ".png" added unless filename already
// ends in it. Dots inside the name are kept, so "scene.variant" compares
// against testdata/scene.variant.png. A missing baseline is created from
// img and logged at warn level. On failure the test is marked failed, and
// img and a difference image are written next to the baseline with
// ".fail.png" and ".diff.png" suffixes.
func AssertApproxEqual(t TestingT, img *image.NRGBA, filename string) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}

	base := strings.TrimSuffix(filepath.Join("testdata", filename), ".png")
	filename = base + ".png"
	failFilename := base + ".fail.png"
	diffFilename := base + ".diff.png"

	if UpdateTestImages {
		if err := Save(img, filename); err != nil {
			t.Errorf("AssertApproxEqual: error saving updated image: %v", err)
		}
		removeArtifacts(failFilename, diffFilename)
		return
	}

	ref, err := Open(filename)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("AssertApproxEqual: error opening saved image: %v", err)
			return
		}
		// No baseline yet, so this render becomes the baseline
		if err := Save(img, filename); err != nil {
			t.Errorf("AssertApproxEqual: error saving new image: %v", err)
			return
		}
		core.Logger().Warn("baseline missing, saved current image as reference", "file", filename)
		return
	}

	msd, err := MeanSquaredDifference(img, ref)
	switch {
	case err != nil:
		t.Errorf("AssertApproxEqual: %s: %v; see %s", filename, err, failFilename)
	case msd >= Tolerance:
		t.Errorf("AssertApproxEqual: image for %s differs: mean squared difference %.4f >= %.1f; see %s",
			filename, msd, Tolerance, failFilename)
	default:
		removeArtifacts(failFilename, diffFilename)
		return
	}

	if err := Save(img, failFilename); err != nil {
		t.Errorf("AssertApproxEqual: error saving fail image: %v", err)
	}
	if err := Save(DiffImage(img, ref), diffFilename); err != nil {
		t.Errorf("AssertApproxEqual: error saving diff image: %v", err)
	}
}

func removeArtifacts(filenames ...string) {
	for _, f := range filenames {
		os.Remove(f)
	}
}
