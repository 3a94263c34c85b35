// Package backdrop loads the decorative background raster of a network and
// reduces it to a desaturated luminance grid the renderer can sample.
package backdrop

import (
	"context"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// MaxSide bounds the stored grid; larger images are downsampled.
const MaxSide = 400

// DarkThreshold is the luminance below which a sample counts as ink.
const DarkThreshold = 128

var httpClient = &http.Client{Timeout: 15 * time.Second}

// Image is a grayscale copy of the background covering the square canvas.
type Image struct {
	W, H int
	Lum  []uint8
}

// Load reads a local file or fetches an http(s) URL and decodes it.
func Load(ctx context.Context, src string) (*Image, error) {
	var (
		r   io.ReadCloser
		err error
	)
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		r, err = fetch(ctx, src)
	} else {
		r, err = os.Open(src)
	}
	if err != nil {
		return nil, eris.Wrapf(err, "backdrop: open %s", src)
	}
	defer r.Close()

	img, format, err := image.Decode(r)
	if err != nil {
		return nil, eris.Wrapf(err, "backdrop: decode %s", src)
	}
	zap.L().Debug("backdrop decoded",
		zap.String("src", src),
		zap.String("format", format),
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()),
	)
	return FromImage(img), nil
}

func fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "metromap/1.0")
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, eris.Errorf("unexpected status %d", resp.StatusCode)
	}
	return resp.Body, nil
}

// FromImage converts img to grayscale, downsampling so neither side exceeds MaxSide.
func FromImage(img image.Image) *Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return &Image{}
	}
	step := 1
	for w/step > MaxSide || h/step > MaxSide {
		step++
	}
	out := &Image{W: w / step, H: h / step}
	out.Lum = make([]uint8, out.W*out.H)
	for y := 0; y < out.H; y++ {
		for x := 0; x < out.W; x++ {
			c := img.At(b.Min.X+x*step, b.Min.Y+y*step)
			g := color.GrayModel.Convert(c).(color.Gray)
			_, _, _, a := c.RGBA()
			lum := g.Y
			// transparent pixels read as paper, not ink
			if a < 0x8000 {
				lum = 255
			}
			out.Lum[y*out.W+x] = lum
		}
	}
	return out
}

// Sample returns the luminance at canvas position (u, v), both in [0,1].
// The image covers the square canvas: it is scaled to fill it and centre-cropped.
func (im *Image) Sample(u, v float64) (uint8, bool) {
	if im == nil || im.W == 0 || im.H == 0 || u < 0 || u >= 1 || v < 0 || v >= 1 {
		return 0, false
	}
	side := min(im.W, im.H)
	x := (im.W-side)/2 + int(u*float64(side))
	y := (im.H-side)/2 + int(v*float64(side))
	return im.Lum[y*im.W+x], true
}

// Ink reports whether the sample at (u, v) is dark enough to draw.
func (im *Image) Ink(u, v float64) bool {
	l, ok := im.Sample(u, v)
	return ok && l < DarkThreshold
}
