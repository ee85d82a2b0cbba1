package imgtable

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // register JPEG decoding
	"image/png"

	xdraw "golang.org/x/image/draw"
)

// upscaleFactor is the fixed enlargement applied before recognition. Small
// text in scanned tables recognizes poorly at native resolution.
const upscaleFactor = 2

// contrastFactor stretches pixel values about the image mean after
// sharpening.
const contrastFactor = 2.0

// sharpenKernel is a 3x3 sharpening convolution (center-weighted, divisor
// 16), applied once after upscaling.
var sharpenKernel = [9]int{
	-2, -2, -2,
	-2, 32, -2,
	-2, -2, -2,
}

const sharpenDivisor = 16

// Preprocess prepares raster image bytes for recognition: grayscale
// conversion, a fixed 2x upscale, sharpening, and a contrast boost. The
// chain is unconditional - it is tuned for scanned or photographed tabular
// documents. The result is PNG-encoded.
func Preprocess(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	gray := toGray(src)
	gray = upscale(gray, upscaleFactor)
	gray = sharpen(gray)
	gray = contrast(gray, contrastFactor)

	var buf bytes.Buffer
	if err := png.Encode(&buf, gray); err != nil {
		return nil, fmt.Errorf("encoding preprocessed image: %w", err)
	}
	return buf.Bytes(), nil
}

// toGray converts any image to 8-bit grayscale.
func toGray(src image.Image) *image.Gray {
	b := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.Set(x-b.Min.X, y-b.Min.Y, src.At(x, y))
		}
	}
	return dst
}

// upscale enlarges the image by an integer factor using Catmull-Rom
// resampling.
func upscale(src *image.Gray, factor int) *image.Gray {
	b := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
	return dst
}

// sharpen applies the 3x3 sharpening kernel. Border pixels are copied
// unchanged.
func sharpen(src *image.Gray) *image.Gray {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewGray(image.Rect(0, 0, w, h))
	copy(dst.Pix, src.Pix)

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			sum := 0
			k := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					sum += int(src.GrayAt(x+dx, y+dy).Y) * sharpenKernel[k]
					k++
				}
			}
			dst.SetGray(x, y, gray8(sum/sharpenDivisor))
		}
	}
	return dst
}

// contrast scales pixel values away from the image mean by the given
// factor.
func contrast(src *image.Gray, factor float64) *image.Gray {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return src
	}

	var sum int64
	for _, p := range src.Pix {
		sum += int64(p)
	}
	mean := float64(sum) / float64(len(src.Pix))

	dst := image.NewGray(image.Rect(0, 0, w, h))
	for i, p := range src.Pix {
		v := mean + (float64(p)-mean)*factor
		dst.Pix[i] = clamp8(v)
	}
	return dst
}

// gray8 clamps an integer to a gray pixel value.
func gray8(v int) color.Gray {
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return color.Gray{Y: uint8(v)}
}

// clamp8 clamps a float to the 8-bit pixel range.
func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
