package ocr

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// prepare grayscales and upscales a certificate scan so Tesseract has enough
// pixel density to work with. Certificates are usually photographed at odd
// angles in poor light, so a mean adaptive threshold follows.
func prepare(img image.Image) *image.NRGBA {
	gray := imaging.Grayscale(img)
	if gray.Bounds().Dy() < 900 {
		gray = imaging.Resize(gray, 0, 1400, imaging.Lanczos)
	}
	return meanThreshold(gray, 15, 8)
}

// meanThreshold binarizes against a windowed mean using a summed-area table.
func meanThreshold(img image.Image, window, bias int) *image.NRGBA {
	if window < 3 {
		window = 3
	}
	if window%2 == 0 {
		window++
	}
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	out := imaging.New(w, h, color.NRGBA{255, 255, 255, 255})
	half := window / 2

	sums := make([]int, w*h)
	for y := 0; y < h; y++ {
		rowSum := 0
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			rowSum += int((r + g + b) / 3 >> 8)
			idx := y*w + x
			if y == 0 {
				sums[idx] = rowSum
			} else {
				sums[idx] = sums[(y-1)*w+x] + rowSum
			}
		}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			x0, y0 := max(x-half, 0), max(y-half, 0)
			x1, y1 := min(x+half, w-1), min(y+half, h-1)
			area := (x1 - x0 + 1) * (y1 - y0 + 1)
			total := sums[y1*w+x1] - sums[y0*w+x1] - sums[y1*w+x0] + sums[y0*w+x0]
			mean := total / area
			r, g, b, _ := img.At(x, y).RGBA()
			pix := int((r + g + b) / 3 >> 8)
			if pix < mean-bias {
				out.Set(x, y, color.NRGBA{0, 0, 0, 255})
			}
		}
	}
	return out
}
