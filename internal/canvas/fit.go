package canvas

import (
	"image"
	"math"
)

// FitRect returns the largest rectangle with the image's aspect ratio that fits inside the
// canvas, centred on both axes. Degenerate sizes yield an empty rectangle.
func FitRect(imgW, imgH, canvasW, canvasH int) image.Rectangle {
	if imgW <= 0 || imgH <= 0 || canvasW <= 0 || canvasH <= 0 {
		return image.Rectangle{}
	}

	scale := math.Min(float64(canvasW)/float64(imgW), float64(canvasH)/float64(imgH))
	w := int(math.Round(float64(imgW) * scale))
	h := int(math.Round(float64(imgH) * scale))
	if w > canvasW {
		w = canvasW
	}
	if h > canvasH {
		h = canvasH
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	x := (canvasW - w) / 2
	y := (canvasH - h) / 2
	return image.Rect(x, y, x+w, y+h)
}

// CanvasSize picks the surface size for an image: as wide as allowed, then shrunk so the height
// stays within bounds while keeping the image's aspect ratio.
func CanvasSize(imgW, imgH, maxW, maxH int) image.Point {
	if maxW <= 0 {
		maxW = MaxWidth
	}
	if maxH <= 0 {
		maxH = MaxHeight
	}
	if imgW <= 0 || imgH <= 0 {
		return image.Pt(maxW, maxH)
	}

	aspect := float64(imgW) / float64(imgH)
	h := math.Min(float64(maxW)/aspect, float64(maxH))
	w := h * aspect

	return image.Pt(max(1, int(math.Round(w))), max(1, int(math.Round(h))))
}
