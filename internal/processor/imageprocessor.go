// imageprocessor.go - Image preprocessing for better OCR accuracy

package processor

import (
	"fmt"
	"os"

	"github.com/disintegration/imaging"
	"github.com/spendlens/spendlens-backend/configs"
)

// PreprocessForOCR enhances a photographed receipt before OCR: resize to a
// bounded dimension, sharpen, boost contrast and convert to grayscale.
// Returns the path of a temp file holding the processed image and a cleanup
// func the caller must invoke.
func PreprocessForOCR(imagePath string) (string, func(), error) {
	img, err := imaging.Open(imagePath, imaging.AutoOrientation(true))
	if err != nil {
		return "", nil, fmt.Errorf("failed to open image: %w", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	maxDimension := configs.MAX_IMAGE_DIMENSION

	if width > maxDimension || height > maxDimension {
		if width > height {
			img = imaging.Resize(img, maxDimension, 0, imaging.Lanczos)
		} else {
			img = imaging.Resize(img, 0, maxDimension, imaging.Lanczos)
		}
	}

	img = imaging.Sharpen(img, 2.5)
	img = imaging.AdjustContrast(img, 40)
	img = imaging.AdjustBrightness(img, 10)
	img = imaging.Grayscale(img)
	img = imaging.AdjustGamma(img, 1.1)

	tmp, err := os.CreateTemp("", "ocr-*.png")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()

	// tesseract handles PNG best; keep a lossless intermediate
	if err := imaging.Save(img, tmpPath, imaging.PNGCompressionLevel(0)); err != nil {
		os.Remove(tmpPath)
		return "", nil, fmt.Errorf("failed to save processed image: %w", err)
	}

	cleanup := func() { os.Remove(tmpPath) }
	return tmpPath, cleanup, nil
}
