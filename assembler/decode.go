package assembler

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"img2pdf/contracts"
	"img2pdf/utils"
)

// gofpdf image type per registered decoder format. Formats missing here
// (tiff, bmp, webp) get re-encoded to PNG before embedding.
var embeddableFormats = map[string]string{
	"jpeg": "JPEG",
	"png":  "PNG",
	"gif":  "GIF",
}

// decodeSource measures an item and normalizes it into a form gofpdf can
// embed. Upright JPEG/PNG/GIF bytes pass through untouched; everything else
// is fully decoded, rotated per its EXIF orientation and re-encoded as PNG.
func decodeSource(item contracts.Item) (*contracts.SourceImage, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(item.Data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", item.Name, err)
	}

	orientation := utils.GetOrientation(item.Data)

	if pdfType, ok := embeddableFormats[format]; ok && orientation == utils.OrientationTopLeft {
		return &contracts.SourceImage{
			Name:   item.Name,
			Data:   item.Data,
			Width:  cfg.Width,
			Height: cfg.Height,
			Format: pdfType,
		}, nil
	}

	img, _, err := image.Decode(bytes.NewReader(item.Data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", item.Name, err)
	}
	img = applyOrientation(img, orientation)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("re-encoding %s: %w", item.Name, err)
	}
	bounds := img.Bounds()
	return &contracts.SourceImage{
		Name:   item.Name,
		Data:   buf.Bytes(),
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Format: "PNG",
	}, nil
}

// applyOrientation bakes the EXIF orientation into the pixels so the PDF
// shows the image upright regardless of viewer EXIF support.
func applyOrientation(img image.Image, orientation int) image.Image {
	switch orientation {
	case utils.OrientationTopRight:
		return imaging.FlipH(img)
	case utils.OrientationBottomRight:
		return imaging.Rotate180(img)
	case utils.OrientationBottomLeft:
		return imaging.FlipV(img)
	case utils.OrientationLeftTop:
		return imaging.Transpose(img)
	case utils.OrientationRightTop:
		return imaging.Rotate270(img)
	case utils.OrientationRightBottom:
		return imaging.Transverse(img)
	case utils.OrientationLeftBottom:
		return imaging.Rotate90(img)
	default:
		return img
	}
}
