package layout

import "img2pdf/contracts"

type Geometry = contracts.Geometry
type Placement = contracts.Placement

// DefaultGeometry returns the landscape A4 page setup: 297x210 mm,
// 15 mm margins, 20 mm reserved for the footer.
func DefaultGeometry() Geometry {
	return Geometry{
		PageWidth:     297,
		PageHeight:    210,
		Margin:        15,
		FooterReserve: 20,
	}
}

// ContentBox returns the area available to an image: the page minus margins
// on all sides and the footer reserve at the bottom.
func ContentBox(g Geometry) (maxWidth, maxHeight float64) {
	maxWidth = g.PageWidth - 2*g.Margin
	maxHeight = g.PageHeight - 2*g.Margin - g.FooterReserve
	return maxWidth, maxHeight
}

// ComputePlacement fits an image of pixelWidth x pixelHeight into the content
// box of g, preserving aspect ratio. The dimension that is proportionally
// larger than the box is clamped to the box limit and the other shrinks by
// the image ratio. The result is horizontally centered and top-aligned at
// the margin offset.
func ComputePlacement(pixelWidth, pixelHeight int, g Geometry) Placement {
	maxWidth, maxHeight := ContentBox(g)

	imgRatio := float64(pixelWidth) / float64(pixelHeight)
	maxRatio := maxWidth / maxHeight

	var finalWidth, finalHeight float64
	if imgRatio > maxRatio {
		finalWidth = maxWidth
		finalHeight = maxWidth / imgRatio
	} else {
		finalHeight = maxHeight
		finalWidth = maxHeight * imgRatio
	}

	return Placement{
		X: (g.PageWidth - finalWidth) / 2,
		Y: g.Margin,
		W: finalWidth,
		H: finalHeight,
	}
}
