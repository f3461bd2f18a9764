package imagepkg

import (
	"image/color"
	"math"
)

// CanvasSize is the width and height of every composition.
const CanvasSize = 1080

const (
	centerLift     = 50
	gradientRadius = CanvasSize / 1.5
	accentAlpha    = 0x40

	motifBaseSize = 80
	motifOpacity  = 0.3

	chainDash   = 5
	chainGap    = 10
	chainWidth  = 2
	beadRadius  = 4
	beadSpacing = 20

	photoRadius = 280
	borderWidth = 12

	titleText     = "MON IDENTITÉ. MA CULTURE."
	titleSize     = 55
	titleBaseline = 110

	footerMargin   = 60
	logoWidth      = 260
	logoGap        = 40
	footerBaseline = CanvasSize - footerMargin - 40

	signatureText     = "DESIGNÉ PAR TCB"
	signatureSize     = 16
	signatureBaseline = CanvasSize - 25
	signatureOpacity  = 0.4
)

var (
	white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	gold  = color.NRGBA{R: 0xf4, G: 0xc4, B: 0x30, A: 0xff}
)

type Point struct {
	X, Y float64
}

type Rect struct {
	X, Y, W, H float64
}

// Center is the visual center shared by the gradient and the photo circle.
// It sits above the canvas center to leave room for the footer.
func Center() Point {
	return Point{X: CanvasSize / 2, Y: CanvasSize/2 - centerLift}
}

// Placement positions one decorative motif. Rotation is in degrees,
// clockwise on screen.
type Placement struct {
	X, Y     float64
	Rotation float64
	Scale    float64
}

var motifPlacements = [...]Placement{
	{X: 80, Y: 250, Rotation: -20, Scale: 1},
	{X: 60, Y: 340, Rotation: 10, Scale: 0.8},
	{X: 100, Y: 430, Rotation: -30, Scale: 0.9},
	{X: CanvasSize - 120, Y: 80, Rotation: 30, Scale: 1},
	{X: CanvasSize - 100, Y: 170, Rotation: -15, Scale: 0.85},
	{X: CanvasSize - 150, Y: 900, Rotation: 20, Scale: 0.9},
	{X: CanvasSize - 80, Y: 980, Rotation: -25, Scale: 0.85},
}

// MotifPlacements returns a copy of the fixed motif palette.
func MotifPlacements() []Placement {
	return append([]Placement(nil), motifPlacements[:]...)
}

// Segment is a straight chain ornament.
type Segment struct {
	From, To Point
}

var chainSegments = [...]Segment{
	{From: Point{200, 50}, To: Point{150, 600}},
	{From: Point{CanvasSize - 200, 100}, To: Point{CanvasSize - 150, 550}},
}

// ChainBeads returns the bead centers along s: floor(length/20) equal
// intervals with a bead at every interval boundary, both ends included.
func ChainBeads(s Segment) []Point {
	dx, dy := s.To.X-s.From.X, s.To.Y-s.From.Y
	n := int(math.Floor(math.Hypot(dx, dy) / beadSpacing))
	if n == 0 {
		return []Point{s.From}
	}
	beads := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		beads = append(beads, Point{X: s.From.X + dx*t, Y: s.From.Y + dy*t})
	}
	return beads
}

// CoverFit scales a srcW×srcH image so it covers a square of side box while
// keeping its aspect ratio. X and Y are the offsets of the scaled image
// relative to the square's top-left corner; they are never positive.
func CoverFit(srcW, srcH int, box float64) Rect {
	aspect := float64(srcW) / float64(srcH)
	r := Rect{W: box, H: box}
	if aspect > 1 {
		r.W = box * aspect
		r.X = -(r.W - box) / 2
	} else {
		r.H = box / aspect
		r.Y = -(r.H - box) / 2
	}
	return r
}

// FooterLogoRect places the logo at the left margin, scaled to the footer
// logo width, with its bottom edge on the footer baseline.
func FooterLogoRect(srcW, srcH int) Rect {
	h := math.Max(1, math.Round(float64(srcH)/float64(srcW)*logoWidth))
	return Rect{X: footerMargin, Y: footerBaseline - h, W: logoWidth, H: h}
}
