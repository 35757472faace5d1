package app

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// whiteSubImage is the usual 1x1 white source for DrawTriangles; the 3x3
// parent avoids sampling bleed at the edges.
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Triangle geometry in a unit space centered on the screen: one vertex up,
// two down, each carrying a primary color that gets tint-multiplied.
var (
	triPositions = [3][2]float64{{0, 0.5}, {0.5, -0.5}, {-0.5, -0.5}}
	triColors    = [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
)

// drawTriangle renders the rotating, scaled, tinted triangle.
func (a *App) drawTriangle(screen *ebiten.Image) {
	cx := float64(a.width) / 2
	cy := float64(a.height) / 2
	unit := math.Min(float64(a.width), float64(a.height)) / 2

	sin, cos := math.Sincos(a.rotation)

	var vs [3]ebiten.Vertex
	for i, p := range triPositions {
		x := (p[0]*cos - p[1]*sin) * a.params.Scale
		y := (p[0]*sin + p[1]*cos) * a.params.Scale
		vs[i] = ebiten.Vertex{
			DstX: float32(cx + x*unit),
			DstY: float32(cy - y*unit), // screen y grows downward
			SrcX: 1,
			SrcY: 1,
			ColorR: float32(clamp01(triColors[i][0] * a.params.TintR)),
			ColorG: float32(clamp01(triColors[i][1] * a.params.TintG)),
			ColorB: float32(clamp01(triColors[i][2] * a.params.TintB)),
			ColorA: 1,
		}
	}

	screen.DrawTriangles(vs[:], []uint16{0, 1, 2}, whiteSubImage, nil)
}
