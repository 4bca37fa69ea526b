package resources

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"
)

// Shapes are laid out on a 32x32 grid, cat facing right, y pointing down.
const gridSize = 32

type pose struct {
	legs    [4]float32 // foot offsets: front near, front far, back near, back far
	bob     float32
	tailEnd float32
}

var runningPoses = []pose{
	{legs: [4]float32{4, 2, -4, -2}, bob: 0, tailEnd: 12},
	{legs: [4]float32{2, -1, -2, 1}, bob: -0.5, tailEnd: 13},
	{legs: [4]float32{0, -3, 0, 3}, bob: -1, tailEnd: 14},
	{legs: [4]float32{-2, 1, 2, -1}, bob: -0.5, tailEnd: 13},
	{legs: [4]float32{3, -2, -3, 2}, bob: 0, tailEnd: 12},
}

type canvas struct {
	img   *image.NRGBA
	scale float32
	src   image.Image
}

func renderCat(frame, size int, tint color.NRGBA) *image.NRGBA {
	c := &canvas{
		img:   image.NewNRGBA(image.Rect(0, 0, size, size)),
		scale: float32(size) / gridSize,
		src:   image.NewUniform(tint),
	}
	if frame == 0 {
		c.sleeping()
	} else {
		c.running(runningPoses[(frame-1)%len(runningPoses)])
	}
	return c.img
}

func (c *canvas) sleeping() {
	c.ellipse(15, 23, 10, 5.5)
	c.ellipse(22.5, 20, 4.5, 3.8)
	c.polygon(19.5, 17.5, 20.2, 13.5, 22.3, 16.6)
	c.polygon(23.2, 16.4, 25.4, 13.6, 25.8, 17.8)
	c.limb(6, 24, 13, 28.2, 2.2)

	// z above the head
	c.limb(5, 6, 10, 6, 1.2)
	c.limb(10, 6, 5, 11, 1.2)
	c.limb(5, 11, 10, 11, 1.2)
}

func (c *canvas) running(p pose) {
	bodyY := 17 + p.bob
	c.ellipse(15, bodyY, 8, 4.5)
	c.ellipse(24.5, bodyY-4, 4, 3.5)
	c.polygon(22, bodyY-6.5, 22.8, bodyY-10, 24.6, bodyY-7)
	c.polygon(25.4, bodyY-7, 27.2, bodyY-9.8, 27.6, bodyY-5.8)
	c.limb(7.5, bodyY-1, 2, p.tailEnd+p.bob, 1.6)

	hipY := bodyY + 2
	c.limb(20, hipY, 20+p.legs[0], 27, 1.8)
	c.limb(18.5, hipY, 18.5+p.legs[1], 27, 1.8)
	c.limb(10, hipY, 10+p.legs[2], 27, 1.8)
	c.limb(11.5, hipY, 11.5+p.legs[3], 27, 1.8)
}

func (c *canvas) fill(build func(z *vector.Rasterizer)) {
	bounds := c.img.Bounds()
	z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	build(z)
	z.Draw(c.img, bounds, c.src, image.Point{})
}

// ellipse approximates the outline with four cubic Béziers.
func (c *canvas) ellipse(cx, cy, rx, ry float32) {
	const kappa = 0.5522848
	s := c.scale
	cx, cy, rx, ry = cx*s, cy*s, rx*s, ry*s
	ox, oy := rx*kappa, ry*kappa
	c.fill(func(z *vector.Rasterizer) {
		z.MoveTo(cx+rx, cy)
		z.CubeTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
		z.CubeTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
		z.CubeTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
		z.CubeTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
		z.ClosePath()
	})
}

func (c *canvas) polygon(coords ...float32) {
	if len(coords) < 6 || len(coords)%2 != 0 {
		return
	}
	s := c.scale
	c.fill(func(z *vector.Rasterizer) {
		z.MoveTo(coords[0]*s, coords[1]*s)
		for i := 2; i < len(coords); i += 2 {
			z.LineTo(coords[i]*s, coords[i+1]*s)
		}
		z.ClosePath()
	})
}

// limb fills a straight stroke of the given width between two points.
func (c *canvas) limb(x0, y0, x1, y1, width float32) {
	dx, dy := x1-x0, y1-y0
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}
	nx, ny := -dy/length*width/2, dx/length*width/2
	c.polygon(
		x0+nx, y0+ny,
		x1+nx, y1+ny,
		x1-nx, y1-ny,
		x0-nx, y0-ny,
	)
}
