package viz

import (
	"image"
	"image/color"
	"image/gif"
	"os"
)

// gifRecorder rasterizes canvas frames into a paletted GIF. Dot layout
// mirrors the Braille cell encoding: 8 dots per character cell.
type gifRecorder struct {
	frames []*image.Paletted
}

func newGIFRecorder() *gifRecorder {
	return &gifRecorder{frames: make([]*image.Paletted, 0)}
}

func (g *gifRecorder) capture(c *Canvas) {
	charW, charH := 8, 16
	imgW, imgH := c.Width*charW, c.Height*charH
	img := image.NewPaletted(image.Rect(0, 0, imgW, imgH), color.Palette{color.Black, color.White})

	dotW, dotH := charW/2, charH/4

	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			r := c.Grid[row][col]
			if r <= 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)
			baseX, baseY := col*charW, row*charH

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] == 0 {
						continue
					}
					for py := 0; py < dotH; py++ {
						for px := 0; px < dotW; px++ {
							img.SetColorIndex(baseX+dx*dotW+px, baseY+dy*dotH+py, 1)
						}
					}
				}
			}
		}
	}

	g.frames = append(g.frames, img)
}

func (g *gifRecorder) save(path string) {
	if len(g.frames) == 0 {
		return
	}

	anim := gif.GIF{LoopCount: 0}
	for _, frame := range g.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, 2)
	}

	f, err := os.Create(path)
	if err != nil {
		return
	}
	defer f.Close()
	gif.EncodeAll(f, &anim)
}
