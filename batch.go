package gridscene

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// whitePixel is a 1x1 white image scaled to fill cell backgrounds. Created on
// first submit so the package can be imported without a graphics context.
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// submitCommands draws every command to target in emission order.
func (s *Scene) submitCommands(target *ebiten.Image) {
	if len(s.commands) == 0 {
		return
	}
	px := ensureWhitePixel()
	var op ebiten.DrawImageOptions
	for i := range s.commands {
		cmd := &s.commands[i]
		if cmd.Bg.A > 0 {
			op.GeoM.Reset()
			op.GeoM.Scale(float64(cmd.Width), float64(cmd.Height))
			op.GeoM.Translate(float64(cmd.X), float64(cmd.Y))
			op.ColorScale.Reset()
			op.ColorScale.Scale(premultiplied(cmd.Bg))
			target.DrawImage(px, &op)
		}
		if cmd.Glyph != 0 && cmd.Glyph != ' ' {
			ebitenutil.DebugPrintAt(target, string(cmd.Glyph), cmd.X, cmd.Y)
		}
	}
}

// premultiplied returns the color scale for c with alpha premultiplied.
func premultiplied(c Color) (r, g, b, a float32) {
	a = float32(c.A)
	return float32(c.R) * a, float32(c.G) * a, float32(c.B) * a, a
}

// toRGBA converts a Color to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(c.R*c.A*255 + 0.5),
		G: uint8(c.G*c.A*255 + 0.5),
		B: uint8(c.B*c.A*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}
