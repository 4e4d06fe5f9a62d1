package main

import (
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// Pixels per screen unit in exported snapshots. The terminal view is
// coarse; the PNG renders the same display list at a usable
// resolution.
const exportPixelScale = 4.0

// ExportPNG rasterizes a display list to a PNG, projecting world
// coordinates through the same viewport the terminal view uses.
func ExportPNG(ops []DrawOp, vp *Viewport, screenW, screenH float64, filename string) error {
	imgW := int(screenW * exportPixelScale)
	imgH := int(screenH * exportPixelScale)
	if imgW < 1 || imgH < 1 {
		return fmt.Errorf("nothing to export")
	}

	px := func(p Point) (float64, float64) {
		s := vp.ToScreen(p)
		return s.X * exportPixelScale, s.Y * exportPixelScale
	}

	dc := gg.NewContext(imgW, imgH)
	dc.SetColor(color.RGBA{240, 240, 240, 255})
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("parse font: %w", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    14,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	for _, op := range ops {
		switch op := op.(type) {
		case GridLineOp:
			if op.Major {
				dc.SetColor(color.RGBA{200, 200, 200, 255})
			} else {
				dc.SetColor(color.RGBA{230, 230, 230, 255})
			}
			x0, y0 := px(op.From)
			x1, y1 := px(op.To)
			dc.SetLineWidth(1)
			dc.DrawLine(x0, y0, x1, y1)
			dc.Stroke()

		case CurveOp:
			dc.SetColor(color.RGBA{20, 20, 20, 255})
			dc.SetLineWidth(2)
			for i, p := range op.Points {
				x, y := px(p)
				if i == 0 {
					dc.MoveTo(x, y)
				} else {
					dc.LineTo(x, y)
				}
			}
			dc.Stroke()

		case DashedLineOp:
			dc.SetColor(color.RGBA{0, 100, 0, 255})
			dc.SetLineWidth(2)
			dc.SetDash(6, 4)
			x0, y0 := px(op.From)
			x1, y1 := px(op.To)
			dc.DrawLine(x0, y0, x1, y1)
			dc.Stroke()
			dc.SetDash()

		case NodeOp:
			x, y := px(op.Body.Min)
			x1, y1 := px(op.Body.Max)
			w, h := x1-x, y1-y
			radius := 10.0 * vp.Scale() * exportPixelScale

			if op.Selected {
				dc.SetColor(color.RGBA{255, 235, 180, 255})
			} else {
				dc.SetColor(color.RGBA{240, 255, 240, 255})
			}
			dc.DrawRoundedRectangle(x, y, w, h, radius)
			dc.Fill()

			if op.Selected {
				dc.SetColor(color.RGBA{255, 165, 0, 255})
				dc.SetLineWidth(5)
			} else {
				dc.SetColor(color.Black)
				dc.SetLineWidth(2)
			}
			dc.DrawRoundedRectangle(x, y, w, h, radius)
			dc.Stroke()

			if op.Label != "" {
				dc.SetColor(color.Black)
				dc.DrawStringAnchored(op.Label, x+w/2, y+h/2, 0.5, 0.5)
			}

		case PortOp:
			cx, cy := px(op.Center)
			r := op.Radius * vp.Scale() * exportPixelScale
			dc.SetColor(color.RGBA{25, 180, 0, 255})
			dc.DrawCircle(cx, cy, r)
			dc.Fill()
			dc.SetColor(color.Black)
			dc.SetLineWidth(1)
			dc.DrawCircle(cx, cy, r)
			dc.Stroke()
		}
	}

	return dc.SavePNG(filename)
}
