// Command scenedump builds a small demo UI scene, resolves hover at a
// pointer position and prints the resulting draw batches.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/uiscene"
	"github.com/gogpu/uiscene/preview"
	"github.com/gogpu/uiscene/scene"
)

var glyphAtlas = scene.AtlasTextureID{Index: 0, Kind: scene.AtlasMonochrome}

func main() {
	var (
		width   = flag.Int("width", 480, "viewport width in physical pixels")
		height  = flag.Int("height", 320, "viewport height in physical pixels")
		pointX  = flag.Float64("x", 120, "pointer x in physical pixels (negative for no pointer)")
		pointY  = flag.Float64("y", 110, "pointer y in physical pixels")
		output  = flag.String("output", "", "write a PNG preview to this file")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		uiscene.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	viewport := uiscene.B(0, 0, uiscene.ScaledPixels(*width), uiscene.ScaledPixels(*height))
	s := scene.New(scene.WithCapacity(64))
	paintDemo(s, viewport)

	if *pointX < 0 {
		s.FinishUnhovered()
	} else {
		s.Finish(uiscene.Pt(uiscene.ScaledPixels(*pointX), uiscene.ScaledPixels(*pointY)))
	}

	st := s.Stats()
	fmt.Printf("primitives=%d rejected=%d hits=%d hovered=%d groups=%d\n",
		st.Inserted, st.Rejected, st.Hits, st.Hovered, st.ActiveGroups)
	i := 0
	for b := range s.Batches() {
		fmt.Printf("%3d %s\n", i, b)
		i++
	}

	if *output == "" {
		return
	}
	r, err := preview.New(*width, *height,
		preview.WithBackground(gputypes.ColorWhite),
		preview.WithAtlas(preview.ImageAtlas{glyphAtlas: blockGlyphs()}))
	if err != nil {
		log.Fatalf("Failed to create preview: %v", err)
	}
	if err := r.Render(s); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	if err := savePNG(*output, r.Image()); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Preview saved to %s (%dx%d)\n", *output, *width, *height)
}

// paintDemo paints a card with two buttons. The card and buttons share the
// "toolbar" hover group, so hovering any of them outlines the card.
func paintDemo(s *scene.Scene, viewport uiscene.Bounds) {
	mask := uiscene.ContentMask{Bounds: viewport}
	toolbar := s.HoverGroup("toolbar")

	s.InsertQuad(scene.Quad{Bounds: viewport, ContentMask: mask, Background: gputypes.Color{R: 0.94, G: 0.95, B: 0.97, A: 1}}, nil)

	card := uiscene.B(40, 40, 320, 200)
	s.InsertShadow(scene.Shadow{
		Bounds:      uiscene.B(44, 46, 320, 200),
		CornerRadii: uiscene.UniformCorners(12),
		BlurRadius:  8,
		ContentMask: mask,
		Color:       gputypes.ColorBlack,
	}, nil)
	cardQuad := scene.Quad{
		Bounds:       card,
		ContentMask:  mask,
		Background:   gputypes.ColorWhite,
		BorderColor:  gputypes.Color{R: 0.8, G: 0.8, B: 0.85, A: 1},
		BorderWidths: uiscene.UniformEdges(1),
		CornerRadii:  uiscene.UniformCorners(12),
	}
	outlined := cardQuad
	outlined.BorderColor = gputypes.Color{R: 0.2, G: 0.4, B: 0.9, A: 1}
	outlined.BorderWidths = uiscene.UniformEdges(3)
	s.InsertQuad(cardQuad, nil, scene.WithGroupVariant(toolbar, outlined))

	// Title: a row of glyphs and an underline.
	for i := range 8 {
		x := uiscene.ScaledPixels(64 + i*12)
		s.InsertMonochromeSprite(scene.MonochromeSprite{
			Bounds:      uiscene.B(x, 60, 10, 14),
			ContentMask: mask,
			Color:       gputypes.ColorBlack,
			Tile: scene.AtlasTile{
				TextureID: glyphAtlas,
				TileID:    uint32(i),
				Bounds:    scene.AtlasBounds{X: int32(i * 10), Y: 0, Width: 10, Height: 14},
			},
		}, nil)
	}
	s.InsertUnderline(scene.Underline{
		Bounds:      uiscene.B(64, 76, 94, 2),
		ContentMask: mask,
		Color:       gputypes.ColorBlack,
		Thickness:   1,
	}, nil)

	// Buttons: each turns darker when hovered directly.
	for i, label := range []string{"ok", "cancel"} {
		b := uiscene.B(uiscene.ScaledPixels(80+i*140), 100, 120, 40)
		button := scene.Quad{
			Bounds:      b,
			ContentMask: uiscene.ContentMask{Bounds: card},
			Background:  gputypes.Color{R: 0.25, G: 0.5, B: 0.95, A: 1},
			CornerRadii: uiscene.UniformCorners(6),
		}
		hovered := button
		hovered.Background = gputypes.Color{R: 0.1, G: 0.3, B: 0.75, A: 1}
		if _, ok := s.InsertQuad(button, &hovered, scene.InGroup[scene.Quad](toolbar)); !ok {
			log.Printf("button %q clipped away", label)
		}
	}

	// Icon: a triangle with a curved edge.
	icon := scene.NewPath(uiscene.Pt(80, 170))
	icon.LineTo(uiscene.Pt(120, 170))
	icon.CurveTo(uiscene.Pt(100, 210), uiscene.Pt(125, 195))
	icon.LineTo(uiscene.Pt(80, 170))
	icon.ContentMask = mask
	icon.Color = gputypes.Color{R: 0.9, G: 0.5, B: 0.1, A: 1}
	s.InsertPath(icon, nil)

	// Embedded video region composited by the host.
	s.InsertSurface(scene.Surface{Bounds: uiscene.B(220, 160, 120, 68), ContentMask: mask}, true, nil)
}

// blockGlyphs returns a monochrome atlas of solid glyph boxes.
func blockGlyphs() *image.Alpha {
	img := image.NewAlpha(image.Rect(0, 0, 80, 14))
	for y := 2; y < 14; y++ {
		for x := range 80 {
			if x%10 < 8 {
				img.Pix[img.PixOffset(x, y)] = 0xff
			}
		}
	}
	return img
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
