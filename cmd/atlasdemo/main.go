// Command atlasdemo builds a font atlas from the Go fonts, writes it as a
// PNG and prints the batches a small scene produces.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/batch"
	"github.com/gogpu/batch/geom"
	"github.com/gogpu/batch/rectpack"
	"github.com/gogpu/batch/recording"
	"github.com/gogpu/batch/text"
)

func main() {
	var (
		size    = flag.Float64("size", 16, "font size in points")
		dpi     = flag.Float64("dpi", text.DefaultDPI, "atlas resolution")
		chars   = flag.String("chars", "", "extra characters to include")
		shaper  = flag.String("shaper", "opentype", "text shaper: opentype or gotext")
		output  = flag.String("output", "atlas.png", "output file")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		batch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	regular := text.FontIdentity{Family: "Go", Size: float32(*size)}
	bold := text.FontIdentity{Family: "Go", Size: float32(*size), Style: text.StyleBold}

	fonts := text.NewOpenTypeFonts()
	must(fonts.Register("Go", text.StyleRegular, goregular.TTF))
	must(fonts.Register("Go", text.StyleBold, gobold.TTF))

	cfg := rectpack.DefaultConfig()
	cfg.Width, cfg.Height = 64, 64
	builder := text.NewAtlasBuilder(text.WithDPI(float32(*dpi)), text.WithPacking(cfg))
	must(builder.AddFont(regular, text.RangeBasicLatin, text.RangeLatin1Supplement))
	must(builder.AddFont(bold, text.RangeBasicLatin))
	if *chars != "" {
		must(builder.AddFont(regular, text.RangesFromString(*chars)...))
	}

	atlas, err := builder.CreateAtlas(fonts)
	if err != nil {
		log.Fatalf("Failed to build atlas: %v", err)
	}
	img, err := text.Rasterize(atlas, fonts)
	if err != nil {
		log.Fatalf("Failed to rasterize atlas: %v", err)
	}

	storage := recording.NewStorage()
	tex, err := batch.UploadAtlas(storage, img)
	if err != nil {
		log.Fatalf("Failed to upload atlas: %v", err)
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create output: %v", err)
	}
	if err := storage.WritePNG(f, tex); err != nil {
		_ = f.Close()
		log.Fatalf("Failed to save: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Atlas saved to %s (%dx%d, %d fonts)\n", *output, atlas.Width(), atlas.Height(), atlas.Len())

	var sh text.Shaper = fonts
	if *shaper == "gotext" {
		gt := text.NewGoTextShaper()
		must(gt.Register("Go", text.StyleRegular, goregular.TTF))
		must(gt.Register("Go", text.StyleBold, gobold.TTF))
		sh = gt
	}

	renderer := recording.NewRenderer(geom.Rect(0, 0, 800, 600), storage)
	b, err := batch.New(renderer, batch.WithShaper(sh))
	if err != nil {
		log.Fatal(err)
	}
	must(drawScene(b, atlas, regular, bold, tex))

	frame := renderer.Last()
	log.Printf("Frame: %d vertices, %d indices\n", len(frame.Vertices), len(frame.Indices))
	for _, c := range frame.Commands {
		log.Println(c)
	}
}

func drawScene(b *batch.Batcher, atlas *text.FontAtlas, regular, bold text.FontIdentity, tex batch.TextureID) error {
	if err := b.Start(); err != nil {
		return err
	}
	b.SetFallbackGlyph('?')

	panel := geom.RectF(20, 20, 360, 120)
	if err := b.FillRoundedRectangle(panel, batch.UniformRadii(12), batch.Hex("#223344")); err != nil {
		return err
	}
	if err := b.RoundedRectangle(panel, batch.UniformRadii(12), batch.White, 2); err != nil {
		return err
	}

	if err := b.SetFont(atlas, bold, tex); err != nil {
		return err
	}
	if err := b.DrawText("Batcher demo", geom.Pt(40, 60), batch.Yellow); err != nil {
		return err
	}
	if err := b.SetFont(atlas, regular, tex); err != nil {
		return err
	}
	if err := b.DrawText("Glyphs share one texture\nand one batch.", geom.Pt(40, 90), batch.White); err != nil {
		return err
	}

	b.SetBlendState(batch.BlendAdditive)
	if err := b.FillCircle(geom.Pt(500, 200), 60, batch.Red.WithAlpha(160)); err != nil {
		return err
	}
	if err := b.CubicBezier(geom.Pt(420, 320), geom.Pt(480, 220), geom.Pt(560, 420), geom.Pt(620, 320), batch.Cyan, 3, 4); err != nil {
		return err
	}
	return b.Finish()
}

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
