package pipeline

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/truthscan/truthscan/internal/catalog"
	"github.com/truthscan/truthscan/internal/model"
)

const (
	placeholderWidth  = 800
	placeholderHeight = 600
)

// writePlaceholder renders an info-card PNG for a monitored site: the
// coordinates, the analysis window, and the imagery deep links an analyst
// should open manually. Purely presentational; the pipeline only records its
// path.
func writePlaceholder(path string, site catalog.PointOfInterest, req model.AnalysisRequest, sources []model.SourceRef) error {
	img := image.NewRGBA(image.Rect(0, 0, placeholderWidth, placeholderHeight))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.RGBA{R: 240, G: 240, B: 240, A: 255}}, image.Point{}, draw.Src)

	lines := []string{
		fmt.Sprintf("Site: %s", site.Name),
		fmt.Sprintf("Coordinates: %g, %g", site.Coordinates[0], site.Coordinates[1]),
		fmt.Sprintf("Date Range: %s to %s", req.StartDate(), req.EndDate()),
		"",
		"FREE SATELLITE IMAGERY SOURCES:",
	}
	for _, src := range sources {
		lines = append(lines, "", src.Name+":", src.URL)
	}
	lines = append(lines,
		"",
		"ANALYSIS TIPS:",
		"- Compare with historical imagery when available",
		"- Look for new craters, debris fields, or structural damage",
		"- Check for smoke plumes or fire damage",
		"- Examine access roads for increased activity",
	)

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
	}

	y := 50
	for _, line := range lines {
		drawer.Dot = fixed.P(50, y)
		drawer.DrawString(line)
		y += 30
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create image dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create placeholder: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode placeholder: %w", err)
	}

	return nil
}
