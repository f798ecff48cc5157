package sink

import (
	"context"

	"github.com/matzehuels/familytree/pkg/render"
	"github.com/matzehuels/familytree/pkg/scene"
)

// ContentTypePDF is the media type of [RenderPDF] output.
const ContentTypePDF = "application/pdf"

// RenderPDF renders the scene as PDF via SVG conversion.
func RenderPDF(ctx context.Context, s scene.Scene, opts ...SVGOption) ([]byte, error) {
	return render.ToPDF(ctx, RenderSVG(s, opts...))
}
