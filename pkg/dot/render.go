package dot

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// RenderSVG renders DOT source to SVG in-process via Graphviz.
func RenderSVG(ctx context.Context, src []byte) ([]byte, error) {
	return renderFormat(ctx, src, graphviz.SVG)
}

// RenderPNG renders DOT source to PNG in-process via Graphviz.
func RenderPNG(ctx context.Context, src []byte) ([]byte, error) {
	return renderFormat(ctx, src, graphviz.PNG)
}

func renderFormat(ctx context.Context, src []byte, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes(src)
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
