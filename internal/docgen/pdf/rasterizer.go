package pdf

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

const (
	// Render at 2x device scale so text stays crisp after the PDF embed.
	deviceScaleFactor = 2.0

	// CSS pixel width of the render viewport; matches the printable
	// layout's max content width plus padding.
	viewportWidthPx = 800

	// Fixed delay after the document loads so images and fonts finish
	// painting before the screenshot.
	settleDelay = 500 * time.Millisecond
)

// Rasterizer renders an HTML document to a single tall PNG image.
type Rasterizer interface {
	Rasterize(ctx context.Context, html string) ([]byte, error)
	Close() error
}

// RodRasterizer renders through a shared headless Chrome instance. Each
// Rasterize call opens its own page and closes it when done, on the error
// path included, so concurrent calls do not share mutable browser state.
type RodRasterizer struct {
	browser *rod.Browser
}

func NewRodRasterizer() (*RodRasterizer, error) {
	controlURL, err := launcher.New().Headless(true).Launch()
	if err != nil {
		return nil, fmt.Errorf("launching headless browser: %w", err)
	}
	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}
	return &RodRasterizer{browser: browser}, nil
}

func (r *RodRasterizer) Rasterize(ctx context.Context, html string) ([]byte, error) {
	page, err := r.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("opening page: %w", err)
	}
	defer page.Close()

	page = page.Context(ctx)

	err = page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             viewportWidthPx,
		Height:            1,
		DeviceScaleFactor: deviceScaleFactor,
		Mobile:            false,
	})
	if err != nil {
		return nil, fmt.Errorf("setting viewport: %w", err)
	}

	if err := page.SetDocumentContent(html); err != nil {
		return nil, fmt.Errorf("loading document: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("waiting for load: %w", err)
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(settleDelay):
	}

	data, err := page.Screenshot(true, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return nil, fmt.Errorf("capturing document image: %w", err)
	}
	return data, nil
}

func (r *RodRasterizer) Close() error {
	return r.browser.Close()
}
