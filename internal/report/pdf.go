package report

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/mathieu/cv-analyzer/internal/types"
)

// pdfTimeout bounds a single print job. Rendering a one-page report is
// fast; the margin covers browser startup.
const pdfTimeout = 60 * time.Second

// PDF renders the analysis report and prints it to a PDF document
// through a headless browser. Requires Chrome/Chromium on the system.
func PDF(ctx context.Context, title, documentName string, result *types.MatchResult) ([]byte, error) {
	html, err := HTML(title, documentName, result)
	if err != nil {
		return nil, err
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, pdfTimeout)
	defer cancel()

	dataURL := "data:text/html;charset=utf-8," + url.PathEscape(string(html))

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate(dataURL),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to print report to PDF: %w", err)
	}

	return pdf, nil
}
