package fetch

import (
	"context"
	"time"

	"github.com/chromedp/chromedp"
)

// minPostingLength is the minimum extracted text length to consider a
// plain HTTP fetch usable. Shorter content usually means an SPA shell.
const minPostingLength = 500

// needsBrowser reports whether the extracted text is too short and the
// page should be re-rendered headlessly.
func needsBrowser(extractedText string) bool {
	return len(extractedText) < minPostingLength
}

// renderPage loads the URL in a headless browser and returns the
// rendered HTML. Requires Chrome/Chromium on the system.
func renderPage(ctx context.Context, url string, timeout time.Duration) (string, error) {
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

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		// Give client-side rendering a moment to fill the page.
		chromedp.Sleep(3*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", err
	}
	return html, nil
}
