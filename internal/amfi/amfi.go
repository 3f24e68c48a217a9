// Package amfi fetches daily NAV data from the AMFI (Association of Mutual
// Funds in India) public feed. The feed is a semicolon-separated text file;
// the client fetches and parses it into per-scheme entries used to overlay
// fresh NAVs onto the catalog during refresh.
package amfi

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/apperrors"
)

// DefaultNAVURL is the AMFI all-schemes NAV feed.
const DefaultNAVURL = "https://www.amfiindia.com/spages/NAVAll.txt"

// Client fetches NAV data from the AMFI feed.
type Client struct {
	httpClient *http.Client
	url        string
}

// NewClient creates an AMFI client for the given feed URL.
// An empty url selects the default feed.
func NewClient(url string) *Client {
	if url == "" {
		url = DefaultNAVURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		url:        url,
	}
}

// FetchNAVs downloads and parses the NAV feed, keyed by scheme code.
func (c *Client) FetchNAVs(ctx context.Context) (map[string]NAV, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build NAV request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrFailedToFetchNAVData, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", apperrors.ErrFailedToFetchNAVData, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read NAV feed: %w", err)
	}

	return ParseNAVList(string(body)), nil
}

// ParseNAVList parses the semicolon-separated feed body. The first line is a
// header; lines with fewer than four fields (section headers, blanks) are
// skipped, as are entries with an unparsable NAV value.
func ParseNAVList(text string) map[string]NAV {
	navs := make(map[string]NAV)

	lines := strings.Split(strings.TrimSpace(text), "\n")
	for i, line := range lines {
		if i == 0 {
			continue // header
		}
		parts := strings.Split(strings.TrimSpace(line), ";")
		if len(parts) < 4 {
			continue
		}

		value, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if err != nil {
			if parts[2] != "" {
				log.Printf("amfi: skipping NAV line with bad value %q", parts[2])
			}
			continue
		}

		code := strings.TrimSpace(parts[0])
		navs[code] = NAV{
			SchemeCode: code,
			SchemeName: strings.TrimSpace(parts[1]),
			NAV:        value,
			Date:       strings.TrimSpace(parts[3]),
		}
	}

	return navs
}
