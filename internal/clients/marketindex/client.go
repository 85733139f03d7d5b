package marketindex

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

const stooqBaseURL = "https://stooq.com/q/d/l/"

// Client fetches daily index closes from the Stooq CSV endpoint. Stooq is
// keyless, which suits the optional overlay: no credentials to configure and
// failure costs nothing but the overlay.
type Client struct {
	baseURL string
	client  *http.Client
	log     zerolog.Logger
}

// NewClient creates a new Stooq client
func NewClient(log zerolog.Logger) *Client {
	return &Client{
		baseURL: stooqBaseURL,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
		log: log.With().Str("client", "marketindex").Logger(),
	}
}

// NewClientWithBaseURL creates a client against a custom endpoint (tests).
func NewClientWithBaseURL(baseURL string, log zerolog.Logger) *Client {
	c := NewClient(log)
	c.baseURL = baseURL
	return c
}

// FetchDaily fetches daily closes for symbol between start and end.
// The response is CSV with a Date,Open,High,Low,Close,... header.
func (c *Client) FetchDaily(ctx context.Context, symbol string, start, end time.Time) ([]PricePoint, error) {
	params := url.Values{}
	params.Set("s", symbol)
	params.Set("d1", start.Format("20060102"))
	params.Set("d2", end.Format("20060102"))
	params.Set("i", "d")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch index series: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("index endpoint returned status %d", resp.StatusCode)
	}

	points, err := parseDailyCSV(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse index series: %w", err)
	}

	c.log.Debug().
		Str("symbol", symbol).
		Int("points", len(points)).
		Msg("Fetched index series")

	return points, nil
}

func parseDailyCSV(r io.Reader) ([]PricePoint, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("no data rows in response")
	}

	header := records[0]
	dateCol, closeCol := -1, -1
	for i, name := range header {
		switch name {
		case "Date":
			dateCol = i
		case "Close":
			closeCol = i
		}
	}
	if dateCol < 0 || closeCol < 0 {
		return nil, fmt.Errorf("response missing Date/Close columns")
	}

	var points []PricePoint
	for _, record := range records[1:] {
		if len(record) <= dateCol || len(record) <= closeCol {
			continue
		}
		date, err := time.Parse("2006-01-02", record[dateCol])
		if err != nil {
			continue
		}
		closePrice, err := strconv.ParseFloat(record[closeCol], 64)
		if err != nil {
			continue
		}
		points = append(points, PricePoint{Date: date, Close: closePrice})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})

	return points, nil
}
