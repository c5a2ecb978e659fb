package gsheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Dimension selects how a range is grouped into slices.
type Dimension string

const (
	Rows    Dimension = "ROWS"
	Columns Dimension = "COLUMNS"
)

// Client wraps the Google Sheets values API.
type Client struct {
	service *sheets.Service
}

// NewClient creates a Sheets client from an authorized HTTP client. An endpoint may
// be given to target a fake server.
func NewClient(ctx context.Context, httpClient *http.Client, endpoint ...string) (*Client, error) {
	opts := []option.ClientOption{option.WithHTTPClient(httpClient)}
	if len(endpoint) > 0 && endpoint[0] != "" {
		opts = append(opts, option.WithEndpoint(endpoint[0]))
	}

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &Client{service: svc}, nil
}

// GetValues reads an A1 range. Numbers come back unformatted and dates as serial
// numbers, so cells are float64, string, bool or nil.
func (c *Client) GetValues(ctx context.Context, spreadsheetID, a1Range string, dim Dimension) ([][]any, error) {
	resp, err := c.service.Spreadsheets.Values.Get(spreadsheetID, a1Range).
		MajorDimension(string(dim)).
		ValueRenderOption("UNFORMATTED_VALUE").
		DateTimeRenderOption("SERIAL_NUMBER").
		Context(ctx).
		Do()
	if err != nil {
		return nil, mapError(err)
	}

	return resp.Values, nil
}

// GetVector reads a single-row or single-column range as one slice. Trailing empty
// cells are omitted by the API, so the slice may be shorter than the range.
func (c *Client) GetVector(ctx context.Context, spreadsheetID, a1Range string, dim Dimension) ([]any, error) {
	values, err := c.GetValues(ctx, spreadsheetID, a1Range, dim)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return []any{}, nil
	}
	return values[0], nil
}

// UpdateValue writes one cell as if typed by a user, so the sheet applies its own
// parsing to the text.
func (c *Client) UpdateValue(ctx context.Context, spreadsheetID, a1Range, value string) error {
	vr := &sheets.ValueRange{
		Range:  a1Range,
		Values: [][]interface{}{{value}},
	}

	_, err := c.service.Spreadsheets.Values.Update(spreadsheetID, a1Range, vr).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return mapError(err)
	}
	return nil
}

func mapError(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch {
		case gerr.Code == http.StatusBadRequest && strings.Contains(gerr.Message, "Unable to parse range"):
			return fmt.Errorf("%w: %s", ErrSheetNotFound, gerr.Message)
		case gerr.Code == http.StatusNotFound:
			return fmt.Errorf("%w: %s", ErrSpreadsheetNotFound, gerr.Message)
		}
	}
	return fmt.Errorf("sheets api: %w", err)
}
