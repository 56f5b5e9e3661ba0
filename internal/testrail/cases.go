package testrail

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// RawCase is one test-case record as returned by the API. The schema is not
// fixed: the same logical attribute can appear under several historical
// field names, so records stay opaque until field resolution.
type RawCase map[string]any

// DefaultPageSize is the number of cases requested per API call.
const DefaultPageSize = 250

// casesEnvelope is the paginated response shape introduced in TestRail 6.7.
// Older instances return a bare JSON array instead.
type casesEnvelope struct {
	Offset int       `json:"offset"`
	Limit  int       `json:"limit"`
	Size   int       `json:"size"`
	Cases  []RawCase `json:"cases"`
}

// ListCasesOption configures filter and pagination for case listing.
type ListCasesOption func(params url.Values)

// WithLimit caps the number of cases returned in one page.
func WithLimit(n int) ListCasesOption {
	return func(p url.Values) { p.Set("limit", strconv.Itoa(n)) }
}

// WithOffset skips the first n cases.
func WithOffset(n int) ListCasesOption {
	return func(p url.Values) { p.Set("offset", strconv.Itoa(n)) }
}

// ListCases returns one page of test cases for a project/suite.
// Both the enveloped and the legacy bare-array response shapes are accepted.
func (c *Client) ListCases(ctx context.Context, projectID, suiteID int, opts ...ListCasesOption) ([]RawCase, error) {
	params := url.Values{}
	params.Set("suite_id", strconv.Itoa(suiteID))
	for _, opt := range opts {
		opt(params)
	}

	u := fmt.Sprintf("%s/index.php?/api/v2/get_cases/%d&%s", c.baseURL, projectID, params.Encode())

	body, err := c.getJSON(ctx, u, "list cases")
	if err != nil {
		return nil, err
	}

	var env casesEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Cases != nil {
		return env.Cases, nil
	}

	var bare []RawCase
	if err := json.Unmarshal(body, &bare); err != nil {
		return nil, fmt.Errorf("list cases: decode response: %w", err)
	}
	return bare, nil
}

// ListAllCases returns every test case in a suite, auto-paginating with
// DefaultPageSize until a short or empty batch comes back.
func (c *Client) ListAllCases(ctx context.Context, projectID, suiteID int) ([]RawCase, error) {
	var all []RawCase
	offset := 0

	for {
		batch, err := c.ListCases(ctx, projectID, suiteID,
			WithLimit(DefaultPageSize),
			WithOffset(offset),
		)
		if err != nil {
			return nil, fmt.Errorf("list all cases (offset %d): %w", offset, err)
		}
		all = append(all, batch...)

		c.logger.DebugContext(ctx, "fetched case batch",
			"project", projectID, "suite", suiteID,
			"offset", offset, "batch", len(batch))

		if len(batch) < DefaultPageSize {
			break
		}
		offset += DefaultPageSize
	}

	c.logger.InfoContext(ctx, "fetched all cases",
		"project", projectID, "suite", suiteID, "total", len(all))
	return all, nil
}
