package marvel

import (
	"fmt"
	"net/url"

	"github.com/google/go-querystring/query"
)

// filterValues encodes a filter struct into query parameters. Nil and unset
// fields are omitted; ID-list fields carry the `comma` tag so they serialize
// as a single comma-joined value in their given order. A nil filter yields
// empty params.
func filterValues(filter any) (url.Values, error) {
	if filter == nil {
		return url.Values{}, nil
	}
	values, err := query.Values(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to encode filter params: %w", err)
	}
	return values, nil
}

// ListOptions are the pagination parameters shared by every list and
// related-resource call. Pointers distinguish "unset" from a legitimate
// zero offset.
type ListOptions struct {
	Limit  *int `url:"limit,omitempty"`
	Offset *int `url:"offset,omitempty"`
}

// Int returns a pointer to v, for use in filter literals.
func Int(v int) *int { return &v }

// Bool returns a pointer to v, for use in filter literals.
func Bool(v bool) *bool { return &v }
