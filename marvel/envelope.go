package marvel

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate checks envelope metadata presence. Shared instance; validator is
// safe for concurrent use.
var validate = validator.New()

// Response is the gateway envelope around a single entity.
type Response[T any] struct {
	Code            int    `json:"code"`
	Status          string `json:"status"`
	Copyright       string `json:"copyright"`
	AttributionText string `json:"attributionText"`
	AttributionHTML string `json:"attributionHTML"`
	ETag            string `json:"etag"`
	Data            T      `json:"data"`
}

// ListResponse is the gateway envelope around a paginated collection.
type ListResponse[T any] struct {
	Code            int              `json:"code"`
	Status          string           `json:"status"`
	Copyright       string           `json:"copyright"`
	AttributionText string           `json:"attributionText"`
	AttributionHTML string           `json:"attributionHTML"`
	ETag            string           `json:"etag"`
	Data            DataContainer[T] `json:"data"`
}

// DataContainer carries pagination metadata plus one page of results.
// count == len(results) is an API contract the gateway honors; it is not
// re-checked here.
type DataContainer[T any] struct {
	Offset  int `json:"offset"`
	Limit   int `json:"limit"`
	Total   int `json:"total"`
	Count   int `json:"count"`
	Results []T `json:"results"`
}

// HasMore reports whether further pages exist beyond this one.
func (d *DataContainer[T]) HasMore() bool {
	return d.Offset+d.Count < d.Total
}

// NextOffset returns the offset for the following page. Only meaningful when
// HasMore is true.
func (d *DataContainer[T]) NextOffset() int {
	return d.Offset + d.Count
}

// envelopeHeader is the decode target for envelope metadata. All fields are
// mandatory; the attribution pair is also accepted under its snake_case
// alias. Data stays raw until the header has been validated.
type envelopeHeader struct {
	Code            *int            `json:"code" validate:"required"`
	Status          string          `json:"status" validate:"required"`
	Copyright       string          `json:"copyright" validate:"required"`
	AttributionText string          `json:"-" validate:"required"`
	AttributionHTML string          `json:"-" validate:"required"`
	ETag            string          `json:"etag" validate:"required"`
	Data            json.RawMessage `json:"data" validate:"required"`
}

func (h *envelopeHeader) UnmarshalJSON(b []byte) error {
	type header envelopeHeader
	aux := struct {
		*header
		AttributionText    string `json:"attributionText"`
		AttributionTextAlt string `json:"attribution_text"`
		AttributionHTML    string `json:"attributionHTML"`
		AttributionHTMLAlt string `json:"attribution_html"`
	}{header: (*header)(h)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	h.AttributionText = aux.AttributionText
	if h.AttributionText == "" {
		h.AttributionText = aux.AttributionTextAlt
	}
	h.AttributionHTML = aux.AttributionHTML
	if h.AttributionHTML == "" {
		h.AttributionHTML = aux.AttributionHTMLAlt
	}
	return nil
}

// pageHeader validates pagination metadata before results are decoded.
// Pointer fields distinguish an absent key from a legitimate zero.
type pageHeader struct {
	Offset  *int            `json:"offset" validate:"required"`
	Limit   *int            `json:"limit" validate:"required"`
	Total   *int            `json:"total" validate:"required"`
	Count   *int            `json:"count" validate:"required"`
	Results json.RawMessage `json:"results" validate:"required"`
}

// decodeHeader parses and validates the envelope metadata common to both
// response shapes.
func decodeHeader(body []byte) (*envelopeHeader, error) {
	var header envelopeHeader
	if err := json.Unmarshal(body, &header); err != nil {
		return nil, newDecodeError(0, body, []string{fmt.Sprintf("invalid JSON: %v", err)})
	}
	if err := validate.Struct(&header); err != nil {
		return nil, newDecodeError(0, body, validationDetails("envelope", err))
	}
	return &header, nil
}

// decodeResponse parses a single-entity envelope, validating metadata before
// the payload is inspected.
func decodeResponse[T any](body []byte) (*Response[T], error) {
	header, err := decodeHeader(body)
	if err != nil {
		return nil, err
	}

	resp := Response[T]{
		Code:            *header.Code,
		Status:          header.Status,
		Copyright:       header.Copyright,
		AttributionText: header.AttributionText,
		AttributionHTML: header.AttributionHTML,
		ETag:            header.ETag,
	}
	if err := json.Unmarshal(header.Data, &resp.Data); err != nil {
		return nil, newDecodeError(0, body, []string{fmt.Sprintf("data: %v", err)})
	}
	return &resp, nil
}

// decodeListResponse parses a paginated envelope, additionally validating the
// pagination metadata and that results is a sequence.
func decodeListResponse[T any](body []byte) (*ListResponse[T], error) {
	header, err := decodeHeader(body)
	if err != nil {
		return nil, err
	}

	var page pageHeader
	if err := json.Unmarshal(header.Data, &page); err != nil {
		return nil, newDecodeError(0, body, []string{fmt.Sprintf("data: %v", err)})
	}
	if err := validate.Struct(&page); err != nil {
		return nil, newDecodeError(0, body, validationDetails("data", err))
	}

	resp := ListResponse[T]{
		Code:            *header.Code,
		Status:          header.Status,
		Copyright:       header.Copyright,
		AttributionText: header.AttributionText,
		AttributionHTML: header.AttributionHTML,
		ETag:            header.ETag,
		Data: DataContainer[T]{
			Offset: *page.Offset,
			Limit:  *page.Limit,
			Total:  *page.Total,
			Count:  *page.Count,
		},
	}
	if err := json.Unmarshal(page.Results, &resp.Data.Results); err != nil {
		return nil, newDecodeError(0, body, []string{fmt.Sprintf("data.results: %v", err)})
	}
	return &resp, nil
}

// validationDetails flattens validator errors into field-level messages.
func validationDetails(scope string, err error) []string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{err.Error()}
	}
	details := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, fmt.Sprintf("%s.%s: %s", scope, fe.Field(), fe.Tag()))
	}
	return details
}
