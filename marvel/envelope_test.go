package marvel

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listBody = `{
	"code": 200,
	"status": "Ok",
	"copyright": "c",
	"attributionText": "a",
	"attributionHTML": "b",
	"etag": "e",
	"data": {
		"offset": 0,
		"limit": 20,
		"total": 2,
		"count": 2,
		"results": [
			{"id": 1, "name": "Iron Man"},
			{"id": 2, "name": "Hulk"}
		]
	}
}`

func TestDecodeListResponse(t *testing.T) {
	resp, err := decodeListResponse[Character]([]byte(listBody))
	require.NoError(t, err)

	assert.Equal(t, 200, resp.Code)
	assert.Equal(t, "Ok", resp.Status)
	assert.Equal(t, "e", resp.ETag)
	assert.Equal(t, 0, resp.Data.Offset)
	assert.Equal(t, 20, resp.Data.Limit)
	assert.Equal(t, 2, resp.Data.Total)
	assert.Equal(t, 2, resp.Data.Count)
	require.Len(t, resp.Data.Results, 2)
	assert.Equal(t, "Iron Man", resp.Data.Results[0].Name)
	assert.Equal(t, "Hulk", resp.Data.Results[1].Name)
	assert.False(t, resp.Data.HasMore())
}

func TestDecodeListResponseMissingMetadata(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "missing etag",
			body: `{"code":200,"status":"Ok","copyright":"c","attributionText":"a","attributionHTML":"b","data":{"offset":0,"limit":20,"total":0,"count":0,"results":[]}}`,
		},
		{
			name: "missing status",
			body: `{"code":200,"copyright":"c","attributionText":"a","attributionHTML":"b","etag":"e","data":{"offset":0,"limit":20,"total":0,"count":0,"results":[]}}`,
		},
		{
			name: "missing data",
			body: `{"code":200,"status":"Ok","copyright":"c","attributionText":"a","attributionHTML":"b","etag":"e"}`,
		},
		{
			name: "missing count",
			body: `{"code":200,"status":"Ok","copyright":"c","attributionText":"a","attributionHTML":"b","etag":"e","data":{"offset":0,"limit":20,"total":0,"results":[]}}`,
		},
		{
			name: "results not a sequence",
			body: `{"code":200,"status":"Ok","copyright":"c","attributionText":"a","attributionHTML":"b","etag":"e","data":{"offset":0,"limit":20,"total":0,"count":0,"results":{}}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeListResponse[Character]([]byte(tt.body))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrDecode), "expected a decode error, got %v", err)
			assert.Equal(t, KindValidation, ErrorKind(err))
		})
	}
}

func TestDecodeListResponseZeroOffsetIsValid(t *testing.T) {
	// offset 0 is a legitimate first page, not a missing field.
	resp, err := decodeListResponse[Character]([]byte(listBody))
	require.NoError(t, err)
	assert.Zero(t, resp.Data.Offset)
}

func TestDecodeResponseSingle(t *testing.T) {
	resp, err := decodeResponse[Character]([]byte(singleCharacterBody))
	require.NoError(t, err)

	assert.Equal(t, 200, resp.Code)
	assert.Equal(t, "etag123", resp.ETag)
	assert.Equal(t, 1009368, resp.Data.ID)
	assert.Equal(t, "Iron Man", resp.Data.Name)
}

func TestDecodeResponseAttributionAliases(t *testing.T) {
	body := `{
		"code": 200,
		"status": "Ok",
		"copyright": "c",
		"attribution_text": "alias text",
		"attribution_html": "alias html",
		"etag": "e",
		"data": {"id": 1}
	}`

	resp, err := decodeResponse[Character]([]byte(body))
	require.NoError(t, err)
	assert.Equal(t, "alias text", resp.AttributionText)
	assert.Equal(t, "alias html", resp.AttributionHTML)
}

func TestDecodeResponseCanonicalNameWinsOverAlias(t *testing.T) {
	body := `{
		"code": 200,
		"status": "Ok",
		"copyright": "c",
		"attributionText": "canonical",
		"attribution_text": "alias",
		"attributionHTML": "h",
		"etag": "e",
		"data": {"id": 1}
	}`

	resp, err := decodeResponse[Character]([]byte(body))
	require.NoError(t, err)
	assert.Equal(t, "canonical", resp.AttributionText)
}

func TestDecodeResponseInvalidJSON(t *testing.T) {
	_, err := decodeResponse[Character]([]byte(`{not json`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDecode))
}

func TestDecodeResponseMistypedData(t *testing.T) {
	body := `{
		"code": 200,
		"status": "Ok",
		"copyright": "c",
		"attributionText": "a",
		"attributionHTML": "b",
		"etag": "e",
		"data": [1, 2, 3]
	}`

	_, err := decodeResponse[Character]([]byte(body))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDecode))
}

func TestDataContainerPagination(t *testing.T) {
	page := DataContainer[Character]{Offset: 0, Limit: 20, Total: 45, Count: 20}
	assert.True(t, page.HasMore())
	assert.Equal(t, 20, page.NextOffset())

	last := DataContainer[Character]{Offset: 40, Limit: 20, Total: 45, Count: 5}
	assert.False(t, last.HasMore())
}
