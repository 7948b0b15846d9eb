package bookinfo

import (
	"testing"

	"bookduck/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseList(t *testing.T) {
	payload := []byte(`{
		"kind": "books#volumes",
		"totalItems": 2,
		"items": [
			{
				"id": "abc123",
				"volumeInfo": {
					"title": "The Go Programming Language",
					"authors": ["Alan Donovan", "Brian Kernighan"],
					"imageLinks": {"smallThumbnail": "http://img/small", "thumbnail": "http://img/thumb"}
				}
			},
			{
				"id": "def456",
				"volumeInfo": {
					"title": "Untitled Notes",
					"imageLinks": {"smallThumbnail": "http://img/only-small"}
				}
			}
		]
	}`)

	items, err := ParseList(payload)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "abc123", items[0].ProviderID)
	require.NotNil(t, items[0].Title)
	assert.Equal(t, "The Go Programming Language", *items[0].Title)
	assert.Equal(t, []string{"Alan Donovan", "Brian Kernighan"}, items[0].Authors)
	require.NotNil(t, items[0].ThumbnailPath)
	assert.Equal(t, "http://img/thumb", *items[0].ThumbnailPath)

	assert.Nil(t, items[1].Authors)
	require.NotNil(t, items[1].ThumbnailPath)
	assert.Equal(t, "http://img/only-small", *items[1].ThumbnailPath)
}

func TestParseList_NoItems(t *testing.T) {
	items, err := ParseList([]byte(`{"kind": "books#volumes", "totalItems": 0}`))
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestParseList_MissingOptionalFields(t *testing.T) {
	items, err := ParseList([]byte(`{"items": [{"id": "x1", "volumeInfo": {}}]}`))
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, "x1", items[0].ProviderID)
	assert.Nil(t, items[0].Title)
	assert.Nil(t, items[0].Authors)
	assert.Nil(t, items[0].ThumbnailPath)
}

func TestParseList_AuthorsNotAnArray(t *testing.T) {
	items, err := ParseList([]byte(`{"items": [{"id": "x1", "volumeInfo": {"authors": "Someone"}}]}`))
	require.NoError(t, err)
	assert.Nil(t, items[0].Authors)
}

func TestParseList_Errors(t *testing.T) {
	tests := map[string]string{
		"invalid json":       `{"items": [`,
		"missing id":         `{"items": [{"volumeInfo": {"title": "t"}}]}`,
		"missing volumeInfo": `{"items": [{"id": "x1"}]}`,
		"item not object":    `{"items": ["x1"]}`,
		"items not array":    `{"items": {"id": "x1"}}`,
		"title is object":    `{"items": [{"id": "x1", "volumeInfo": {"title": {"a": 1}}}]}`,
	}
	for name, payload := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseList([]byte(payload))
			require.Error(t, err)
			assert.ErrorIs(t, err, apperr.ErrMetadataParse)
		})
	}
}

func TestParseDetail(t *testing.T) {
	payload := []byte(`{
		"id": "abc123",
		"volumeInfo": {
			"title": "The Go Programming Language",
			"subtitle": "A practical guide",
			"publisher": "Addison-Wesley",
			"publishedDate": "2019-05-01",
			"description": "Learn Go.",
			"pageCount": 380,
			"categories": ["Computers", "Programming"],
			"language": "en"
		}
	}`)

	d, err := ParseDetail(payload)
	require.NoError(t, err)

	require.NotNil(t, d.Subtitle)
	assert.Equal(t, "A practical guide", *d.Subtitle)
	require.NotNil(t, d.Publisher)
	assert.Equal(t, "Addison-Wesley", *d.Publisher)
	require.NotNil(t, d.PublishedYear)
	assert.Equal(t, 2019, *d.PublishedYear)
	require.NotNil(t, d.Description)
	assert.Equal(t, "Learn Go.", *d.Description)
	assert.Equal(t, 380, d.PageCount)
	assert.Equal(t, []string{"Computers", "Programming"}, d.Categories)
	require.NotNil(t, d.Language)
	assert.Equal(t, "en", *d.Language)
}

func TestParseDetail_Defaults(t *testing.T) {
	d, err := ParseDetail([]byte(`{"id": "x", "volumeInfo": {"pageCount": null, "publishedDate": ""}}`))
	require.NoError(t, err)

	assert.Equal(t, 0, d.PageCount)
	assert.Nil(t, d.PublishedYear)
	assert.Nil(t, d.Subtitle)
	assert.Nil(t, d.Publisher)
	assert.Nil(t, d.Description)
	assert.Nil(t, d.Categories)
	assert.Nil(t, d.Language)
}

func TestParseDetail_ScalarText(t *testing.T) {
	d, err := ParseDetail([]byte(`{"volumeInfo": {"publisher": 42, "subtitle": true, "pageCount": "120"}}`))
	require.NoError(t, err)

	assert.Equal(t, "42", *d.Publisher)
	assert.Equal(t, "true", *d.Subtitle)
	assert.Equal(t, 120, d.PageCount)
}

func TestParseDetail_PublishedYear(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2019", 2019},
		{"2019-05", 2019},
		{"2019-05-01", 2019},
		{"1999-12-31T00:00:00Z", 1999},
	}
	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			d, err := ParseDetail([]byte(`{"volumeInfo": {"publishedDate": "` + tt.date + `"}}`))
			require.NoError(t, err)
			require.NotNil(t, d.PublishedYear)
			assert.Equal(t, tt.want, *d.PublishedYear)
		})
	}
}

func TestParseDetail_Errors(t *testing.T) {
	tests := map[string]string{
		"invalid json":        `not json`,
		"null payload":        `null`,
		"missing volumeInfo":  `{"id": "x"}`,
		"short date":          `{"volumeInfo": {"publishedDate": "19"}}`,
		"non numeric date":    `{"volumeInfo": {"publishedDate": "circa 1900"}}`,
		"page count text":     `{"volumeInfo": {"pageCount": "many"}}`,
		"page count fraction": `{"volumeInfo": {"pageCount": 12.5}}`,
		"category object":     `{"volumeInfo": {"categories": [{"name": "x"}]}}`,
	}
	for name, payload := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseDetail([]byte(payload))
			require.Error(t, err)
			assert.ErrorIs(t, err, apperr.ErrMetadataParse)
			assert.Equal(t, apperr.CodeMetadataParse, apperr.CodeOf(err))
		})
	}
}
