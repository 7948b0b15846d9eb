package bookinfo

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"bookduck/internal/apperr"
)

type jsonObject map[string]json.RawMessage

// ParseList turns a provider search payload into list items. Any malformed
// item fails the whole payload.
func ParseList(payload []byte) ([]ListItem, error) {
	var root jsonObject
	if err := json.Unmarshal(payload, &root); err != nil {
		return nil, apperr.MetadataParse(err)
	}

	items := []ListItem{}
	raw, ok := root["items"]
	if !ok || isNull(raw) {
		return items, nil
	}

	var rawItems []json.RawMessage
	if err := json.Unmarshal(raw, &rawItems); err != nil {
		return nil, apperr.MetadataParse(fmt.Errorf("items: %w", err))
	}

	for i, rawItem := range rawItems {
		item, err := parseListItem(rawItem)
		if err != nil {
			return nil, apperr.MetadataParse(fmt.Errorf("items[%d]: %w", i, err))
		}
		items = append(items, item)
	}
	return items, nil
}

func parseListItem(raw json.RawMessage) (ListItem, error) {
	var item jsonObject
	if err := json.Unmarshal(raw, &item); err != nil || item == nil {
		return ListItem{}, errors.New("item is not an object")
	}

	providerID, err := textField(item, "id")
	if err != nil {
		return ListItem{}, err
	}
	if providerID == nil {
		return ListItem{}, errors.New("id is missing")
	}

	info, err := objectField(item, "volumeInfo")
	if err != nil {
		return ListItem{}, err
	}

	title, err := textField(info, "title")
	if err != nil {
		return ListItem{}, err
	}
	authors, err := textArray(info, "authors")
	if err != nil {
		return ListItem{}, err
	}
	thumbnail, err := thumbnailPath(info)
	if err != nil {
		return ListItem{}, err
	}

	return ListItem{
		Title:         title,
		Authors:       authors,
		ThumbnailPath: thumbnail,
		ProviderID:    *providerID,
	}, nil
}

// ParseDetail turns a single volume payload into its basic information.
func ParseDetail(payload []byte) (Detail, error) {
	var root jsonObject
	if err := json.Unmarshal(payload, &root); err != nil {
		return Detail{}, apperr.MetadataParse(err)
	}
	if root == nil {
		return Detail{}, apperr.MetadataParse(errors.New("payload is null"))
	}

	d, err := parseDetail(root)
	if err != nil {
		return Detail{}, apperr.MetadataParse(err)
	}
	return d, nil
}

func parseDetail(root jsonObject) (Detail, error) {
	info, err := objectField(root, "volumeInfo")
	if err != nil {
		return Detail{}, err
	}

	var d Detail
	if d.Subtitle, err = textField(info, "subtitle"); err != nil {
		return Detail{}, err
	}
	if d.Publisher, err = textField(info, "publisher"); err != nil {
		return Detail{}, err
	}
	publishedDate, err := textField(info, "publishedDate")
	if err != nil {
		return Detail{}, err
	}
	if d.PublishedYear, err = extractYear(publishedDate); err != nil {
		return Detail{}, err
	}
	if d.Description, err = textField(info, "description"); err != nil {
		return Detail{}, err
	}
	if d.PageCount, err = intField(info, "pageCount"); err != nil {
		return Detail{}, err
	}
	if d.Categories, err = textArray(info, "categories"); err != nil {
		return Detail{}, err
	}
	if d.Language, err = textField(info, "language"); err != nil {
		return Detail{}, err
	}
	return d, nil
}

// extractYear reads the leading four-digit year of a provider date such as
// "2019", "2019-05" or "2019-05-01".
func extractYear(date *string) (*int, error) {
	if date == nil || *date == "" {
		return nil, nil
	}
	s := *date
	if len(s) < 4 {
		return nil, fmt.Errorf("publishedDate %q is shorter than a year", s)
	}
	for i := 0; i < 4; i++ {
		if s[i] < '0' || s[i] > '9' {
			return nil, fmt.Errorf("publishedDate %q does not start with a year", s)
		}
	}
	year, err := strconv.Atoi(s[:4])
	if err != nil {
		return nil, fmt.Errorf("publishedDate %q: %w", s, err)
	}
	return &year, nil
}

func thumbnailPath(info jsonObject) (*string, error) {
	raw, ok := info["imageLinks"]
	if !ok || isNull(raw) {
		return nil, nil
	}
	var links jsonObject
	if err := json.Unmarshal(raw, &links); err != nil {
		return nil, fmt.Errorf("imageLinks: %w", err)
	}
	for _, key := range []string{"thumbnail", "smallThumbnail"} {
		v, err := textField(links, key)
		if err != nil {
			return nil, err
		}
		if v != nil {
			return v, nil
		}
	}
	return nil, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func objectField(obj jsonObject, key string) (jsonObject, error) {
	raw, ok := obj[key]
	if !ok || isNull(raw) {
		return nil, fmt.Errorf("%s is missing", key)
	}
	var out jsonObject
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%s: not an object", key)
	}
	return out, nil
}

// textField returns a scalar field as text. Strings are returned as-is,
// numbers and booleans as their JSON text. Absent or null yields nil.
func textField(obj jsonObject, key string) (*string, error) {
	raw, ok := obj[key]
	if !ok || isNull(raw) {
		return nil, nil
	}
	s, err := scalarText(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return &s, nil
}

func scalarText(raw json.RawMessage) (string, error) {
	var v any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return "", err
	}
	switch t := v.(type) {
	case string:
		return t, nil
	case json.Number:
		return t.String(), nil
	case bool:
		return strconv.FormatBool(t), nil
	default:
		return "", errors.New("expected a scalar value")
	}
}

// textArray returns nil when the field is absent or not an array, so
// callers can tell "no value" from an empty list.
func textArray(obj jsonObject, key string) ([]string, error) {
	raw, ok := obj[key]
	if !ok {
		return nil, nil
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil || elems == nil {
		return nil, nil
	}

	out := make([]string, 0, len(elems))
	for i, e := range elems {
		if isNull(e) {
			continue
		}
		s, err := scalarText(e)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", key, i, err)
		}
		out = append(out, s)
	}
	return out, nil
}

// intField reads an integer field, defaulting to 0 when absent or null.
// Numeric strings are accepted.
func intField(obj jsonObject, key string) (int, error) {
	raw, ok := obj[key]
	if !ok || isNull(raw) {
		return 0, nil
	}
	s, err := scalarText(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer", key, s)
	}
	return n, nil
}
