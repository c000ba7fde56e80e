package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONB is a nullable jsonb column. An empty value is stored as NULL and
// rendered as JSON null.
type JSONB json.RawMessage

func (j JSONB) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return []byte(j), nil
}

func (j *JSONB) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*j = nil
	case []byte:
		*j = append((*j)[:0], v...)
	case string:
		*j = JSONB(v)
	default:
		return fmt.Errorf("jsonb: unsupported scan type %T", src)
	}
	return nil
}

func (j JSONB) MarshalJSON() ([]byte, error) {
	if len(j) == 0 {
		return []byte("null"), nil
	}
	return []byte(j), nil
}

func (j *JSONB) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*j = nil
		return nil
	}
	*j = append((*j)[:0], data...)
	return nil
}

// GalleryImage is one entry of a project's image gallery.
type GalleryImage struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// Gallery is stored as a jsonb array and is never NULL.
type Gallery []GalleryImage

func (g Gallery) Value() (driver.Value, error) {
	if g == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]GalleryImage(g))
}

func (g *Gallery) Scan(src interface{}) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*g = Gallery{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("gallery: unsupported scan type %T", src)
	}
	var items []GalleryImage
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("gallery: %w", err)
	}
	if items == nil {
		items = []GalleryImage{}
	}
	*g = items
	return nil
}
