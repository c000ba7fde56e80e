package content

import (
	"encoding/json"
	"io"
	"strings"

	"portfolio-backend/internal/apperrors"
	"portfolio-backend/internal/models"
)

// fieldErrors collects normalization failures in field order. The first
// message becomes the error message shown to the client.
type fieldErrors struct {
	first  string
	fields map[string]string
}

func (f *fieldErrors) add(field, message string) {
	if f.fields == nil {
		f.fields = make(map[string]string)
		f.first = message
	}
	if _, exists := f.fields[field]; !exists {
		f.fields[field] = message
	}
}

func (f *fieldErrors) err() error {
	if f.fields == nil {
		return nil
	}
	return &apperrors.Error{
		Kind:    apperrors.KindValidation,
		Message: f.first,
		Fields:  f.fields,
	}
}

func normalizeSlug(raw map[string]interface{}, errs *fieldErrors) string {
	slug := strings.ToLower(strings.TrimSpace(coerceString(raw["slug"])))
	if slug == "" {
		errs.add("slug", "slug is required")
	}
	return slug
}

// NormalizeBlog turns an untrusted request body into a blog record.
func NormalizeBlog(raw map[string]interface{}) (models.BlogFields, error) {
	var errs fieldErrors

	fields := models.BlogFields{
		Title:   coerceString(raw["title"]),
		Slug:    normalizeSlug(raw, &errs),
		Excerpt: coerceString(raw["excerpt"]),
		Cover:   coerceString(raw["cover"]),
		Content: optionalText(raw["content"]),
		Tags:    stringList(raw["tags"]),
	}

	date, ok := parseDate(raw["date"])
	if !ok {
		errs.add("date", "date must be a valid ISO-8601 timestamp")
	}
	fields.Date = date

	if err := errs.err(); err != nil {
		return models.BlogFields{}, err
	}
	return fields, nil
}

// NormalizeProject turns an untrusted request body into a project record.
func NormalizeProject(raw map[string]interface{}) (models.ProjectFields, error) {
	var errs fieldErrors

	fields := models.ProjectFields{
		Title:         coerceString(raw["title"]),
		Slug:          normalizeSlug(raw, &errs),
		Excerpt:       coerceString(raw["excerpt"]),
		Thumb:         coerceString(raw["thumb"]),
		Video:         optionalText(raw["video"]),
		Roles:         stringList(raw["roles"]),
		Tools:         stringList(raw["tools"]),
		Type:          strings.TrimSpace(coerceString(raw["type"])),
		Featured:      truthy(raw["featured"]),
		Alt:           optionalText(raw["alt"]),
		Credits:       optionalText(raw["credits"]),
		Problem:       optionalText(raw["problem"]),
		Solution:      optionalText(raw["solution"]),
		Approach:      optionalText(raw["approach"]),
		Outcome:       optionalText(raw["outcome"]),
		Year:          optionalText(raw["year"]),
		Client:        optionalText(raw["client"]),
		MobileHeroSrc: optionalText(raw["mobileHeroSrc"]),
		Gallery:       normalizeGallery(raw["gallery"]),
		Highlights:    nonNilList(stringList(raw["highlights"])),
		Deliverables:  nonNilList(stringList(raw["deliverables"])),
	}

	if len(fields.Roles) == 0 {
		errs.add("roles", "roles is required and must contain at least one item")
	}
	if !oneOf(fields.Type, models.ProjectTypes) {
		errs.add("type", "type must be one of: "+strings.Join(models.ProjectTypes, ", "))
	}

	process, ok := normalizeProcess(raw["process"])
	if !ok {
		errs.add("process", "process must be a JSON array or object")
	}
	fields.Process = process

	if err := errs.err(); err != nil {
		return models.ProjectFields{}, err
	}
	return fields, nil
}

// NormalizeWork turns an untrusted request body into a work tile record.
func NormalizeWork(raw map[string]interface{}) (models.WorkFields, error) {
	var errs fieldErrors

	fields := models.WorkFields{
		Title:       coerceString(raw["title"]),
		Slug:        normalizeSlug(raw, &errs),
		Description: optionalText(raw["description"]),
		Image:       coerceString(raw["image"]),
		AspectRatio: strings.TrimSpace(coerceString(raw["aspect_ratio"])),
		Link:        optionalText(raw["link"]),
	}

	if fields.AspectRatio == "" {
		fields.AspectRatio = models.AspectSquare
	}
	if !oneOf(fields.AspectRatio, models.AspectRatios) {
		errs.add("aspect_ratio", "aspect_ratio must be one of: "+strings.Join(models.AspectRatios, ", "))
	}

	order, ok := parseOrder(raw["featured_order"])
	if !ok {
		errs.add("featured_order", "featured_order must be a non-negative integer")
	}
	fields.FeaturedOrder = order

	if err := errs.err(); err != nil {
		return models.WorkFields{}, err
	}
	return fields, nil
}

func nonNilList(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

func normalizeGallery(v interface{}) models.Gallery {
	items, ok := v.([]interface{})
	if !ok {
		return models.Gallery{}
	}
	gallery := make(models.Gallery, 0, len(items))
	for _, item := range items {
		var src, alt string
		switch t := item.(type) {
		case map[string]interface{}:
			src = strings.TrimSpace(coerceString(t["src"]))
			alt = strings.TrimSpace(coerceString(t["alt"]))
		case string:
			src = strings.TrimSpace(t)
		}
		if src == "" {
			continue
		}
		gallery = append(gallery, models.GalleryImage{Src: src, Alt: alt})
	}
	return gallery
}

// normalizeProcess accepts a decoded array/object or a JSON string holding
// one, and returns it as compact JSON. Anything else is rejected.
func normalizeProcess(v interface{}) (models.JSONB, bool) {
	var parsed interface{}
	switch t := v.(type) {
	case nil:
		return nil, true
	case map[string]interface{}, []interface{}:
		parsed = t
	case models.JSONB:
		return normalizeProcess(string(t))
	case json.RawMessage:
		return normalizeProcess(string(t))
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return nil, true
		}
		dec := json.NewDecoder(strings.NewReader(s))
		dec.UseNumber()
		if err := dec.Decode(&parsed); err != nil {
			return nil, false
		}
		if _, err := dec.Token(); err != io.EOF {
			return nil, false
		}
		if parsed == nil {
			return nil, true
		}
	default:
		return nil, false
	}

	switch parsed.(type) {
	case map[string]interface{}, []interface{}:
	default:
		return nil, false
	}

	out, err := json.Marshal(parsed)
	if err != nil {
		return nil, false
	}
	return models.JSONB(out), true
}
