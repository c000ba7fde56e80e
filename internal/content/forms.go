package content

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"portfolio-backend/internal/apperrors"
	"portfolio-backend/internal/models"
)

// BlogForm mirrors the admin blog editor before submission.
type BlogForm struct {
	Title   string `json:"title" validate:"required,max=200"`
	Slug    string `json:"slug" validate:"required,slug"`
	Excerpt string `json:"excerpt" validate:"required,max=300"`
	Cover   string `json:"cover" validate:"required"`
	Content string `json:"content" validate:"min=50"`
	Date    string `json:"date" validate:"required,isodate"`
}

type ProjectForm struct {
	Title   string   `json:"title" validate:"required,max=200"`
	Slug    string   `json:"slug" validate:"required,slug"`
	Excerpt string   `json:"excerpt" validate:"required,max=500"`
	Thumb   string   `json:"thumb" validate:"required"`
	Roles   []string `json:"roles" validate:"min=1"`
	Type    string   `json:"type" validate:"required,oneof=branding social ui-ux web-dev print"`
}

type WorkForm struct {
	Title       string `json:"title" validate:"required,max=200"`
	Slug        string `json:"slug" validate:"required,slug"`
	Image       string `json:"image" validate:"required"`
	AspectRatio string `json:"aspect_ratio" validate:"oneof=square portrait45 portrait916"`
}

// FormValidator runs the per-field rules the admin forms display next to
// each input.
type FormValidator struct {
	validate *validator.Validate
}

func NewFormValidator() *FormValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("register validation %q: %v", tag, err))
		}
	}
	mustRegister("slug", func(fl validator.FieldLevel) bool {
		return IsSlug(fl.Field().String())
	})
	mustRegister("isodate", func(fl validator.FieldLevel) bool {
		_, ok := parseDate(fl.Field().String())
		return ok
	})

	return &FormValidator{validate: v}
}

func (f *FormValidator) ValidateBlog(raw map[string]interface{}) error {
	form := BlogForm{
		Title:   strings.TrimSpace(coerceString(raw["title"])),
		Slug:    strings.TrimSpace(coerceString(raw["slug"])),
		Excerpt: strings.TrimSpace(coerceString(raw["excerpt"])),
		Cover:   strings.TrimSpace(coerceString(raw["cover"])),
		Content: strings.TrimSpace(coerceString(raw["content"])),
		Date:    strings.TrimSpace(coerceString(raw["date"])),
	}
	return f.check(form, form.Title)
}

func (f *FormValidator) ValidateProject(raw map[string]interface{}) error {
	form := ProjectForm{
		Title:   strings.TrimSpace(coerceString(raw["title"])),
		Slug:    strings.TrimSpace(coerceString(raw["slug"])),
		Excerpt: strings.TrimSpace(coerceString(raw["excerpt"])),
		Thumb:   strings.TrimSpace(coerceString(raw["thumb"])),
		Roles:   stringList(raw["roles"]),
		Type:    strings.TrimSpace(coerceString(raw["type"])),
	}
	return f.check(form, form.Title)
}

func (f *FormValidator) ValidateWork(raw map[string]interface{}) error {
	form := WorkForm{
		Title:       strings.TrimSpace(coerceString(raw["title"])),
		Slug:        strings.TrimSpace(coerceString(raw["slug"])),
		Image:       strings.TrimSpace(coerceString(raw["image"])),
		AspectRatio: strings.TrimSpace(coerceString(raw["aspect_ratio"])),
	}
	if form.AspectRatio == "" {
		form.AspectRatio = models.AspectSquare
	}
	return f.check(form, form.Title)
}

// check runs the struct rules. A rejected slug gets a suggestion derived
// from the title so the form can offer it.
func (f *FormValidator) check(form interface{}, title string) error {
	err := f.validate.Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.Wrap(err, apperrors.KindInternal, "form validation failed")
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	if msg, ok := fields["slug"]; ok {
		if hint := SlugFromTitle(title); hint != "" {
			fields["slug"] = fmt.Sprintf("%s (suggested: %s)", msg, hint)
		}
	}
	return apperrors.InvalidFields(fields)
}

func fieldMessage(fe validator.FieldError) string {
	name := fe.Field()
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", name, fe.Param())
	case "min":
		if fe.Kind() == reflect.Slice {
			return name + " must contain at least one item"
		}
		current, _ := fe.Value().(string)
		return fmt.Sprintf("%s must be at least %s characters (currently %d)", name, fe.Param(), utf8.RuneCountInString(current))
	case "slug":
		return "slug must contain only lowercase letters, numbers and hyphens"
	case "isodate":
		return name + " must be a valid ISO-8601 date"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", name, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return name + " is invalid"
	}
}
