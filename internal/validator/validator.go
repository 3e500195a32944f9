package validator

import (
	"errors"
	"regexp"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/AdrianaGRO/PyArch.dev/internal/domain"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// notBlank rejects strings made only of whitespace; validation.Required
// accepts them.
var notBlank = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if s != "" && strings.TrimSpace(s) == "" {
		return validation.NewError("validation_blank", "cannot be blank")
	}
	return nil
})

// Validator provides validation methods for content entities.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidatePostInput validates the fields submitted by the create and edit forms.
func (v *Validator) ValidatePostInput(in *domain.PostInput) error {
	return validation.ValidateStruct(in,
		validation.Field(&in.Title,
			validation.Required.Error("title is required"),
			notBlank,
			validation.Length(0, 200).Error("title must be at most 200 characters"),
		),
		validation.Field(&in.Content,
			validation.Required.Error("content is required"),
			notBlank,
		),
		validation.Field(&in.Category,
			validation.Length(0, 50).Error("category must be at most 50 characters"),
		),
	)
}

// ValidateProject validates a project record from projects.json.
func (v *Validator) ValidateProject(p *domain.Project) error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Slug,
			validation.Required.Error("slug is required"),
			validation.Match(slugRegex).Error("slug must be lowercase words separated by dashes"),
		),
		validation.Field(&p.Title,
			validation.Required.Error("title is required"),
		),
		validation.Field(&p.HeroImage,
			is.RequestURI.Error("hero_image must be a path or URL"),
		),
	)
}

// ValidatePost validates a stored post record.
func (v *Validator) ValidatePost(p *domain.Post) error {
	return validation.ValidateStruct(p,
		validation.Field(&p.ID, validation.Required.Error("id must be positive"), validation.Min(1).Error("id must be positive")),
		validation.Field(&p.Title, validation.Required.Error("title is required")),
	)
}

// Messages flattens validation errors into sorted, user-facing sentences.
func Messages(err error) []string {
	if err == nil {
		return nil
	}

	var ve validation.Errors
	if !errors.As(err, &ve) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(ve))
	for _, fieldErr := range ve {
		if fieldErr == nil {
			continue
		}
		msg := fieldErr.Error()
		if msg != "" {
			msg = strings.ToUpper(msg[:1]) + msg[1:]
		}
		messages = append(messages, msg+".")
	}
	sort.Strings(messages)
	return messages
}
