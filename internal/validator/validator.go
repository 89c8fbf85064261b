// Package validator defines the request input schemas. Each input type
// carries one declarative ozzo-validation rule set; handlers bind JSON into
// these types and call Validate before touching the services.
package validator

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// RegisterInput is the body of POST /auth/register. A role field sent by the
// client is deliberately absent here: registration always yields an editor.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate validates a RegisterInput.
func (i RegisterInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name,
			validation.Required.Error("name_required"),
		),
		validation.Field(&i.Email,
			validation.Required.Error("email_required"),
			is.Email.Error("invalid_email_format"),
		),
		validation.Field(&i.Password,
			validation.Required.Error("password_required"),
			validation.Length(6, 0).Error("password_too_short"),
		),
	)
}

// LoginInput is the body of POST /auth/login.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate validates a LoginInput.
func (i LoginInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email,
			validation.Required.Error("email_required"),
			is.Email.Error("invalid_email_format"),
		),
		validation.Field(&i.Password,
			validation.Required.Error("password_required"),
		),
	)
}

// UpdateProfileInput is the body of PUT /auth/profile. Both fields are
// optional; password changes go through ChangePasswordInput only.
type UpdateProfileInput struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// Validate validates an UpdateProfileInput.
func (i UpdateProfileInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name,
			validation.NilOrNotEmpty.Error("name_empty"),
		),
		validation.Field(&i.Email,
			is.Email.Error("invalid_email_format"),
		),
	)
}

// ChangePasswordInput is the body of PUT /auth/change-password.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// Validate validates a ChangePasswordInput.
func (i ChangePasswordInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.CurrentPassword,
			validation.Required.Error("current_password_required"),
		),
		validation.Field(&i.NewPassword,
			validation.Required.Error("new_password_required"),
			validation.Length(6, 0).Error("password_too_short"),
		),
	)
}

// NewsInput is the body of POST /news. Published defaults to true and
// PublishDate to the creation time when omitted. The author is never part of
// the input: it is forced to the authenticated caller.
type NewsInput struct {
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Summary     string     `json:"summary"`
	ImageURL    *string    `json:"imageUrl"`
	Published   *bool      `json:"published"`
	PublishDate *time.Time `json:"publishDate"`
	Tags        []string   `json:"tags"`
}

// Validate validates a NewsInput.
func (i NewsInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Title,
			validation.Required.Error("title_required"),
			validation.Length(3, 0).Error("title_too_short"),
		),
		validation.Field(&i.Content,
			validation.Required.Error("content_required"),
			validation.Length(10, 0).Error("content_too_short"),
		),
		validation.Field(&i.Summary,
			validation.Required.Error("summary_required"),
			validation.Length(5, 0).Error("summary_too_short"),
		),
		validation.Field(&i.ImageURL,
			is.URL.Error("invalid_image_url"),
		),
	)
}

// NewsUpdateInput is the body of PUT /news/:id. Every field is optional;
// absent fields are left untouched.
type NewsUpdateInput struct {
	Title       *string    `json:"title"`
	Content     *string    `json:"content"`
	Summary     *string    `json:"summary"`
	ImageURL    *string    `json:"imageUrl"`
	Published   *bool      `json:"published"`
	PublishDate *time.Time `json:"publishDate"`
	Tags        []string   `json:"tags"`
}

// Validate validates a NewsUpdateInput.
func (i NewsUpdateInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Title,
			validation.Length(3, 0).Error("title_too_short"),
		),
		validation.Field(&i.Content,
			validation.Length(10, 0).Error("content_too_short"),
		),
		validation.Field(&i.Summary,
			validation.Length(5, 0).Error("summary_too_short"),
		),
		validation.Field(&i.ImageURL,
			is.URL.Error("invalid_image_url"),
		),
	)
}
