// Package dto holds the request payloads accepted by the service layer and
// turns validator failures into the human-readable message lists returned to
// clients. All violations for a payload are reported together.
package dto

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ProductRequest carries every mutable product field. Product writes are
// full-replace, so nothing here is optional; price and stock arrive as text
// and are parsed by the service.
type ProductRequest struct {
	CategoryID string `json:"CategoryId" validate:"required,notblank"`
	Name       string `json:"name" validate:"required,notblank,min=5,max=50"`
	ImageURL   string `json:"image_url" validate:"required,notblank,max=10000"`
	Price      string `json:"price" validate:"required,notblank"`
	Stock      string `json:"stock" validate:"required,notblank"`
}

// ProductEnvelope is the wire shape for product writes: {"product": {...}}.
type ProductEnvelope struct {
	Product *ProductRequest `json:"product"`
}

// CategoryRequest is used for both create and partial update; on update a nil
// Name leaves the stored value untouched.
type CategoryRequest struct {
	Name *string `json:"name" validate:"required,notblank,max=100"`
}

// BannerRequest is used for both create and partial update. Status is
// optional and defaults to false on create.
type BannerRequest struct {
	Title     *string `json:"title" validate:"required,notblank,min=5,max=100"`
	Status    *bool   `json:"status"`
	ImageURL  *string `json:"image_url" validate:"required,notblank,max=10000"`
	Discovery *string `json:"discovery" validate:"required,notblank,min=5,max=100"`
}

// RegisterRequest is the registration payload. Role is optional and defaults
// to "customer" when blank.
type RegisterRequest struct {
	DisplayName string `json:"displayName" validate:"required,notblank,min=5,max=50"`
	Email       string `json:"email" validate:"required,notblank,email,max=50"`
	Password    string `json:"password" validate:"required,notblank,min=4"`
	Role        string `json:"role"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterValidations installs the custom rules the request types rely on.
func RegisterValidations(v *validator.Validate) {
	// required only rejects the zero value, so a whitespace-only string
	// needs its own rule.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

// messages maps struct field + failed tag to the client-facing text.
var messages = map[string]string{
	"ProductRequest.CategoryID.required": "category is required",
	"ProductRequest.CategoryID.notblank": "category can not be empty",
	"ProductRequest.Name.required":       "product name is required",
	"ProductRequest.Name.notblank":       "product name can not be empty",
	"ProductRequest.Name.min":            "product name length must be between 5 and 50",
	"ProductRequest.Name.max":            "product name length must be between 5 and 50",
	"ProductRequest.ImageURL.required":   "image URL is required",
	"ProductRequest.ImageURL.notblank":   "image URL can not be empty",
	"ProductRequest.ImageURL.max":        "image URL length must be between 1 and 10000",
	"ProductRequest.Price.required":      "price is required",
	"ProductRequest.Price.notblank":      "price can not be empty",
	"ProductRequest.Stock.required":      "stock is required",
	"ProductRequest.Stock.notblank":      "stock can not be empty",

	"CategoryRequest.Name.required": "name is required",
	"CategoryRequest.Name.notblank": "name can not be empty",
	"CategoryRequest.Name.max":      "name length must be between 1 and 100",

	"BannerRequest.Title.required":     "title is required",
	"BannerRequest.Title.notblank":     "title can not be empty",
	"BannerRequest.Title.min":          "title length must be between 5 and 100",
	"BannerRequest.Title.max":          "title length must be between 5 and 100",
	"BannerRequest.ImageURL.required":  "image URL is required",
	"BannerRequest.ImageURL.notblank":  "image URL can not be empty",
	"BannerRequest.ImageURL.max":       "image URL length must be between 1 and 10000",
	"BannerRequest.Discovery.required": "discovery is required",
	"BannerRequest.Discovery.notblank": "discovery can not be empty",
	"BannerRequest.Discovery.min":      "discovery length must be between 5 and 100",
	"BannerRequest.Discovery.max":      "discovery length must be between 5 and 100",

	"RegisterRequest.DisplayName.required": "name is required",
	"RegisterRequest.DisplayName.notblank": "name can not be empty",
	"RegisterRequest.DisplayName.min":      "name length must be between 5 and 50",
	"RegisterRequest.DisplayName.max":      "name length must be between 5 and 50",
	"RegisterRequest.Email.required":       "email is required",
	"RegisterRequest.Email.notblank":       "email can not be empty",
	"RegisterRequest.Email.email":          "email format is not valid",
	"RegisterRequest.Email.max":            "email length must be at most 50",
	"RegisterRequest.Password.required":    "password is required",
	"RegisterRequest.Password.notblank":    "password can not be empty",
	"RegisterRequest.Password.min":         "at least password length is 4",

	"LoginRequest.Email.required":    "email is required",
	"LoginRequest.Password.required": "password is required",
}

// Messages renders a validator error into the message list for the response
// envelope. Unknown violations fall back to a generic field/tag message.
func Messages(err error) []string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(verrs))
	for _, e := range verrs {
		key := e.StructNamespace() + "." + e.Tag()
		if msg, ok := messages[key]; ok {
			out = append(out, msg)
			continue
		}
		out = append(out, fmt.Sprintf("field '%s' failed on the '%s' rule", e.Field(), e.Tag()))
	}
	return out
}
