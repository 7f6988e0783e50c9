package model

import (
	"fmt"
	"time"
)

// Build is a named selection of at most one product per category.
// TotalPrice is supplied by the caller and never re-derived from the
// components map. CreatedAt is set once on creation.
type Build struct {
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	Components map[Category]string `json:"components"`
	TotalPrice int                 `json:"totalPrice"`
	CreatedAt  time.Time           `json:"createdAt"`
}

// BuildRequest is the payload for creating a build.
type BuildRequest struct {
	Name       string              `json:"name"`
	Components map[Category]string `json:"components"`
	TotalPrice int                 `json:"totalPrice"`
}

// Validate checks the create payload. Field names are returned inside a
// ValidationError so handlers can report them individually.
func (r *BuildRequest) Validate() error {
	fields := map[string]string{}
	if r.Name == "" {
		fields["name"] = "name is required"
	}
	if r.TotalPrice < 0 {
		fields["totalPrice"] = "totalPrice must not be negative"
	}
	for category := range r.Components {
		if !category.Valid() {
			fields["components"] = fmt.Sprintf("invalid category: %q", category)
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// BuildUpdate carries a partial update. Nil fields are left untouched;
// a non-nil components map replaces the stored one wholesale, matching
// the shallow-merge semantics of the store.
type BuildUpdate struct {
	Name       *string             `json:"name,omitempty"`
	Components map[Category]string `json:"components,omitempty"`
	TotalPrice *int                `json:"totalPrice,omitempty"`
}

// Validate checks the update payload.
func (u *BuildUpdate) Validate() error {
	fields := map[string]string{}
	if u.Name != nil && *u.Name == "" {
		fields["name"] = "name must not be empty"
	}
	if u.TotalPrice != nil && *u.TotalPrice < 0 {
		fields["totalPrice"] = "totalPrice must not be negative"
	}
	for category := range u.Components {
		if !category.Valid() {
			fields["components"] = fmt.Sprintf("invalid category: %q", category)
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
