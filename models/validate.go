package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Validate is the shared struct validator for draft inputs. The catalog and
// identity stores trust their inputs; callers run these checks before handing
// a draft over.
var Validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateBasics covers the first intake step: offering kind, title and a
// description of at least 50 characters.
func (d ExperienceDraft) ValidateBasics() error {
	if d.Type == "" || d.Title == "" || d.Description == "" {
		return fmt.Errorf("please fill in all required fields")
	}
	switch d.Type {
	case TypeWorkshop, TypeTour, TypeHomestay:
	default:
		return fmt.Errorf("unsupported experience type: %s", d.Type)
	}
	if len(d.Description) < 50 {
		return fmt.Errorf("description should be at least 50 characters")
	}
	return nil
}

// ValidateLogistics covers the second intake step: location, languages and
// positive duration, capacity and price.
func (d ExperienceDraft) ValidateLogistics() error {
	if d.Location == "" || len(d.Languages) == 0 || d.Duration <= 0 || d.Capacity <= 0 || d.Price <= 0 {
		return fmt.Errorf("please fill in all required fields with valid values")
	}
	return nil
}

// ValidateMedia covers the final intake step: at least one image and one
// available date.
func (d ExperienceDraft) ValidateMedia() error {
	if len(d.Images) == 0 {
		return fmt.Errorf("please add at least one image")
	}
	if len(d.AvailableDates) == 0 {
		return fmt.Errorf("please add at least one available date")
	}
	return nil
}

// ValidateAll runs the tag-level checks plus every intake step in order.
func (d ExperienceDraft) ValidateAll() error {
	if err := Validate.Struct(d); err != nil {
		return fmt.Errorf("invalid experience draft: %w", err)
	}
	if err := d.ValidateBasics(); err != nil {
		return err
	}
	if err := d.ValidateLogistics(); err != nil {
		return err
	}
	return d.ValidateMedia()
}
