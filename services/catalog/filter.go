package catalog

import (
	"strings"
	"time"

	"marhaba/models"
)

// FilterAllTypes matches every experience type.
const FilterAllTypes = "all"

// ExperienceFilter collects the search predicates. Zero-valued fields impose
// no constraint on their dimension; the set predicates compose with AND.
type ExperienceFilter struct {
	// Type matches exactly; empty or FilterAllTypes matches everything.
	Type string
	// Location is a case-insensitive substring match; empty matches everything.
	Location string
	// MinPrice and MaxPrice are inclusive bounds; nil imposes no bound.
	MinPrice *float64
	MaxPrice *float64
	// Date requires at least one available date on the same calendar day.
	Date *time.Time
}

// FilterExperiences returns the experiences satisfying every given predicate,
// in insertion order. Filtering is idempotent: reapplying the same filter to
// its own result changes nothing.
func (s *DefaultCatalogService) FilterExperiences(filter ExperienceFilter) ([]models.Experience, error) {
	all, err := s.ExperienceRepo.GetAll()
	if err != nil {
		return nil, err
	}

	out := make([]models.Experience, 0, len(all))
	for _, exp := range all {
		if filter.matches(exp) {
			out = append(out, exp)
		}
	}
	return out, nil
}

func (f ExperienceFilter) matches(exp models.Experience) bool {
	if f.Type != "" && f.Type != FilterAllTypes && string(exp.Type) != f.Type {
		return false
	}
	if f.Location != "" &&
		!strings.Contains(strings.ToLower(exp.Location), strings.ToLower(f.Location)) {
		return false
	}
	if f.MinPrice != nil && exp.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && exp.Price > *f.MaxPrice {
		return false
	}
	if f.Date != nil && !hasDateOnDay(exp.AvailableDates, *f.Date) {
		return false
	}
	return true
}

// hasDateOnDay reports whether any available date falls on the same calendar
// day as want, comparing date portions in UTC and ignoring time of day.
func hasDateOnDay(dates []time.Time, want time.Time) bool {
	day := want.UTC().Format("2006-01-02")
	for _, d := range dates {
		if d.UTC().Format("2006-01-02") == day {
			return true
		}
	}
	return false
}
