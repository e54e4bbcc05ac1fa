package models

import (
	"errors"
	"regexp"
	"strings"
)

// Category represents a product category in the storefront taxonomy
type Category struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// The fixed taxonomy the backend categorizes products against. Aggregation
// attributes counts by these slugs, so the list must match the backend's
// categorization scheme exactly.
var taxonomy = []Category{
	{Name: "Men Wear", Slug: "men-wear"},
	{Name: "Women Wear", Slug: "women-wear"},
	{Name: "Children Wear", Slug: "children-wear"},
	{Name: "Luxury Shoes", Slug: "luxury-shoes"},
	{Name: "Precious Jewelries", Slug: "precious-jewelries"},
	{Name: "Books", Slug: "books"},
	{Name: "Premium Perfumes", Slug: "premium-perfumes"},
}

// Taxonomy returns the fixed category taxonomy in display order.
// Callers receive a copy so the shared list cannot be mutated.
func Taxonomy() []Category {
	out := make([]Category, len(taxonomy))
	copy(out, taxonomy)
	return out
}

// IsKnownCategory reports whether slug belongs to the taxonomy.
func IsKnownCategory(slug string) bool {
	for _, c := range taxonomy {
		if c.Slug == slug {
			return true
		}
	}
	return false
}

var (
	// Slug validation regex: lowercase letters, numbers, and hyphens only
	slugRegex = regexp.MustCompile(`^[a-z0-9-]+$`)
)

// ValidateSlug validates a category slug
func ValidateSlug(slug string) error {
	if slug == "" {
		return errors.New("category slug is required")
	}

	if len(slug) > 100 {
		return errors.New("category slug must be less than 100 characters")
	}

	if !slugRegex.MatchString(slug) {
		return errors.New("category slug can only contain lowercase letters, numbers, and hyphens")
	}

	if strings.HasPrefix(slug, "-") || strings.HasSuffix(slug, "-") {
		return errors.New("category slug cannot start or end with a hyphen")
	}

	if strings.Contains(slug, "--") {
		return errors.New("category slug cannot contain consecutive hyphens")
	}

	return nil
}

// GenerateSlug generates a URL-friendly slug from a category name
func GenerateSlug(name string) string {
	// Convert to lowercase
	slug := strings.ToLower(name)

	// Replace spaces and special characters with hyphens
	reg := regexp.MustCompile(`[^a-z0-9]+`)
	slug = reg.ReplaceAllString(slug, "-")

	// Remove leading and trailing hyphens
	slug = strings.Trim(slug, "-")

	return slug
}
