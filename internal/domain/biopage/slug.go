package biopage

import (
	"fmt"
	"regexp"
	"strings"

	"creator-app/internal/domain/users"

	"gorm.io/gorm"
)

/*
	Bio page slug helpers
	---------------------
	- Responsible ONLY for:
	  • generating slugs
	  • persisting them
	  • building public page URLs
	- No access logic, no billing logic here
*/

var (
	nonSlug   = regexp.MustCompile(`[^a-z0-9\-]+`)
	multiDash = regexp.MustCompile(`-+`)
)

// MakeSlug generates a URL-safe base slug from the creator's name.
// Example: "John Doe" -> "john-doe"
func MakeSlug(name, lastname string) string {
	base := strings.ToLower(strings.TrimSpace(name + " " + lastname))
	base = strings.ReplaceAll(base, " ", "-")
	base = nonSlug.ReplaceAllString(base, "")
	base = multiDash.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")

	if base == "" {
		base = "creator"
	}
	return base
}

// EnsurePageSlug ensures user.PageSlug exists and is persisted.
// Must be called AFTER user has an ID (after Create).
//
// Takes db as a parameter instead of importing creator-app/database to
// avoid an import cycle with the users domain.
func EnsurePageSlug(db *gorm.DB, user *users.User) (string, error) {
	if user == nil {
		return "", fmt.Errorf("user is nil")
	}
	if db == nil {
		return "", fmt.Errorf("db is nil")
	}

	if user.PageSlug != nil && strings.TrimSpace(*user.PageSlug) != "" {
		return strings.TrimSpace(*user.PageSlug), nil
	}

	if user.ID == 0 {
		return "", fmt.Errorf("user ID missing (call EnsurePageSlug after Create)")
	}

	base := MakeSlug(user.Name, user.Lastname)
	slug := fmt.Sprintf("%s-%d", base, user.ID)

	user.PageSlug = &slug

	if err := db.
		Model(&users.User{}).
		Where("id = ?", user.ID).
		Update("page_slug", slug).Error; err != nil {
		return "", err
	}

	return slug, nil
}

// BuildPublicURL builds the public bio page URL from a slug.
// Example: "john-doe-32" -> "https://creator.page/p/john-doe-32"
func BuildPublicURL(slug string) string {
	return "https://creator.page/p/" + slug
}
