package services

import (
	"fmt"

	"github.com/gosimple/slug"
)

type SlugRepository interface {
	SlugExists(slug string) (bool, error)
}

// Slugify derives the canonical slug for a name. Names with no sluggable
// characters fall back to a fixed stem so the result is never empty.
func Slugify(name string) string {
	derived := slug.Make(name)
	if derived == "" {
		return "untitled"
	}
	return derived
}

// EnsureSlug returns the slug a record should carry for its name. The stored
// slug is kept while it still matches the derived one; otherwise the derived
// slug is taken, with the first free ordinal suffix on collision.
func EnsureSlug(repo SlugRepository, name string, current string) (string, error) {
	base := Slugify(name)
	if current == base {
		return current, nil
	}

	candidate := base
	for ordinal := 2; ; ordinal++ {
		exists, err := repo.SlugExists(candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, ordinal)
	}
}
