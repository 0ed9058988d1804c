package services

import "testing"

type stubSlugRepo struct {
	taken map[string]bool
}

func (stub *stubSlugRepo) SlugExists(slug string) (bool, error) {
	return stub.taken[slug], nil
}

func TestEnsureSlugDerivesFromName(t *testing.T) {
	repo := &stubSlugRepo{taken: map[string]bool{}}

	value, err := EnsureSlug(repo, "Groceries", "")
	if err != nil {
		t.Fatalf("EnsureSlug() unexpected error: %v", err)
	}
	if value != "groceries" {
		t.Fatalf("EnsureSlug() = %q, want %q", value, "groceries")
	}
}

func TestEnsureSlugAppendsOrdinalOnCollision(t *testing.T) {
	repo := &stubSlugRepo{taken: map[string]bool{"groceries": true, "groceries-2": true}}

	value, err := EnsureSlug(repo, "Groceries", "")
	if err != nil {
		t.Fatalf("EnsureSlug() unexpected error: %v", err)
	}
	if value != "groceries-3" {
		t.Fatalf("EnsureSlug() = %q, want %q", value, "groceries-3")
	}
}

func TestEnsureSlugKeepsCurrentWhenNotStale(t *testing.T) {
	repo := &stubSlugRepo{taken: map[string]bool{"weekend-shopping": true}}

	value, err := EnsureSlug(repo, "Weekend Shopping", "weekend-shopping")
	if err != nil {
		t.Fatalf("EnsureSlug() unexpected error: %v", err)
	}
	if value != "weekend-shopping" {
		t.Fatalf("EnsureSlug() = %q, want the stored slug to be kept", value)
	}
}

func TestSlugifyNeverReturnsEmpty(t *testing.T) {
	if value := Slugify("!!!"); value != "untitled" {
		t.Fatalf("Slugify(%q) = %q, want fallback %q", "!!!", value, "untitled")
	}
	if value := Slugify("Crème Brûlée"); value == "" {
		t.Fatal("expected accented names to produce a non-empty slug")
	}
}
