package api

import (
	"net/http"
	"testing"
)

type searchResultBody struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func TestSearchMatchesNameDescriptionAndItems(t *testing.T) {
	app, sender := newTestApp(t)
	access, _ := login(t, app, sender, "shopper@example.com")

	createList(t, app, access, "Groceries", "milk and eggs")
	createList(t, app, access, "Hardware", "screws and nails")
	doJSON(t, app, http.MethodPost, "/lists/hardware/items", access, map[string]any{
		"name":     "Hammer",
		"price":    "12.00",
		"quantity": 1,
	})

	response := doJSON(t, app, http.MethodGet, "/search?search=milk", access, nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("search: status %d", response.StatusCode)
	}
	var results []searchResultBody
	decodeJSON(t, response, &results)
	if len(results) != 1 || results[0].Slug != "groceries" {
		t.Fatalf("search milk = %v, want only groceries", results)
	}

	// Item names count toward the match.
	response = doJSON(t, app, http.MethodGet, "/search?search=hammer", access, nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("item search: status %d", response.StatusCode)
	}
	results = nil
	decodeJSON(t, response, &results)
	if len(results) != 1 || results[0].Slug != "hardware" {
		t.Fatalf("search hammer = %v, want only hardware", results)
	}
}

func TestSearchToleratesTypos(t *testing.T) {
	app, sender := newTestApp(t)
	access, _ := login(t, app, sender, "shopper@example.com")

	createList(t, app, access, "Groceries", "milk and eggs")

	response := doJSON(t, app, http.MethodGet, "/search?search=milkk", access, nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("typo search: status %d", response.StatusCode)
	}
	var results []searchResultBody
	decodeJSON(t, response, &results)
	if len(results) != 1 || results[0].Slug != "groceries" {
		t.Fatalf("search milkk = %v, want groceries via similarity", results)
	}
}

func TestSearchIsScopedToRequester(t *testing.T) {
	app, sender := newTestApp(t)
	owner, _ := login(t, app, sender, "owner@example.com")
	stranger, _ := login(t, app, sender, "stranger@example.com")

	createList(t, app, owner, "Groceries", "milk and eggs")

	response := doJSON(t, app, http.MethodGet, "/search?search=milk", stranger, nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("stranger search: status %d", response.StatusCode)
	}
	var results []searchResultBody
	decodeJSON(t, response, &results)
	if len(results) != 0 {
		t.Fatalf("expected no foreign results, got %v", results)
	}
}

func TestSearchBlankQueryReturnsNothing(t *testing.T) {
	app, sender := newTestApp(t)
	access, _ := login(t, app, sender, "shopper@example.com")

	createList(t, app, access, "Groceries", "")

	response := doJSON(t, app, http.MethodGet, "/search", access, nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("blank search: status %d", response.StatusCode)
	}
	var results []searchResultBody
	decodeJSON(t, response, &results)
	if len(results) != 0 {
		t.Fatalf("expected an empty result set, got %v", results)
	}
}
