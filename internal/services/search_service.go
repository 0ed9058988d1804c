package services

import (
	"sort"
	"strings"
	"unicode"

	"github.com/terraincognita07/carty/internal/models"
)

type SearchListRepository interface {
	ListWithItemsByUser(userID uint) ([]models.ShoppingList, error)
}

type SearchResult struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Field weights for the lexical rank: the list name dominates, description
// and item names contribute equally.
const (
	nameWeight        = 1.0
	descriptionWeight = 0.4
	itemNameWeight    = 0.4
)

// SearchService ranks a user's lists by combining exact token matching with
// trigram similarity, so both word hits and typo'd queries surface results.
type SearchService struct {
	lists               SearchListRepository
	rankThreshold       float64
	similarityThreshold float64
}

func NewSearchService(lists SearchListRepository, rankThreshold float64, similarityThreshold float64) *SearchService {
	return &SearchService{
		lists:               lists,
		rankThreshold:       rankThreshold,
		similarityThreshold: similarityThreshold,
	}
}

func (service *SearchService) Search(userID uint, query string) ([]SearchResult, error) {
	terms := tokenize(query)
	if len(terms) == 0 {
		return []SearchResult{}, nil
	}

	lists, err := service.lists.ListWithItemsByUser(userID)
	if err != nil {
		return nil, err
	}

	type scoredList struct {
		name       string
		slug       string
		rank       float64
		similarity float64
	}

	matched := make([]scoredList, 0, len(lists))
	for _, list := range lists {
		itemNames := make([]string, 0, len(list.Items))
		for _, item := range list.Items {
			itemNames = append(itemNames, item.Name)
		}

		rank := lexicalRank(terms, list.Name, list.Description, itemNames)
		similarity := fieldSimilarity(query, list.Name)
		if value := fieldSimilarity(query, list.Description); value > similarity {
			similarity = value
		}
		for _, itemName := range itemNames {
			if value := fieldSimilarity(query, itemName); value > similarity {
				similarity = value
			}
		}

		if rank > service.rankThreshold || similarity > service.similarityThreshold {
			matched = append(matched, scoredList{
				name:       list.Name,
				slug:       list.Slug,
				rank:       rank,
				similarity: similarity,
			})
		}
	}

	// Stable sort keeps the repository's newest-first order as final tiebreak.
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].rank != matched[j].rank {
			return matched[i].rank > matched[j].rank
		}
		return matched[i].similarity > matched[j].similarity
	})

	results := make([]SearchResult, 0, len(matched))
	for _, entry := range matched {
		results = append(results, SearchResult{Name: entry.name, Slug: entry.slug})
	}
	return results, nil
}

// lexicalRank scores each query term by the weight of the best field whose
// tokens contain it exactly, normalized by the number of terms so the rank
// stays in [0, 1].
func lexicalRank(terms []string, name string, description string, itemNames []string) float64 {
	nameTokens := tokenSet(name)
	descriptionTokens := tokenSet(description)
	itemTokens := tokenSet(strings.Join(itemNames, " "))

	total := 0.0
	for _, term := range terms {
		best := 0.0
		if nameTokens[term] {
			best = nameWeight
		}
		if descriptionTokens[term] && descriptionWeight > best {
			best = descriptionWeight
		}
		if itemTokens[term] && itemNameWeight > best {
			best = itemNameWeight
		}
		total += best
	}
	return total / float64(len(terms))
}

// fieldSimilarity is the trigram similarity of the query against the whole
// field and against each of its words, whichever is highest. The per-word
// comparison keeps short typo'd queries from being diluted by long fields.
func fieldSimilarity(query string, text string) float64 {
	best := trigramSimilarity(query, text)
	for _, word := range tokenize(text) {
		if value := trigramSimilarity(query, word); value > best {
			best = value
		}
	}
	return best
}

// trigramSimilarity is the Jaccard similarity of the padded-word trigram sets
// of both strings.
func trigramSimilarity(a string, b string) float64 {
	trigramsA := trigramSet(a)
	trigramsB := trigramSet(b)
	if len(trigramsA) == 0 || len(trigramsB) == 0 {
		return 0
	}

	shared := 0
	for trigram := range trigramsA {
		if _, ok := trigramsB[trigram]; ok {
			shared++
		}
	}
	union := len(trigramsA) + len(trigramsB) - shared
	return float64(shared) / float64(union)
}

// trigramSet pads every word with two leading and one trailing space before
// slicing, mirroring how trigram indexes mark word boundaries.
func trigramSet(text string) map[string]struct{} {
	trigrams := make(map[string]struct{})
	for _, word := range tokenize(text) {
		padded := "  " + word + " "
		for index := 0; index+3 <= len(padded); index++ {
			trigrams[padded[index:index+3]] = struct{}{}
		}
	}
	return trigrams
}

func tokenize(text string) []string {
	tokens := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	seen := make(map[string]struct{}, len(tokens))
	unique := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if _, duplicate := seen[token]; duplicate {
			continue
		}
		seen[token] = struct{}{}
		unique = append(unique, token)
	}
	return unique
}

func tokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, token := range tokenize(text) {
		set[token] = true
	}
	return set
}
