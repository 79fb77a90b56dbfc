package services

import (
	"sort"
	"strings"

	"hostelhub/dto"
	"hostelhub/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"
)

// NormalizeQuery strips accents and lowercases a search query so
// "Cañón" matches "canon".
func NormalizeQuery(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Similarity scores two normalized strings in [0, 1].
func Similarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// SearchService provides fuzzy lookup over hostel names for the public
// directory.
type SearchService struct {
	db *gorm.DB
}

func NewSearchService(db *gorm.DB) *SearchService {
	return &SearchService{db: db}
}

const minSimilarity = 0.4

// SearchHostels returns hostels whose names fuzzily match the query,
// best match first.
func (s *SearchService) SearchHostels(query string, limit int) ([]dto.HostelSearchResponse, error) {
	var hostels []models.Hostel
	if err := s.db.Find(&hostels).Error; err != nil {
		return nil, err
	}

	normalizedQuery := NormalizeQuery(query)
	if normalizedQuery == "" {
		return []dto.HostelSearchResponse{}, nil
	}

	names := make([]string, 0, len(hostels))
	bySlug := make(map[string]models.Hostel, len(hostels))
	for _, h := range hostels {
		normalized := NormalizeQuery(h.Name)
		names = append(names, normalized)
		bySlug[normalized] = h
	}

	matcher := createMatcher(names)
	candidates := matcher.ClosestN(normalizedQuery, limit)

	type scored struct {
		hostel models.Hostel
		score  float64
	}
	var results []scored
	seen := make(map[string]bool)
	for _, candidate := range candidates {
		if candidate == "" || seen[candidate] {
			continue
		}
		seen[candidate] = true

		score := Similarity(normalizedQuery, candidate)
		if score < minSimilarity && !strings.Contains(candidate, normalizedQuery) {
			continue
		}
		results = append(results, scored{hostel: bySlug[candidate], score: score})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})

	out := make([]dto.HostelSearchResponse, 0, len(results))
	for _, r := range results {
		out = append(out, dto.HostelSearchResponse{
			Slug:  r.hostel.Slug,
			Name:  r.hostel.Name,
			Score: int(r.score * 100),
		})
	}
	return out, nil
}
