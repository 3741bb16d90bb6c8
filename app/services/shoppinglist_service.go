package services

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/shashiranjanraj/freshbasket/app/models"
	"github.com/shashiranjanraj/freshbasket/pkg/cache"
	"github.com/shashiranjanraj/freshbasket/pkg/metrics"
	"github.com/shashiranjanraj/freshbasket/pkg/textmatch"
	"github.com/shashiranjanraj/freshbasket/pkg/workerpool"
)

// MatchedItem is one shopping-list fragment resolved to a catalogue product.
// Confidence is the match score as a percentage rounded to one decimal; it
// can exceed 100 when brand and category bonuses stack on a containment hit.
type MatchedItem struct {
	MatchedText   string  `json:"matched_text"`
	ProductID     uint    `json:"product_id"`
	ProductName   string  `json:"product_name"`
	Price         float64 `json:"price"`
	Category      string  `json:"category,omitempty"`
	Brand         string  `json:"brand,omitempty"`
	ImageURL      string  `json:"image_url,omitempty"`
	StockQuantity int64   `json:"stock_quantity"`
	Confidence    float64 `json:"confidence"`
}

// MatchOutcome partitions the parsed fragments.
type MatchOutcome struct {
	Matched   []MatchedItem `json:"matched"`
	Unmatched []string      `json:"unmatched"`
}

var (
	enumMarkers = regexp.MustCompile(`^[\d.\-*•–—]+\s*`)
	whitespace  = regexp.MustCompile(`\s+`)
	quantityExp = regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?\s*(kg|g|ml|l|pieces|piece|pcs|packets|packet|bags|bag|bottles|bottle)\b`)
)

const (
	matchThreshold  = 0.6
	catalogCacheKey = "catalog:products"
	catalogCacheTTL = 60 * time.Second
)

// ShoppingListService matches free-text shopping lists against the catalogue.
type ShoppingListService struct {
	catalog CatalogStore
	pool    *workerpool.Pool
}

func NewShoppingListService(catalog CatalogStore, pool *workerpool.Pool) *ShoppingListService {
	return &ShoppingListService{catalog: catalog, pool: pool}
}

// MatchShoppingList parses text into item fragments and scores each against
// every product. Output is deterministic for identical catalogue and input.
func (s *ShoppingListService) MatchShoppingList(ctx context.Context, text string) (*MatchOutcome, error) {
	fragments := ParseShoppingList(text)
	outcome := &MatchOutcome{Matched: []MatchedItem{}, Unmatched: []string{}}
	if len(fragments) == 0 {
		return outcome, nil
	}

	products, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, &InternalError{Err: fmt.Errorf("load catalog: %w", err)}
	}

	// Fragments are scored concurrently but collected by index, so the
	// partitions keep input order.
	results := make([]*MatchedItem, len(fragments))
	score := func(i int) {
		results[i] = bestMatch(fragments[i], products)
	}
	if s.pool != nil {
		if err := s.pool.Each(len(fragments), score); err != nil {
			return nil, &InternalError{Err: fmt.Errorf("score fragments: %w", err)}
		}
	} else {
		for i := range fragments {
			score(i)
		}
	}

	for i, m := range results {
		if m == nil {
			outcome.Unmatched = append(outcome.Unmatched, fragments[i])
			metrics.MatcherFragments.WithLabelValues("unmatched").Inc()
			continue
		}
		outcome.Matched = append(outcome.Matched, *m)
		metrics.MatcherFragments.WithLabelValues("matched").Inc()
	}
	return outcome, nil
}

// loadCatalog reads the full product list, cached briefly so repeated list
// pastes do not rescan the table. Ordering is ascending product_id either way.
func (s *ShoppingListService) loadCatalog(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if cache.Get(ctx, catalogCacheKey, &products) {
		return products, nil
	}
	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	cache.Set(ctx, catalogCacheKey, products, catalogCacheTTL)
	return products, nil
}

// ParseShoppingList splits text into lines and normalises each into an item
// fragment: enumeration markers and quantity expressions are stripped,
// whitespace collapsed, and fragments of length <= 2 discarded as noise.
func ParseShoppingList(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		// Quantity expressions go first: "2kg Tomatoes" must not lose its
		// digit to the enumeration-marker strip and leave "kg Tomatoes".
		frag := strings.TrimSpace(line)
		frag = quantityExp.ReplaceAllString(frag, " ")
		frag = strings.TrimSpace(frag)
		frag = enumMarkers.ReplaceAllString(frag, "")
		frag = whitespace.ReplaceAllString(frag, " ")
		frag = strings.TrimSpace(frag)
		if len(frag) <= 2 {
			continue
		}
		out = append(out, frag)
	}
	return out
}

// bestMatch scans products in ascending id order and keeps the single
// highest-scoring one; ties keep the first encountered. Returns nil when no
// product reaches the acceptance threshold.
func bestMatch(fragment string, products []models.Product) *MatchedItem {
	var (
		best      *models.Product
		bestScore float64
	)
	for i := range products {
		p := &products[i]
		score := scoreProduct(fragment, p)
		if best == nil || score > bestScore {
			best = p
			bestScore = score
		}
	}
	if best == nil || bestScore < matchThreshold {
		return nil
	}
	return &MatchedItem{
		MatchedText:   fragment,
		ProductID:     best.ProductID,
		ProductName:   best.ProductName,
		Price:         best.Price,
		Category:      best.Category,
		Brand:         best.Brand,
		ImageURL:      best.ImageURL,
		StockQuantity: best.StockQuantity,
		Confidence:    math.Round(bestScore*100*10) / 10,
	}
}

// scoreProduct computes the similarity of fragment to one product:
// Ratcliff/Obershelp base, containment floors, then brand and category
// substring bonuses. The result is deliberately not clamped at 1.
func scoreProduct(fragment string, p *models.Product) float64 {
	frag := strings.ToLower(fragment)
	name := strings.ToLower(p.ProductName)

	score := textmatch.Ratio(frag, name)
	if strings.Contains(name, frag) && score < 0.8 {
		score = 0.8
	} else if strings.Contains(frag, name) && score < 0.75 {
		score = 0.75
	}

	if b := strings.ToLower(p.Brand); b != "" && strings.Contains(frag, b) {
		score += 0.10
	}
	if c := strings.ToLower(p.Category); c != "" && strings.Contains(frag, c) {
		score += 0.05
	}
	return score
}
