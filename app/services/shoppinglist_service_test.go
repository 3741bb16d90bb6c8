package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/freshbasket/app/models"
	"github.com/shashiranjanraj/freshbasket/app/services"
	"github.com/shashiranjanraj/freshbasket/pkg/workerpool"
)

func TestParseShoppingList(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "enumeration markers stripped",
			text: "1. Tomatoes\n- Milk\n* Bread\n• Eggs",
			want: []string{"Tomatoes", "Milk", "Bread", "Eggs"},
		},
		{
			name: "quantity expressions stripped",
			text: "2kg Tomatoes\nMilk 1L\n3 packets Chips\nRice 5 kg",
			want: []string{"Tomatoes", "Milk", "Chips", "Rice"},
		},
		{
			name: "whitespace collapsed",
			text: "Fresh    Cream   Milk",
			want: []string{"Fresh Cream Milk"},
		},
		{
			name: "noise fragments discarded",
			text: "ok\nab\nEggs\n\n  ",
			want: []string{"Eggs"},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.ParseShoppingList(tt.text))
		})
	}
}

func matcherFixture(t *testing.T) (*services.ShoppingListService, *workerpool.Pool, *memState) {
	t.Helper()
	state := newMemState()
	state.products[1] = models.Product{
		ProductID: 1, ProductName: "Fresh Tomatoes", Price: 40,
		Category: "Vegetables", StockQuantity: 50,
	}
	state.products[2] = models.Product{
		ProductID: 2, ProductName: "Full Cream Milk", Price: 60,
		Category: "Dairy", Brand: "Amul", StockQuantity: 30,
	}
	state.products[3] = models.Product{
		ProductID: 3, ProductName: "Brown Bread", Price: 35,
		Category: "Bakery", StockQuantity: 20,
	}

	pool := workerpool.New(4)
	t.Cleanup(pool.Shutdown)
	return services.NewShoppingListService(&fakeCatalog{state}, pool), pool, state
}

func TestMatchShoppingList_Scenario(t *testing.T) {
	svc, _, _ := matcherFixture(t)

	outcome, err := svc.MatchShoppingList(context.Background(), "2kg Tomatoes\n- Milk 1L")
	require.NoError(t, err)

	require.Len(t, outcome.Matched, 2)
	assert.Empty(t, outcome.Unmatched)

	assert.Equal(t, "Tomatoes", outcome.Matched[0].MatchedText)
	assert.Equal(t, uint(1), outcome.Matched[0].ProductID)
	assert.GreaterOrEqual(t, outcome.Matched[0].Confidence, 60.0)

	assert.Equal(t, "Milk", outcome.Matched[1].MatchedText)
	assert.Equal(t, uint(2), outcome.Matched[1].ProductID)
	assert.GreaterOrEqual(t, outcome.Matched[1].Confidence, 60.0)
}

func TestMatchShoppingList_BelowThresholdUnmatched(t *testing.T) {
	svc, _, _ := matcherFixture(t)

	outcome, err := svc.MatchShoppingList(context.Background(), "Motor Oil")
	require.NoError(t, err)

	assert.Empty(t, outcome.Matched)
	assert.Equal(t, []string{"Motor Oil"}, outcome.Unmatched)
}

func TestMatchShoppingList_Deterministic(t *testing.T) {
	svc, _, _ := matcherFixture(t)
	text := "Tomatoes\nMilk\nBread\nSomething Unknown"

	first, err := svc.MatchShoppingList(context.Background(), text)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := svc.MatchShoppingList(context.Background(), text)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestMatchShoppingList_TieKeepsLowestID(t *testing.T) {
	state := newMemState()
	// Identical names: both score the same, the lower id must win.
	state.products[5] = models.Product{ProductID: 5, ProductName: "Basmati Rice"}
	state.products[9] = models.Product{ProductID: 9, ProductName: "Basmati Rice"}

	svc := services.NewShoppingListService(&fakeCatalog{state}, nil)

	outcome, err := svc.MatchShoppingList(context.Background(), "Basmati Rice")
	require.NoError(t, err)
	require.Len(t, outcome.Matched, 1)
	assert.Equal(t, uint(5), outcome.Matched[0].ProductID)
}

func TestMatchShoppingList_BrandBonusUnclamped(t *testing.T) {
	state := newMemState()
	state.products[1] = models.Product{
		ProductID: 1, ProductName: "Amul Butter", Brand: "Amul", Category: "Dairy",
	}

	svc := services.NewShoppingListService(&fakeCatalog{state}, nil)

	// Exact name plus brand substring: 1.0 + 0.10 → confidence 110.
	outcome, err := svc.MatchShoppingList(context.Background(), "Amul Butter")
	require.NoError(t, err)
	require.Len(t, outcome.Matched, 1)
	assert.Equal(t, 110.0, outcome.Matched[0].Confidence)
}

func TestMatchShoppingList_EmptyTextMatchesNothing(t *testing.T) {
	svc, _, _ := matcherFixture(t)

	outcome, err := svc.MatchShoppingList(context.Background(), "  \n\n ")
	require.NoError(t, err)
	assert.Empty(t, outcome.Matched)
	assert.Empty(t, outcome.Unmatched)
}
