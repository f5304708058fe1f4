package filterquery

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i-iangurazov/roksosh/models"
)

func floatPtr(v float64) *float64 { return &v }

func TestDecode(t *testing.T) {
	values, err := url.ParseQuery("categoryId=cat1&colorId=c1&colorId=c2&sizeId=s1&brand=nike&brand=adidas&priceSort=asc&minPrice=3000&maxPrice=6000&priceRange=3k-6k&q=shoe")
	require.NoError(t, err)

	q := Decode(values)

	assert.Equal(t, "cat1", q.CategoryID)
	assert.ElementsMatch(t, []string{"c1", "c2"}, q.ColorIDs)
	assert.ElementsMatch(t, []string{"s1"}, q.SizeIDs)
	assert.ElementsMatch(t, []string{"nike", "adidas"}, q.Brands)
	assert.Equal(t, "asc", q.PriceSort)
	assert.Equal(t, "3k-6k", q.PriceRange)
	require.NotNil(t, q.MinPrice)
	assert.Equal(t, 3000.0, *q.MinPrice)
	require.NotNil(t, q.MaxPrice)
	assert.Equal(t, 6000.0, *q.MaxPrice)
	assert.Equal(t, "shoe", q.SearchTerm)
}

func TestDecode_CollapsesDuplicatesAndBadValues(t *testing.T) {
	values, err := url.ParseQuery("colorId=c1&colorId=c1&colorId=&priceSort=sideways&limit=-3")
	require.NoError(t, err)

	q := Decode(values)

	assert.Equal(t, []string{"c1"}, q.ColorIDs)
	assert.Empty(t, q.PriceSort, "unknown sort direction is dropped")
	assert.Zero(t, q.Limit)
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		q    models.FilterQuery
	}{
		{name: "empty", q: models.FilterQuery{}},
		{
			name: "overlapping multi-valued fields",
			q: models.FilterQuery{
				CategoryID: "cat1",
				ColorIDs:   []string{"c2", "c1"},
				SizeIDs:    []string{"s1", "s3", "s2"},
				Brands:     []string{"c1", "s1"}, // same tokens as ids on purpose
				PriceSort:  "desc",
				SearchTerm: "shoe",
			},
		},
		{
			name: "named price range with bounds",
			q: models.FilterQuery{
				PriceRange: "3k-6k",
				MinPrice:   floatPtr(3000),
				MaxPrice:   floatPtr(6000),
			},
		},
		{
			name: "featured with limit",
			q:    models.FilterQuery{IsFeatured: true, Limit: 8},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(Encode(tt.q))
			require.NoError(t, err)

			got := Decode(values)

			assert.ElementsMatch(t, tt.q.ColorIDs, got.ColorIDs)
			assert.ElementsMatch(t, tt.q.SizeIDs, got.SizeIDs)
			assert.ElementsMatch(t, tt.q.Brands, got.Brands)
			got.ColorIDs, got.SizeIDs, got.Brands = nil, nil, nil
			want := tt.q
			want.ColorIDs, want.SizeIDs, want.Brands = nil, nil, nil
			assert.Equal(t, want, got)
		})
	}
}

func TestEncode_Deterministic(t *testing.T) {
	a := models.FilterQuery{ColorIDs: []string{"c2", "c1"}, Brands: []string{"b"}}
	b := models.FilterQuery{ColorIDs: []string{"c1", "c2"}, Brands: []string{"b"}}
	assert.Equal(t, Encode(a), Encode(b), "set order must not change the encoded form")
}

func TestEncodeURL(t *testing.T) {
	assert.Equal(t, "/category/cat1", EncodeURL(models.FilterQuery{}, "/category/cat1"))
	assert.Equal(t,
		"/category/cat1?colorId=c1",
		EncodeURL(models.FilterQuery{ColorIDs: []string{"c1"}}, "/category/cat1"),
	)
}

func TestToggle(t *testing.T) {
	q := models.FilterQuery{}

	q = Toggle(q, FieldColor, "c1")
	q = Toggle(q, FieldColor, "c2")
	assert.ElementsMatch(t, []string{"c1", "c2"}, q.ColorIDs)

	q = Toggle(q, FieldColor, "c1")
	assert.Equal(t, []string{"c2"}, q.ColorIDs)

	q = Toggle(q, FieldBrand, "nike")
	assert.Equal(t, []string{"nike"}, q.Brands)
}

func TestToggle_DoesNotMutateInput(t *testing.T) {
	orig := models.FilterQuery{ColorIDs: []string{"c1"}}

	_ = Toggle(orig, FieldColor, "c2")
	_ = Toggle(orig, FieldColor, "c1")

	assert.Equal(t, []string{"c1"}, orig.ColorIDs)
}

func TestSetExclusive_PriceSort(t *testing.T) {
	q := models.FilterQuery{}

	q = SetExclusive(q, FieldPriceSort, "asc")
	assert.Equal(t, "asc", q.PriceSort)

	// selecting another value replaces, never appends
	q = SetExclusive(q, FieldPriceSort, "desc")
	assert.Equal(t, "desc", q.PriceSort)

	// click again to deselect
	q = SetExclusive(q, FieldPriceSort, "desc")
	assert.Empty(t, q.PriceSort)
}

func TestSetExclusive_PriceRangeAtomic(t *testing.T) {
	q := models.FilterQuery{}

	q = SetExclusive(q, FieldPriceRange, "3k-6k")
	assert.Equal(t, "3k-6k", q.PriceRange)
	require.NotNil(t, q.MinPrice)
	assert.Equal(t, 3000.0, *q.MinPrice)
	require.NotNil(t, q.MaxPrice)
	assert.Equal(t, 6000.0, *q.MaxPrice)

	q = SetExclusive(q, FieldPriceRange, "10k-plus")
	assert.Equal(t, "10k-plus", q.PriceRange)
	require.NotNil(t, q.MinPrice)
	assert.Equal(t, 10000.0, *q.MinPrice)
	assert.Nil(t, q.MaxPrice, "open-ended range clears the max")

	// toggle-off clears the id and both bounds together
	q = SetExclusive(q, FieldPriceRange, "10k-plus")
	assert.Empty(t, q.PriceRange)
	assert.Nil(t, q.MinPrice)
	assert.Nil(t, q.MaxPrice)
}

func TestWireValues(t *testing.T) {
	q := models.FilterQuery{
		SearchTerm: "shoe",
		PriceRange: "3k-6k",
		MinPrice:   floatPtr(3000),
		MaxPrice:   floatPtr(6000),
	}

	values := WireValues(q)

	assert.Equal(t, "shoe", values.Get("searchTerm"))
	assert.Empty(t, values.Get("q"))
	assert.Empty(t, values.Get("priceRange"), "backend only understands min/max")
	assert.Equal(t, "3000", values.Get("minPrice"))
	assert.Equal(t, "6000", values.Get("maxPrice"))
}
