// Package filterquery maps the storefront's filter state to and from its URL
// query-string form. Queries are value types: every helper returns an updated
// copy and never touches the caller's query.
package filterquery

import (
	"net/url"
	"sort"
	"strconv"

	"github.com/i-iangurazov/roksosh/models"
)

// Field names a toggleable filter control. Multi-valued fields accumulate a
// set; single-valued fields replace (and clear on re-select).
type Field string

const (
	FieldColor      Field = "colorId"
	FieldSize       Field = "sizeId"
	FieldBrand      Field = "brand"
	FieldPriceSort  Field = "priceSort"
	FieldPriceRange Field = "priceRange"
)

// URL parameter names. The search term travels as "q" in storefront URLs and
// as "searchTerm" on the backend wire; WireValues owns that mapping.
const (
	paramCategory   = "categoryId"
	paramColor      = "colorId"
	paramSize       = "sizeId"
	paramBrand      = "brand"
	paramPriceSort  = "priceSort"
	paramPriceRange = "priceRange"
	paramMinPrice   = "minPrice"
	paramMaxPrice   = "maxPrice"
	paramFeatured   = "isFeatured"
	paramLimit      = "limit"
	paramSearch     = "q"
	wireSearch      = "searchTerm"
)

// Decode builds a FilterQuery from URL query parameters. Repeated keys feed
// the multi-valued sets; duplicates are collapsed.
func Decode(values url.Values) models.FilterQuery {
	q := models.FilterQuery{
		CategoryID: values.Get(paramCategory),
		ColorIDs:   dedupe(values[paramColor]),
		SizeIDs:    dedupe(values[paramSize]),
		Brands:     dedupe(values[paramBrand]),
		PriceRange: values.Get(paramPriceRange),
		SearchTerm: values.Get(paramSearch),
	}

	if sortDir := values.Get(paramPriceSort); sortDir == "asc" || sortDir == "desc" {
		q.PriceSort = sortDir
	}
	if v, err := strconv.ParseFloat(values.Get(paramMinPrice), 64); err == nil {
		q.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(values.Get(paramMaxPrice), 64); err == nil {
		q.MaxPrice = &v
	}
	if v, err := strconv.ParseBool(values.Get(paramFeatured)); err == nil && v {
		q.IsFeatured = true
	}
	if v, err := strconv.Atoi(values.Get(paramLimit)); err == nil && v > 0 {
		q.Limit = v
	}
	return q
}

// Values renders the query as URL parameters, multi-valued fields as repeated
// keys. Sets are emitted sorted so equal queries produce equal strings.
func Values(q models.FilterQuery) url.Values {
	values := url.Values{}
	setNonEmpty(values, paramCategory, q.CategoryID)
	for _, id := range sortedSet(q.ColorIDs) {
		values.Add(paramColor, id)
	}
	for _, id := range sortedSet(q.SizeIDs) {
		values.Add(paramSize, id)
	}
	for _, b := range sortedSet(q.Brands) {
		values.Add(paramBrand, b)
	}
	setNonEmpty(values, paramPriceSort, q.PriceSort)
	setNonEmpty(values, paramPriceRange, q.PriceRange)
	if q.MinPrice != nil {
		values.Set(paramMinPrice, strconv.FormatFloat(*q.MinPrice, 'f', -1, 64))
	}
	if q.MaxPrice != nil {
		values.Set(paramMaxPrice, strconv.FormatFloat(*q.MaxPrice, 'f', -1, 64))
	}
	if q.IsFeatured {
		values.Set(paramFeatured, "true")
	}
	if q.Limit > 0 {
		values.Set(paramLimit, strconv.Itoa(q.Limit))
	}
	setNonEmpty(values, paramSearch, q.SearchTerm)
	return values
}

// Encode renders the query-string form (no leading "?").
func Encode(q models.FilterQuery) string {
	return Values(q).Encode()
}

// EncodeURL appends the query to a base URL.
func EncodeURL(q models.FilterQuery, baseURL string) string {
	encoded := Encode(q)
	if encoded == "" {
		return baseURL
	}
	return baseURL + "?" + encoded
}

// WireValues renders the query for the backend products endpoint, which names
// the search parameter differently from storefront URLs.
func WireValues(q models.FilterQuery) url.Values {
	values := Values(q)
	values.Del(paramPriceRange) // backend only understands min/max
	if term := values.Get(paramSearch); term != "" {
		values.Del(paramSearch)
		values.Set(wireSearch, term)
	}
	return values
}

// Toggle flips membership of id in a multi-valued field's set.
func Toggle(q models.FilterQuery, field Field, id string) models.FilterQuery {
	out := clone(q)
	switch field {
	case FieldColor:
		out.ColorIDs = toggleValue(out.ColorIDs, id)
	case FieldSize:
		out.SizeIDs = toggleValue(out.SizeIDs, id)
	case FieldBrand:
		out.Brands = toggleValue(out.Brands, id)
	}
	return out
}

// SetExclusive selects id on a single-valued field, replacing any previous
// value. Selecting the already-selected value clears the field. A named price
// range pins MinPrice/MaxPrice together with the range id; clearing the range
// clears all three.
func SetExclusive(q models.FilterQuery, field Field, id string) models.FilterQuery {
	out := clone(q)
	switch field {
	case FieldPriceSort:
		if out.PriceSort == id {
			out.PriceSort = ""
		} else {
			out.PriceSort = id
		}
	case FieldPriceRange:
		if out.PriceRange == id {
			out.PriceRange = ""
			out.MinPrice, out.MaxPrice = nil, nil
			break
		}
		r, ok := models.PriceRangeByID(id)
		if !ok {
			out.PriceRange = ""
			out.MinPrice, out.MaxPrice = nil, nil
			break
		}
		out.PriceRange = r.ID
		out.MinPrice = copyFloat(r.Min)
		out.MaxPrice = copyFloat(r.Max)
	}
	return out
}

func clone(q models.FilterQuery) models.FilterQuery {
	out := q
	out.ColorIDs = append([]string(nil), q.ColorIDs...)
	out.SizeIDs = append([]string(nil), q.SizeIDs...)
	out.Brands = append([]string(nil), q.Brands...)
	out.MinPrice = copyFloat(q.MinPrice)
	out.MaxPrice = copyFloat(q.MaxPrice)
	return out
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func toggleValue(set []string, id string) []string {
	for i, v := range set {
		if v == id {
			return append(set[:i], set[i+1:]...)
		}
	}
	return append(set, id)
}

func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func sortedSet(values []string) []string {
	out := dedupe(values)
	sort.Strings(out)
	return out
}

func setNonEmpty(values url.Values, key, value string) {
	if value != "" {
		values.Set(key, value)
	}
}
