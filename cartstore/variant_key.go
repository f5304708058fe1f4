package cartstore

import "net/url"

// noneToken marks an axis with no selected variant. Real identifiers are
// percent-escaped before joining, and query escaping never emits '*' or ':',
// so the token and the separator cannot collide with any real id — including
// an id literally named "none" or "*".
const noneToken = "*"

// Resolve derives the cart line identity for a (product, color, size)
// combination. Deterministic and injective over distinct triples.
func Resolve(productID, colorID, sizeID string) string {
	return url.QueryEscape(productID) + ":" + axisToken(colorID) + ":" + axisToken(sizeID)
}

func axisToken(id string) string {
	if id == "" {
		return noneToken
	}
	return url.QueryEscape(id)
}
