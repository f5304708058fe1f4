package models

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSizeRank(t *testing.T) {
	values := []string{"XL", "m", "XXS", "44", "s"}
	sort.Slice(values, func(i, j int) bool {
		return SizeRank(values[i]) < SizeRank(values[j])
	})
	assert.Equal(t, []string{"XXS", "s", "m", "XL", "44"}, values)
}
