package framework

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore(t *testing.T) {
	s := NewStore()
	assert.False(t, s.Has("token.supplier"))
	assert.Equal(t, "", s.Value("token.supplier"))

	s.Set("token.supplier", "abc")
	s.Set("token.financier", "")
	v, ok := s.Get("token.supplier")
	assert.True(t, ok)
	assert.Equal(t, "abc", v)
	assert.False(t, s.Has("token.financier"))

	assert.Equal(t, []Key{"token.financier", "receivable.id"},
		s.Missing("token.supplier", "token.financier", "receivable.id"))
	assert.Nil(t, s.Missing("token.supplier"))
	assert.Equal(t, []Key{"token.supplier"}, s.Keys())
}
