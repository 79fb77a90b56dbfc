package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeQuery(t *testing.T) {
	assert.Equal(t, "canon", NormalizeQuery("  Cañón "))
	assert.Equal(t, "sao joao", NormalizeQuery("São João"))
	assert.Equal(t, "casa azul", NormalizeQuery("CASA AZUL"))
	assert.Equal(t, "", NormalizeQuery("   "))
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("casa", "casa"))
	assert.Equal(t, 1.0, Similarity("", ""))
	assert.InDelta(t, 0.75, Similarity("casa", "cama"), 0.001)
	assert.Less(t, Similarity("casa", "zzzz"), 0.3)
}
