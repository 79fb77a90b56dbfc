package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Casa Azul", "casa-azul"},
		{"accents stripped", "Hostal Cañón", "hostal-canon"},
		{"portuguese", "Pousada São João", "pousada-sao-joao"},
		{"punctuation collapsed", "The  Backpacker's  Place!", "the-backpacker-s-place"},
		{"already a slug", "casa-azul", "casa-azul"},
		{"leading and trailing junk", "  --Casa--  ", "casa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestSlugifyLength(t *testing.T) {
	long := strings.Repeat("casa ", 40)
	slug := Slugify(long)
	assert.LessOrEqual(t, len(slug), 64)
	assert.NotEqual(t, "-", slug[len(slug)-1:])
}
