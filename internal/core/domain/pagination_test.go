package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequestClamp(t *testing.T) {
	tests := []struct {
		name     string
		in       PageRequest
		wantPage int
		wantSize int
	}{
		{"negative page resets to zero", PageRequest{Page: -3, Size: 10}, 0, 10},
		{"zero size falls back to default", PageRequest{Page: 2, Size: 0}, 2, DefaultPageSize},
		{"negative size falls back to default", PageRequest{Page: 0, Size: -1}, 0, DefaultPageSize},
		{"oversized page size falls back to default", PageRequest{Page: 0, Size: MaxPageSize + 1}, 0, DefaultPageSize},
		{"max size is allowed", PageRequest{Page: 0, Size: MaxPageSize}, 0, MaxPageSize},
		{"valid request unchanged", PageRequest{Page: 4, Size: 25}, 4, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Clamp()
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantSize, got.Size)
		})
	}
}

func TestPageRequestOffset_IsZeroBased(t *testing.T) {
	p := PageRequest{Page: 0, Size: 20}
	assert.Equal(t, 0, p.Offset())

	p = PageRequest{Page: 3, Size: 20}
	assert.Equal(t, 60, p.Offset())
	assert.Equal(t, 20, p.Limit())
}
