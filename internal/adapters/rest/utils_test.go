package rest

import (
	"net/url"
	"testing"

	"oglasnik-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptionalFloat(t *testing.T) {
	q := url.Values{"price": {" 12.5 "}, "bad": {"x"}, "empty": {"  "}}

	v, err := parseOptionalFloat(q, "price")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, 12.5, *v)

	v, err = parseOptionalFloat(q, "empty")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = parseOptionalFloat(q, "missing")
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = parseOptionalFloat(q, "bad")
	assert.Error(t, err)
}

func TestParsePageRequest(t *testing.T) {
	q := url.Values{"page": {"3"}, "size": {"50"}, "sort": {" price "}, "order": {"DESC"}}

	p := parsePageRequest(q)

	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 50, p.Size)
	assert.Equal(t, "price", p.SortField)
	assert.True(t, p.SortDescending)
}

func TestParsePageRequest_DefaultsAndClamping(t *testing.T) {
	p := parsePageRequest(url.Values{})
	assert.Equal(t, 0, p.Page)
	assert.Equal(t, domain.DefaultPageSize, p.Size)
	assert.False(t, p.SortDescending)

	p = parsePageRequest(url.Values{"page": {"-2"}, "size": {"9999"}})
	assert.Equal(t, 0, p.Page)
	assert.Equal(t, domain.DefaultPageSize, p.Size)
}
