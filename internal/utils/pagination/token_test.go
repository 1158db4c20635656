package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	id string
	at time.Time
}

func itemKey(i item) (time.Time, string) { return i.at, i.id }

func TestEncodeDecodeToken(t *testing.T) {
	createdAt := time.Date(2023, 5, 15, 14, 30, 45, 123000000, time.UTC)

	token := EncodeToken(createdAt, "rec-1")
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedAt, decodedID, err := DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, createdAt.Equal(decodedAt))
	assert.Equal(t, "rec-1", decodedID)
}

func TestDecodeTokenError(t *testing.T) {
	_, _, err := DecodeToken("this is not base64!")
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Contains(t, err.Error(), "base64 decode")

	noSeparator := base64.URLEncoding.EncodeToString([]byte("2023-05-15T00:00:00Z"))
	_, _, err = DecodeToken(noSeparator)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Contains(t, err.Error(), "split")

	badDate := base64.URLEncoding.EncodeToString([]byte("notadate|rec-1"))
	_, _, err = DecodeToken(badDate)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Contains(t, err.Error(), "created_at parse")
}

func TestPage(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	items := []item{
		{"a", base}, {"b", base}, {"c", base.Add(time.Second)}, {"d", base.Add(2 * time.Second)}, {"e", base.Add(3 * time.Second)},
	}

	page, next, err := Page(items, 2, "", itemKey)
	require.NoError(t, err)
	assert.Equal(t, items[:2], page)
	require.NotNil(t, next)

	page, next, err = Page(items, 2, *next, itemKey)
	require.NoError(t, err)
	assert.Equal(t, items[2:4], page)
	require.NotNil(t, next)

	page, next, err = Page(items, 2, *next, itemKey)
	require.NoError(t, err)
	assert.Equal(t, items[4:], page)
	assert.Nil(t, next)
}

func TestPage_NoLimitReturnsEverything(t *testing.T) {
	items := []item{{"a", time.Unix(1, 0)}, {"b", time.Unix(2, 0)}}

	page, next, err := Page(items, 0, "", itemKey)
	require.NoError(t, err)
	assert.Equal(t, items, page)
	assert.Nil(t, next)
}

func TestPage_StaleToken(t *testing.T) {
	items := []item{{"a", time.Unix(1, 0)}}

	_, _, err := Page(items, 1, EncodeToken(time.Unix(1, 0), "gone"), itemKey)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
