package pagination

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// ErrInvalidToken is returned for tokens that cannot be decoded or no longer match an item.
var ErrInvalidToken = errors.New("invalid pagination token")

// EncodeToken creates a base64 encoded token from the creation time and id of the last item on a page.
func EncodeToken(createdAt time.Time, id string) string {
	tokenStr := fmt.Sprintf("%s|%s", createdAt.UTC().Format(timeFormat), id)
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses the base64 encoded token back into creation time and id.
func DecodeToken(token string) (time.Time, string, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w (base64 decode): %v", ErrInvalidToken, err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 || parts[1] == "" {
		return time.Time{}, "", fmt.Errorf("%w (split)", ErrInvalidToken)
	}

	createdAt, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w (created_at parse): %v", ErrInvalidToken, err)
	}
	return createdAt, parts[1], nil
}

// KeyFunc returns the creation time and id that identify an item.
type KeyFunc[T any] func(item T) (time.Time, string)

// Page returns up to limit items following the item named by token, in slice order, and the
// token for the next page (nil on the last page). A limit of zero or less returns everything
// after the token.
func Page[T any](items []T, limit int, token string, key KeyFunc[T]) ([]T, *string, error) {
	start := 0
	if token != "" {
		createdAt, id, err := DecodeToken(token)
		if err != nil {
			return nil, nil, err
		}
		start = -1
		for i, item := range items {
			t, itemID := key(item)
			if itemID == id && t.Equal(createdAt) {
				start = i + 1
				break
			}
		}
		if start < 0 {
			return nil, nil, fmt.Errorf("%w: item no longer exists", ErrInvalidToken)
		}
	}

	rest := items[start:]
	if limit <= 0 || len(rest) <= limit {
		return rest, nil, nil
	}
	page := rest[:limit]
	t, id := key(page[len(page)-1])
	next := EncodeToken(t, id)
	return page, &next, nil
}
