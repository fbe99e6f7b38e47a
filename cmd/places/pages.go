package main

import (
	"context"
	"strings"
	"time"
)

// pageTokenDelay is how long a next_page_token takes to become valid.
var pageTokenDelay = 2 * time.Second

// followPages fetches up to limit pages starting with first, stopping early
// when a page carries no token.
func followPages[T any](ctx context.Context, limit int, first T, tokenOf func(T) string, fetch func(context.Context, string) (T, error)) ([]T, error) {
	bodies := []T{first}
	current := first
	for len(bodies) < limit {
		token := tokenOf(current)
		if token == "" {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(pageTokenDelay):
		}

		next, err := fetch(ctx, token)
		if err != nil {
			return nil, err
		}
		bodies = append(bodies, next)
		current = next
	}
	return bodies, nil
}

func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
