// Package store holds the process-lifetime mock collections backing the site
// settings and chat endpoints. Collections are seeded eagerly in New, on a
// single goroutine, because the fixture generator's rand.Rand is not safe for
// concurrent use; after that each collection guards its slice with a mutex,
// which makes each call atomic. There is no transaction spanning calls: a
// reorder racing a delete may reference an ID that just vanished and will
// simply skip it. Nothing survives a restart and nothing here is suitable as
// a real storage layer.
package store

import "github.com/voyago/travel-admin-api/internal/fixture"

// Store aggregates every mock collection. Construct one per process (or per
// test) and pass it to the services; there is no package-level state.
type Store struct {
	PaymentAccounts *PaymentAccountStore
	Enums           *EnumStore
	Banners         *BannerStore
	Prices          *PriceStore
	SocialLinks     *SocialLinkStore
	ResetRequests   *ResetRequestStore
	Chats           *ChatStore
}

// New seeds every collection from the generator, in order, before returning.
// The generator is not retained; no store touches it after construction.
func New(gen *fixture.Generator) *Store {
	return &Store{
		PaymentAccounts: NewPaymentAccountStore(gen),
		Enums:           NewEnumStore(gen),
		Banners:         NewBannerStore(gen),
		Prices:          NewPriceStore(gen),
		SocialLinks:     NewSocialLinkStore(gen),
		ResetRequests:   NewResetRequestStore(gen),
		Chats:           NewChatStore(gen),
	}
}

// reorderByID moves the items named in orderedIDs to the front, in that
// order; unnamed items keep their prior relative order behind them. Unknown
// IDs are skipped.
func reorderByID[T any](items []T, orderedIDs []string, id func(T) string) []T {
	index := make(map[string]int, len(items))
	for i, item := range items {
		index[id(item)] = i
	}

	used := make(map[int]bool, len(orderedIDs))
	out := make([]T, 0, len(items))
	for _, wanted := range orderedIDs {
		i, ok := index[wanted]
		if !ok || used[i] {
			continue
		}
		out = append(out, items[i])
		used[i] = true
	}
	for i, item := range items {
		if !used[i] {
			out = append(out, item)
		}
	}
	return out
}
