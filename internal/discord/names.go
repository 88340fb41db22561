package discord

import (
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/ScoreBot_Go/internal/logger"
)

// UserLookup fetches a Discord user by ID
type UserLookup func(userID string) (*discordgo.User, error)

// NameResolver maps player handles (Discord user IDs) to display names,
// caching lookups with time-based expiration
type NameResolver struct {
	lookup UserLookup
	cache  *expirable.LRU[string, string]
}

// NewNameResolver creates a resolver caching up to size names for ttl
func NewNameResolver(lookup UserLookup, size int, ttl time.Duration) *NameResolver {
	return &NameResolver{
		lookup: lookup,
		cache:  expirable.NewLRU[string, string](size, nil, ttl),
	}
}

// Name returns the display name of handle. Failed lookups fall back to the
// handle itself and are not cached.
func (r *NameResolver) Name(handle string) string {
	if name, ok := r.cache.Get(handle); ok {
		return name
	}

	u, err := r.lookup(handle)
	if err != nil || u == nil {
		logger.Warn(LogMsgNameLookupFailed, "handle", handle, "error", err)
		return handle
	}

	name := displayName(u)
	r.cache.Add(handle, name)
	return name
}

// Invalidate forgets the cached name of handle
func (r *NameResolver) Invalidate(handle string) {
	r.cache.Remove(handle)
}

func displayName(u *discordgo.User) string {
	if u.GlobalName != "" {
		return u.GlobalName
	}
	return u.Username
}
