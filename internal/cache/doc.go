// Pantrychef - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pantrychef

/*
Package cache provides a thread-safe, generic LRU cache with TTL expiry.

The recommendation engine uses it to memoize ranked results per query.
Keys embed the corpus snapshot version, so a reload makes every older
entry unreachable and it ages out through normal eviction.

# Usage Example

	c := cache.NewLRU[[]recommend.Result](1024, 5*time.Minute)
	c.Add("v3|egg,milk|10", results)

	if results, ok := c.Get("v3|egg,milk|10"); ok {
	    // serve cached results
	}

	stats := c.Stats()
	log.Info().Float64("hit_rate", stats.HitRate()).Msg("cache stats")

# Thread Safety

All methods take a single mutex. Get mutates recency order, so there is no
separate read lock.
*/
package cache
