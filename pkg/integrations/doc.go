// Package integrations holds the HTTP plumbing shared by remote sources:
// the tweet oEmbed endpoint ([twitter]) and remotely hosted background
// pictures (see package assets).
//
// [Client] adds caching through [cache.Cache], retry with backoff for
// transient failures, default headers, and a bounded body size.
//
//	c := integrations.NewClient(store, "oembed", cache.TTLHTTP, nil)
//	var out payload
//	err := c.Cached(ctx, key, false, &out, func() error {
//	    return c.Get(ctx, endpoint, &out)
//	})
//
// Errors: [ErrNotFound] for 404, [ErrNetwork] (wrapped as
// [cache.RetryableError] for 5xx and transport failures) and
// [errors.RateLimitedError] for 429.
package integrations
