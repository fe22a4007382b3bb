// Package tmdb provides a client for The Movie Database (TMDB) search API.
//
// The client exposes three operations: Validate, a single bounded health
// check that classifies the configured API key; Search, one page of movie
// search results normalized into a fixed display shape; and poster URL
// resolution backed by the lazily-fetched configuration endpoint.
//
// Failures are reported as *apierror.StatusError for non-2xx responses and
// as raw transport errors otherwise, so callers can classify them into
// user-facing categories with the apierror package. The client never retries.
package tmdb
