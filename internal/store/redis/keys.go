package redis

import "strings"

const (
	// KeyPrefix namespaces every key written by the store
	KeyPrefix = "sitenav:"
	// KeyCurrent holds the digest of the published snapshot
	KeyCurrent = KeyPrefix + "site:current"
	// KeyRevisions is a sorted set of digests scored by load time
	KeyRevisions = KeyPrefix + "site:revisions"
	// KeyPrefixRevision is the prefix for stored snapshots
	KeyPrefixRevision = KeyPrefix + "site:rev:"
	// KeyPrefixCache is the prefix for cached sidebar resolutions
	KeyPrefixCache = KeyPrefix + "cache:sidebar:"
)

// RevisionKey returns the Redis key for a snapshot by digest
func RevisionKey(digest string) string {
	return KeyPrefixRevision + digest
}

// CacheKey returns the Redis key for a cached resolution of pagePath under
// the snapshot with the given digest.
func CacheKey(digest, pagePath string) string {
	return KeyPrefixCache + digest + ":" + normalizeCachePath(pagePath)
}

// normalizeCachePath makes "/a/b", "a/b" and "/a/b?x#y" share a cache entry.
func normalizeCachePath(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	return "/" + strings.TrimLeft(strings.TrimSpace(p), "/")
}
