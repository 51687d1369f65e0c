//go:build staticcell_cachelinesize_128

package opt

// CacheLineSize_ is forced via the staticcell_cachelinesize_128 build tag.
const CacheLineSize_ = 128
