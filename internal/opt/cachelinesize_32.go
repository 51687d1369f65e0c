//go:build staticcell_cachelinesize_32

package opt

// CacheLineSize_ is forced via the staticcell_cachelinesize_32 build tag.
const CacheLineSize_ = 32
