//go:build staticcell_cachelinesize_256

package opt

// CacheLineSize_ is forced via the staticcell_cachelinesize_256 build tag.
const CacheLineSize_ = 256
