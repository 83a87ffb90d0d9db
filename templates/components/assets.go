package components

// AssetURLs resolves storage keys to browser URLs.
// BustedURL must return a freshly versioned URL on every call.
type AssetURLs interface {
	URL(key string) string
	BustedURL(key string) string
}
