package services

import (
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Versioner issues the token appended to asset URLs that must never be served
// from a stale cache.
type Versioner interface {
	Version() string
}

// ClockVersioner returns the current Unix time in milliseconds. Tokens are
// strictly increasing: a call within the same millisecond as the previous one
// yields previous+1.
type ClockVersioner struct {
	Now  func() time.Time
	last atomic.Int64
}

// NewClockVersioner returns a versioner backed by the wall clock
func NewClockVersioner() *ClockVersioner {
	return &ClockVersioner{Now: time.Now}
}

func (v *ClockVersioner) Version() string {
	now := time.Now
	if v.Now != nil {
		now = v.Now
	}
	ms := now().UnixMilli()
	for {
		last := v.last.Load()
		next := ms
		if next <= last {
			next = last + 1
		}
		if v.last.CompareAndSwap(last, next) {
			return strconv.FormatInt(next, 10)
		}
	}
}

// UUIDVersioner returns a random UUID per call
type UUIDVersioner struct{}

func (UUIDVersioner) Version() string {
	return uuid.NewString()
}

// StaticVersioner always returns the same token
type StaticVersioner string

func (v StaticVersioner) Version() string {
	return string(v)
}

// NewVersioner maps the ASSET_VERSIONER setting to an implementation
func NewVersioner(kind string) Versioner {
	switch strings.ToLower(kind) {
	case "uuid":
		return UUIDVersioner{}
	default:
		return NewClockVersioner()
	}
}

// AssetResolver turns storage keys into URLs the browser can fetch
type AssetResolver struct {
	storage   StorageProvider
	versioner Versioner
}

func NewAssetResolver(storage StorageProvider, versioner Versioner) *AssetResolver {
	return &AssetResolver{storage: storage, versioner: versioner}
}

// URL returns the public URL of key
func (a *AssetResolver) URL(key string) string {
	return a.storage.GetPublicURL(key)
}

// BustedURL returns the public URL of key with a fresh version token. Every
// call asks the versioner again.
func (a *AssetResolver) BustedURL(key string) string {
	return AppendVersion(a.URL(key), a.versioner.Version())
}

// AppendVersion adds a v query parameter to rawURL
func AppendVersion(rawURL, version string) string {
	sep := "?"
	if strings.Contains(rawURL, "?") {
		sep = "&"
	}
	return rawURL + sep + "v=" + version
}
