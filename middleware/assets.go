package middleware

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"sync"

	"cfa_site/services/logger"

	"go.uber.org/zap"
)

// Files under the static dir whose URLs carry a content hash
const (
	StylesheetFile = "css/site.css"
	FaviconFile    = "images/favicon.svg"
)

var (
	assetVersions     = map[string]string{}
	assetVersionsMu   sync.RWMutex
	assetVersionsOnce sync.Once
)

// InitAssetVersions hashes the long-lived static files once at startup.
// These never change between deploys, unlike the per-render partner logo token.
func InitAssetVersions(ctx context.Context, staticDir string) {
	assetVersionsOnce.Do(func() {
		computeAssetVersions(ctx, staticDir)
	})
}

func computeAssetVersions(ctx context.Context, staticDir string) {
	assetVersionsMu.Lock()
	defer assetVersionsMu.Unlock()

	for _, file := range []string{StylesheetFile, FaviconFile} {
		version := computeFileHash(ctx, filepath.Join(staticDir, file))
		if version == "" {
			version = "1"
		}
		assetVersions[file] = version
		logger.Info(ctx, "asset version initialized", zap.String("file", file), zap.String("version", version))
	}
}

// computeFileHash returns the first 8 characters of the MD5 hash of a file
func computeFileHash(ctx context.Context, path string) string {
	file, err := os.Open(path)
	if err != nil {
		logger.Warn(ctx, "failed to open file for hashing", zap.String("path", path), zap.Error(err))
		return ""
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		logger.Warn(ctx, "failed to hash file", zap.String("path", path), zap.Error(err))
		return ""
	}

	return hex.EncodeToString(hash.Sum(nil))[:8]
}

// GetAssetVersion returns the content hash of a static file, "1" when unknown
func GetAssetVersion(ctx context.Context, file string) string {
	assetVersionsMu.RLock()
	defer assetVersionsMu.RUnlock()
	if v, ok := assetVersions[file]; ok {
		return v
	}
	return "1"
}

// GetCSSVersion returns the stylesheet version hash for cache busting
func GetCSSVersion(ctx context.Context) string {
	return GetAssetVersion(ctx, StylesheetFile)
}

// GetFaviconVersion returns the favicon version hash for cache busting
func GetFaviconVersion(ctx context.Context) string {
	return GetAssetVersion(ctx, FaviconFile)
}
