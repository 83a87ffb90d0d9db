// Package export renders the site once to files for static hosting and, on
// request, prints a PDF brochure and publishes the files to storage.
package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"cfa_site/content"
	"cfa_site/handlers"
	"cfa_site/services"
	"cfa_site/services/i18n"
	"cfa_site/services/logger"
	"cfa_site/templates/pages"

	"go.uber.org/zap"
	h "maragu.dev/gomponents/html"
)

const (
	IndexFile    = "index.html"
	SitemapFile  = "sitemap.xml"
	RobotsFile   = "robots.txt"
	BrochureFile = "cfa-brochure.pdf"
)

// PDFFunc prints an HTML document to PDF
type PDFFunc func(ctx context.Context, html string, opts services.PDFOptions) ([]byte, error)

type Options struct {
	OutDir string
	AppURL string
	Locale string
	// Check validates the content tables before rendering
	Check      bool
	PDF        bool
	PDFOptions services.PDFOptions
	Upload     bool
	// StaticDir, when set, is published with the export under its own keys so
	// storage URLs of the page assets resolve
	StaticDir string
}

type Result struct {
	Files    []string
	Uploaded []*services.StorageResult
	// Unchanged lists keys whose stored copy already matched
	Unchanged []string
	// Pruned lists keys removed from storage, like a brochure from an earlier export
	Pruned []string
}

type file struct {
	name string
	data []byte
}

type Exporter struct {
	Site    *handlers.Site
	Storage services.StorageProvider
	PDF     PDFFunc
}

func New(site *handlers.Site, storage services.StorageProvider) *Exporter {
	return &Exporter{Site: site, Storage: storage, PDF: services.GeneratePDF}
}

// Run writes the export into opts.OutDir and returns the written paths in order
func (x *Exporter) Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Check {
		if err := content.Validate(x.Site.Content); err != nil {
			return nil, fmt.Errorf("content check failed: %w", err)
		}
	}

	lang := opts.Locale
	if lang == "" {
		lang = i18n.DefaultLang
	}
	renderCtx := i18n.WithLocale(ctx, lang)

	var page bytes.Buffer
	if err := pages.Landing(x.Site.Props(opts.AppURL, lang)).Render(renderCtx, &page); err != nil {
		return nil, fmt.Errorf("render landing page: %w", err)
	}

	var sitemap bytes.Buffer
	if err := handlers.WriteSitemap(&sitemap, opts.AppURL); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(opts.OutDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	files := []file{
		{IndexFile, page.Bytes()},
		{SitemapFile, sitemap.Bytes()},
		{RobotsFile, []byte(handlers.RobotsTxt(opts.AppURL))},
	}

	if opts.PDF {
		doc, err := pdfDocument(page.String(), opts.AppURL)
		if err != nil {
			return nil, err
		}
		pdf, err := x.PDF(ctx, doc, opts.PDFOptions)
		if err != nil {
			return nil, err
		}
		files = append(files, file{BrochureFile, pdf})
	}

	result := &Result{}
	for _, f := range files {
		path := filepath.Join(opts.OutDir, f.name)
		if err := os.WriteFile(path, f.data, 0644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", f.name, err)
		}
		result.Files = append(result.Files, path)
		logger.Info(ctx, "exported file", zap.String("path", path), zap.Int("bytes", len(f.data)))
	}

	if !opts.Upload {
		return result, nil
	}
	if x.Storage == nil || !x.Storage.IsConfigured() {
		return nil, fmt.Errorf("upload requested but no storage is configured")
	}

	uploads := make([]file, 0, len(files))
	for _, f := range files {
		uploads = append(uploads, file{services.ExportKey(f.name), f.data})
	}
	if opts.StaticDir != "" {
		assets, err := staticFiles(opts.StaticDir)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, assets...)
	}

	for _, f := range uploads {
		if x.stored(ctx, f.name, f.data) {
			result.Unchanged = append(result.Unchanged, f.name)
			logger.Debug(ctx, "skipped unchanged upload", zap.String("key", f.name))
			continue
		}
		uploaded, err := x.Storage.UploadReader(ctx, bytes.NewReader(f.data), f.name, services.ContentTypeFor(f.name), int64(len(f.data)))
		if err != nil {
			return nil, fmt.Errorf("failed to upload %s: %w", f.name, err)
		}
		result.Uploaded = append(result.Uploaded, uploaded)
		logger.Info(ctx, "uploaded export", zap.String("key", f.name), zap.String("url", uploaded.URL))
	}

	// a brochure left from an earlier export would otherwise stay published
	if !opts.PDF {
		key := services.ExportKey(BrochureFile)
		if x.exists(ctx, key) {
			if err := x.Storage.Delete(ctx, key); err != nil {
				return nil, fmt.Errorf("failed to prune %s: %w", key, err)
			}
			result.Pruned = append(result.Pruned, key)
			logger.Info(ctx, "pruned stale export", zap.String("key", key))
		}
	}

	return result, nil
}

// stored reports whether storage already holds exactly data under key
func (x *Exporter) stored(ctx context.Context, key string, data []byte) bool {
	rc, _, err := x.Storage.Get(ctx, key)
	if err != nil {
		return false
	}
	defer rc.Close()

	current, err := io.ReadAll(rc)
	if err != nil {
		return false
	}
	return bytes.Equal(current, data)
}

func (x *Exporter) exists(ctx context.Context, key string) bool {
	rc, _, err := x.Storage.Get(ctx, key)
	if err != nil {
		return false
	}
	rc.Close()
	return true
}

// staticFiles reads every asset under dir, keyed by its slash separated path.
// Dot files and the export folder itself are skipped.
func staticFiles(dir string) ([]file, error) {
	var files []file
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") || (d.IsDir() && rel == services.ExportPrefix) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		files = append(files, file{filepath.ToSlash(rel), data})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read static directory %s: %w", dir, err)
	}
	return files, nil
}

// pdfDocument prepares the page for printing from about:blank: a base element
// makes the root-relative asset URLs resolve against appURL.
func pdfDocument(page, appURL string) (string, error) {
	if appURL == "" {
		return "", fmt.Errorf("printing the brochure needs the app URL to resolve page assets")
	}
	i := strings.Index(page, "<head>")
	if i < 0 {
		return "", fmt.Errorf("rendered page has no head element")
	}
	i += len("<head>")

	var base strings.Builder
	if err := h.Base(h.Href(strings.TrimSuffix(appURL, "/")+"/")).Render(&base); err != nil {
		return "", err
	}
	return page[:i] + base.String() + page[i:], nil
}
