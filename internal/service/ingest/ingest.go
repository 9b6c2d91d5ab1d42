package ingest

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gen2brain/go-fitz"
	"github.com/schollz/progressbar/v3"

	"github.com/sandevgo/pdfchat/internal/core"
	"github.com/sandevgo/pdfchat/pkg/log"
)

// renderZoom scales page rasterization. PDF points are 72 dpi; triple zoom
// keeps small figure text legible for the vision model.
const renderZoom = 3.0

// Service turns a PDF into per-page PNG files plus embedded page documents
// in the vector store. Page images stay on local disk; only metadata and
// embeddings go to the store, keyed by the image path.
type Service struct {
	embedder core.Embedder
	pages    core.PagesRepository
	pagesDir string

	httpClient *http.Client
}

func New(embedder core.Embedder, pages core.PagesRepository, pagesDir string) *Service {
	return &Service{
		embedder:   embedder,
		pages:      pages,
		pagesDir:   pagesDir,
		httpClient: &http.Client{Timeout: 5 * time.Minute},
	}
}

// Run ingests the PDF at src, which is a local path or an http(s) URL.
// Returns the number of pages stored.
func (s *Service) Run(ctx context.Context, src string) (int, error) {
	logger := log.FromCtx(ctx)

	path := src
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		downloaded, err := s.download(ctx, src)
		if err != nil {
			return 0, fmt.Errorf("download pdf: %w", err)
		}
		defer os.Remove(downloaded)
		path = downloaded
	}

	if err := os.MkdirAll(s.pagesDir, 0o755); err != nil {
		return 0, fmt.Errorf("create pages dir: %w", err)
	}

	doc, err := fitz.New(path)
	if err != nil {
		return 0, fmt.Errorf("open pdf: %w", err)
	}
	defer doc.Close()

	total := doc.NumPage()
	logger.Info().Str("src", src).Int("pages", total).Msg("ingesting document")

	bar := progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Ingesting"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)

	docs := make([]core.PageDoc, 0, total)
	for n := 0; n < total; n++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		img, err := doc.ImageDPI(n, 72*renderZoom)
		if err != nil {
			return 0, fmt.Errorf("render page %d: %w", n+1, err)
		}

		key := filepath.Join(s.pagesDir, fmt.Sprintf("page_%03d.png", n+1))
		pageDoc, err := s.storePage(ctx, key, img, n+1)
		if err != nil {
			return 0, err
		}

		docs = append(docs, pageDoc)
		_ = bar.Add(1)
	}

	if err := s.pages.InsertPages(ctx, docs); err != nil {
		return 0, err
	}
	return len(docs), nil
}

// storePage writes the rendered page to disk and builds its embedded store
// document. The embedding input is the base64 PNG, matching what the
// multimodal embedding endpoint expects for documents.
func (s *Service) storePage(ctx context.Context, key string, img image.Image, pageNumber int) (core.PageDoc, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return core.PageDoc{}, fmt.Errorf("encode page %d: %w", pageNumber, err)
	}

	if err := os.WriteFile(key, buf.Bytes(), 0o644); err != nil {
		return core.PageDoc{}, fmt.Errorf("write page image: %w", err)
	}

	embedding, err := s.embedder.Embed(ctx, base64.StdEncoding.EncodeToString(buf.Bytes()), core.InputDocument)
	if err != nil {
		return core.PageDoc{}, fmt.Errorf("embed page %d: %w", pageNumber, err)
	}

	bounds := img.Bounds()
	return core.PageDoc{
		Key:        key,
		Width:      bounds.Dx(),
		Height:     bounds.Dy(),
		PageNumber: pageNumber,
		Embedding:  embedding,
	}, nil
}

func (s *Service) download(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", core.AppUserAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	tmp, err := os.CreateTemp("", "pdfchat-*.pdf")
	if err != nil {
		return "", err
	}
	defer tmp.Close()

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}
