package ingest

import (
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandevgo/pdfchat/internal/core"
)

type mockEmbedder struct {
	embedFunc func(ctx context.Context, input, inputType string) ([]float64, error)
}

func (m *mockEmbedder) Embed(ctx context.Context, input, inputType string) ([]float64, error) {
	return m.embedFunc(ctx, input, inputType)
}

type mockPagesRepo struct {
	inserted []core.PageDoc
}

func (m *mockPagesRepo) InsertPages(ctx context.Context, docs []core.PageDoc) error {
	m.inserted = append(m.inserted, docs...)
	return nil
}

func (m *mockPagesRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.inserted)), nil
}

func testImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.White)
	return img
}

func TestStorePageWritesImageAndEmbeds(t *testing.T) {
	dir := t.TempDir()
	key := filepath.Join(dir, "page_001.png")

	var gotInput, gotType string
	embedder := &mockEmbedder{
		embedFunc: func(ctx context.Context, input, inputType string) ([]float64, error) {
			gotInput = input
			gotType = inputType
			return []float64{0.1, 0.2}, nil
		},
	}

	s := New(embedder, &mockPagesRepo{}, dir)

	doc, err := s.storePage(context.Background(), key, testImage(30, 40), 1)
	require.NoError(t, err)

	assert.Equal(t, key, doc.Key)
	assert.Equal(t, 30, doc.Width)
	assert.Equal(t, 40, doc.Height)
	assert.Equal(t, 1, doc.PageNumber)
	assert.Equal(t, []float64{0.1, 0.2}, doc.Embedding)

	// The embedding input is the base64 of exactly the bytes on disk.
	assert.Equal(t, core.InputDocument, gotType)
	onDisk, err := os.ReadFile(key)
	require.NoError(t, err)
	assert.Equal(t, base64.StdEncoding.EncodeToString(onDisk), gotInput)
}

func TestStorePageFailsWhenEmbeddingFails(t *testing.T) {
	dir := t.TempDir()
	embedder := &mockEmbedder{
		embedFunc: func(ctx context.Context, input, inputType string) ([]float64, error) {
			return nil, errors.New("endpoint down")
		},
	}

	s := New(embedder, &mockPagesRepo{}, dir)

	_, err := s.storePage(context.Background(), filepath.Join(dir, "page_001.png"), testImage(1, 1), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "embed page 1")
}

func TestDownloadFetchesFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("%PDF-1.4 fake"))
	}))
	defer srv.Close()

	s := New(nil, nil, t.TempDir())

	path, err := s.download(context.Background(), srv.URL)
	require.NoError(t, err)
	defer os.Remove(path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 fake", string(data))
}

func TestDownloadRejectsBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	s := New(nil, nil, t.TempDir())

	_, err := s.download(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}
