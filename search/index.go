// Package search wraps the full-text index over published posts. Only
// published posts are ever indexed; drafts are invisible to queries by
// construction.
package search

import (
	"time"

	"inkwell-backend/models"

	"github.com/blevesearch/bleve/v2"
	"gorm.io/gorm"
)

// Hit is one ranked match returned by the index.
type Hit struct {
	ID    string
	Score float64
}

// Index is the search collaborator consumed by the search handler.
type Index interface {
	Query(q string, limit int) ([]Hit, uint64, error)
}

// Default is the process-wide index, set up in main. Tests install a
// mem-only index.
var Default Index

type postDocument struct {
	Title   string    `json:"title"`
	Body    string    `json:"body"`
	Publish time.Time `json:"publish"`
}

type BleveIndex struct {
	idx bleve.Index
}

// Open opens the index at path, creating it when missing. An empty path
// yields an in-memory index.
func Open(path string) (*BleveIndex, error) {
	if path == "" {
		idx, err := bleve.NewMemOnly(bleve.NewIndexMapping())
		if err != nil {
			return nil, err
		}
		return &BleveIndex{idx: idx}, nil
	}

	idx, err := bleve.Open(path)
	if err == bleve.ErrorIndexPathDoesNotExist {
		idx, err = bleve.New(path, bleve.NewIndexMapping())
	}
	if err != nil {
		return nil, err
	}
	return &BleveIndex{idx: idx}, nil
}

// IndexPost adds or refreshes one post. Drafts are skipped.
func (b *BleveIndex) IndexPost(p *models.Post) error {
	if p.Status != models.PostStatusPublished {
		return nil
	}
	return b.idx.Index(p.ID, postDocument{
		Title:   p.Title,
		Body:    p.Body,
		Publish: p.Publish,
	})
}

// Rebuild reindexes every published post in one batch.
func (b *BleveIndex) Rebuild(db *gorm.DB) error {
	var posts []models.Post
	if err := db.Scopes(models.PublishedPosts).Find(&posts).Error; err != nil {
		return err
	}

	batch := b.idx.NewBatch()
	for i := range posts {
		p := posts[i]
		if err := batch.Index(p.ID, postDocument{
			Title:   p.Title,
			Body:    p.Body,
			Publish: p.Publish,
		}); err != nil {
			return err
		}
	}
	return b.idx.Batch(batch)
}

// Query runs a free-text match over title and body, returning ranked hits
// and the total match count.
func (b *BleveIndex) Query(q string, limit int) ([]Hit, uint64, error) {
	req := bleve.NewSearchRequestOptions(bleve.NewMatchQuery(q), limit, 0, false)
	result, err := b.idx.Search(req)
	if err != nil {
		return nil, 0, err
	}

	hits := make([]Hit, 0, len(result.Hits))
	for _, h := range result.Hits {
		hits = append(hits, Hit{ID: h.ID, Score: h.Score})
	}
	return hits, result.Total, nil
}

func (b *BleveIndex) Close() error {
	return b.idx.Close()
}
