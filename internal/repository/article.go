package repository

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/anekzad/portfolio/internal/model"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var (
	ErrArticleNotFound = errors.New("article not found")
	ErrDuplicateSlug   = errors.New("slug already exists")
)

type ArticleRepository interface {
	Create(article *model.Article) error
	BySlug(slug string) (*model.Article, error)
	All() ([]*model.Article, error)
	Published() ([]*model.Article, error)
	Update(article *model.Article) error
	Delete(slug string) error
}

type articleRepository struct {
	db *sqlx.DB
}

func NewArticleRepository(db *sqlx.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *model.Article) error {
	if article.ID == "" {
		article.ID = uuid.New().String()
	}
	now := time.Now()
	if article.CreatedAt.IsZero() {
		article.CreatedAt = now
	}
	article.UpdatedAt = now

	query := `
		INSERT INTO articles (id, title, slug, description, content, image_url, published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.Exec(query,
		article.ID,
		article.Title,
		article.Slug,
		article.Description,
		article.Content,
		article.ImageURL,
		article.Published,
		article.CreatedAt,
		article.UpdatedAt,
	)
	if err != nil {
		// Unique constraint violation (works for both SQLite and PostgreSQL)
		errStr := err.Error()
		if strings.Contains(errStr, "UNIQUE constraint failed") || strings.Contains(errStr, "duplicate key value") {
			return ErrDuplicateSlug
		}
		return err
	}

	return nil
}

func (r *articleRepository) BySlug(slug string) (*model.Article, error) {
	article := &model.Article{}
	query := `SELECT * FROM articles WHERE slug = $1`

	err := r.db.Get(article, query, slug)
	if err == sql.ErrNoRows {
		return nil, ErrArticleNotFound
	}

	return article, err
}

func (r *articleRepository) All() ([]*model.Article, error) {
	articles := []*model.Article{}
	query := `SELECT * FROM articles ORDER BY created_at DESC`

	err := r.db.Select(&articles, query)
	return articles, err
}

func (r *articleRepository) Published() ([]*model.Article, error) {
	articles := []*model.Article{}
	query := `SELECT * FROM articles WHERE published = TRUE ORDER BY created_at DESC`

	err := r.db.Select(&articles, query)
	return articles, err
}

func (r *articleRepository) Update(article *model.Article) error {
	article.UpdatedAt = time.Now()

	query := `
		UPDATE articles
		SET title = $1, description = $2, content = $3, image_url = $4, published = $5, updated_at = $6
		WHERE slug = $7
	`
	result, err := r.db.Exec(query,
		article.Title,
		article.Description,
		article.Content,
		article.ImageURL,
		article.Published,
		article.UpdatedAt,
		article.Slug,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrArticleNotFound
	}

	return nil
}

func (r *articleRepository) Delete(slug string) error {
	result, err := r.db.Exec(`DELETE FROM articles WHERE slug = $1`, slug)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrArticleNotFound
	}

	return nil
}
