package repository

import (
	"context"
	"database/sql"
	"time"

	"marketbrief/pkg/news"
)

// ArticleRepository reads articles saved by the ingest pipeline into the
// original_article table.
type ArticleRepository struct {
	db *sql.DB
}

func NewArticleRepository(db *sql.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

func (r *ArticleRepository) GetRecentArticles(ctx context.Context, since time.Time) ([]news.Article, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT headline, detail, url, published_at
		FROM original_article
		WHERE published_at >= $1
		ORDER BY published_at DESC
	`, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []news.Article
	for rows.Next() {
		var a news.Article
		var detail sql.NullString
		if err := rows.Scan(&a.Headline, &detail, &a.URL, &a.PublishedAt); err != nil {
			return nil, err
		}
		a.Summary = detail.String
		articles = append(articles, a)
	}

	return articles, rows.Err()
}
