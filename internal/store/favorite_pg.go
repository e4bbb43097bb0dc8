package store

import (
	"context"
	"errors"

	"bookstore/internal/entity"
	"bookstore/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FavoritePG struct {
	db *pgxpool.Pool
}

func NewFavoritePG(db *pgxpool.Pool) *FavoritePG {
	return &FavoritePG{db: db}
}

// Create inserts the favorite. The UNIQUE (user_id, book_id) index is
// the final authority against duplicate pairs under concurrent adds.
func (r *FavoritePG) Create(ctx context.Context, favorite *entity.Favorite) error {
	const query = `
	INSERT INTO favorites (user_id, book_id)
	VALUES ($1, $2)
	RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, favorite.UserID, favorite.BookID).Scan(&favorite.ID, &favorite.CreatedAt)
	if isUniqueViolation(err) {
		return usecase.ErrDuplicate
	}
	return err
}

func (r *FavoritePG) GetByUserAndBook(ctx context.Context, userID, bookID int64) (entity.Favorite, error) {
	const query = `
	SELECT id, user_id, book_id, created_at
	FROM favorites
	WHERE user_id = $1 AND book_id = $2
	LIMIT 1
	`
	var favorite entity.Favorite
	err := r.db.QueryRow(ctx, query, userID, bookID).Scan(&favorite.ID, &favorite.UserID, &favorite.BookID, &favorite.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Favorite{}, usecase.ErrNotFound
		}
		return entity.Favorite{}, err
	}
	return favorite, nil
}

// ListByUser returns the user's favorites in insertion order, each
// carrying its book.
func (r *FavoritePG) ListByUser(ctx context.Context, userID int64) ([]entity.Favorite, error) {
	const query = `
	SELECT f.id, f.user_id, f.book_id, f.created_at,
	       b.id, b.title, b.author, b.genre, b.published_year, b.user_id, b.created_at, b.updated_at
	FROM favorites f
	JOIN books b ON b.id = f.book_id
	WHERE f.user_id = $1
	ORDER BY f.id ASC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favorites []entity.Favorite
	for rows.Next() {
		var f entity.Favorite
		if err := rows.Scan(
			&f.ID, &f.UserID, &f.BookID, &f.CreatedAt,
			&f.Book.ID, &f.Book.Title, &f.Book.Author, &f.Book.Genre, &f.Book.PublishedYear, &f.Book.UserID, &f.Book.CreatedAt, &f.Book.UpdatedAt,
		); err != nil {
			return nil, err
		}
		favorites = append(favorites, f)
	}
	return favorites, rows.Err()
}

// DeleteByUserAndBook is idempotent: deleting an absent pair succeeds.
func (r *FavoritePG) DeleteByUserAndBook(ctx context.Context, userID, bookID int64) error {
	const query = `DELETE FROM favorites WHERE user_id = $1 AND book_id = $2`
	_, err := r.db.Exec(ctx, query, userID, bookID)
	return err
}
