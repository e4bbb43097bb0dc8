package store

//Repository implementation (Postgres)

import (
	"context"
	"errors"

	"bookstore/internal/entity"
	"bookstore/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookPG struct {
	db *pgxpool.Pool
}

func NewBookPG(db *pgxpool.Pool) *BookPG {
	return &BookPG{db: db}
}

func (r *BookPG) Create(ctx context.Context, book *entity.Book) error {
	const query = `
	INSERT INTO books (title, author, genre, published_year, user_id)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, book.Title, book.Author, book.Genre, book.PublishedYear, book.UserID).Scan(&book.ID, &book.CreatedAt, &book.UpdatedAt)
}

func (r *BookPG) GetByID(ctx context.Context, id int64) (entity.Book, error) {
	const query = `
	SELECT id, title, author, genre, published_year, user_id, created_at, updated_at
	FROM books
	WHERE id = $1
	LIMIT 1
	`
	var book entity.Book
	err := r.db.QueryRow(ctx, query, id).Scan(&book.ID, &book.Title, &book.Author, &book.Genre, &book.PublishedYear, &book.UserID, &book.CreatedAt, &book.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Book{}, usecase.ErrNotFound
		}
		return entity.Book{}, err
	}
	return book, nil
}

func (r *BookPG) List(ctx context.Context) ([]entity.Book, error) {
	const query = `
	SELECT id, title, author, genre, published_year, user_id, created_at, updated_at
	FROM books
	ORDER BY id ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []entity.Book
	for rows.Next() {
		var book entity.Book
		if err := rows.Scan(&book.ID, &book.Title, &book.Author, &book.Genre, &book.PublishedYear, &book.UserID, &book.CreatedAt, &book.UpdatedAt); err != nil {
			return nil, err
		}
		books = append(books, book)
	}
	return books, rows.Err()
}

func (r *BookPG) Update(ctx context.Context, book *entity.Book) error {
	const query = `
	UPDATE books
	SET title = $2, author = $3, genre = $4, published_year = $5, updated_at = NOW()
	WHERE id = $1
	RETURNING updated_at
	`
	err := r.db.QueryRow(ctx, query, book.ID, book.Title, book.Author, book.Genre, book.PublishedYear).Scan(&book.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return usecase.ErrNotFound
	}
	return err
}

func (r *BookPG) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM books WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}
