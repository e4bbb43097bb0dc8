package usecase

import (
	"bookstore/internal/entity"
	"context"
	"errors"
)

// BookRepository defines the contract for book storage.
type BookRepository interface {
	Create(ctx context.Context, b *entity.Book) error
	GetByID(ctx context.Context, id int64) (entity.Book, error)
	List(ctx context.Context) ([]entity.Book, error)
	Update(ctx context.Context, b *entity.Book) error
	Delete(ctx context.Context, id int64) error
}

type BookService struct {
	repo     BookRepository
	userRepo UserRepository
}

func NewBookService(repo BookRepository, userRepo UserRepository) *BookService {
	return &BookService{repo: repo, userRepo: userRepo}
}

// actingAuthor resolves username to a user with role AUTHOR. A missing
// user and a non-author get the same Forbidden answer.
func (s *BookService) actingAuthor(ctx context.Context, username, action string) (entity.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if errors.Is(err, ErrNotFound) || (err == nil && user.Role != entity.RoleAuthor) {
		return entity.User{}, Forbidden("FORBIDDEN", "Only authors are allowed to "+action+" books")
	}
	if err != nil {
		return entity.User{}, err
	}
	return user, nil
}

func (s *BookService) Add(ctx context.Context, title, author, genre string, publishedYear int, username string) (entity.Book, error) {
	user, err := s.actingAuthor(ctx, username, "add")
	if err != nil {
		return entity.Book{}, err
	}

	newBook := &entity.Book{
		Title:         title,
		Author:        author,
		Genre:         genre,
		PublishedYear: publishedYear,
		UserID:        user.ID,
	}
	if err := s.repo.Create(ctx, newBook); err != nil {
		return entity.Book{}, err
	}
	return *newBook, nil
}

func (s *BookService) Update(ctx context.Context, id int64, title, author, genre string, publishedYear int, username string) (entity.Book, error) {
	user, err := s.actingAuthor(ctx, username, "update")
	if err != nil {
		return entity.Book{}, err
	}

	book, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return entity.Book{}, NotFound("BOOK_NOT_FOUND", "No book found with the provided ID")
	}
	if err != nil {
		return entity.Book{}, err
	}

	// Ownership is compared by identifier, not username.
	if book.UserID != user.ID {
		return entity.Book{}, Forbidden("FORBIDDEN", "You can only update books you have added")
	}

	book.Title = title
	book.Author = author
	book.Genre = genre
	book.PublishedYear = publishedYear

	if err := s.repo.Update(ctx, &book); err != nil {
		return entity.Book{}, err
	}
	return book, nil
}

func (s *BookService) Delete(ctx context.Context, id int64, username string) error {
	book, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return NotFound("BOOK_NOT_FOUND", "No book found with the provided ID")
	}
	if err != nil {
		return err
	}

	user, err := s.actingAuthor(ctx, username, "delete")
	if err != nil {
		return err
	}

	if book.UserID != user.ID {
		return Forbidden("FORBIDDEN", "You can only delete books you have added")
	}

	return s.repo.Delete(ctx, id)
}

func (s *BookService) List(ctx context.Context) ([]entity.Book, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, NotFound("NO_BOOKS", "There are no books in the system")
	}
	return books, nil
}
