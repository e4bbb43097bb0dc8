package usecase

import (
	"bookstore/internal/entity"
	"context"
	"errors"
)

type FavoriteRepository interface {
	Create(ctx context.Context, f *entity.Favorite) error
	GetByUserAndBook(ctx context.Context, userID, bookID int64) (entity.Favorite, error)
	ListByUser(ctx context.Context, userID int64) ([]entity.Favorite, error)
	DeleteByUserAndBook(ctx context.Context, userID, bookID int64) error
}

type FavoriteService struct {
	repo     FavoriteRepository
	userRepo UserRepository
	bookRepo BookRepository
}

func NewFavoriteService(repo FavoriteRepository, userRepo UserRepository, bookRepo BookRepository) *FavoriteService {
	return &FavoriteService{repo: repo, userRepo: userRepo, bookRepo: bookRepo}
}

func (s *FavoriteService) resolve(ctx context.Context, username string, bookID int64) (entity.User, entity.Book, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if errors.Is(err, ErrNotFound) {
		return entity.User{}, entity.Book{}, NotFound("USER_NOT_FOUND", "No user found with the provided username")
	}
	if err != nil {
		return entity.User{}, entity.Book{}, err
	}

	book, err := s.bookRepo.GetByID(ctx, bookID)
	if errors.Is(err, ErrNotFound) {
		return entity.User{}, entity.Book{}, NotFound("BOOK_NOT_FOUND", "No book found with the provided ID")
	}
	if err != nil {
		return entity.User{}, entity.Book{}, err
	}
	return user, book, nil
}

// Add favorites a book for a user. Any user may favorite any book; the
// at-most-one-per-pair invariant is enforced here and, for concurrent
// adds that both pass this check, by the store's unique constraint.
func (s *FavoriteService) Add(ctx context.Context, username string, bookID int64) (entity.Favorite, error) {
	user, book, err := s.resolve(ctx, username, bookID)
	if err != nil {
		return entity.Favorite{}, err
	}

	_, err = s.repo.GetByUserAndBook(ctx, user.ID, bookID)
	if err == nil {
		return entity.Favorite{}, Conflict("ALREADY_IN_FAVORITES", "This book is already in your favorites")
	}
	if !errors.Is(err, ErrNotFound) {
		return entity.Favorite{}, err
	}

	favorite := &entity.Favorite{UserID: user.ID, BookID: bookID, Book: book}
	if err := s.repo.Create(ctx, favorite); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return entity.Favorite{}, Conflict("ALREADY_IN_FAVORITES", "This book is already in your favorites")
		}
		return entity.Favorite{}, err
	}
	return *favorite, nil
}

// Remove deletes the favorite for the pair if present. Removing an
// absent favorite is a no-op, not an error.
func (s *FavoriteService) Remove(ctx context.Context, username string, bookID int64) error {
	user, _, err := s.resolve(ctx, username, bookID)
	if err != nil {
		return err
	}
	return s.repo.DeleteByUserAndBook(ctx, user.ID, bookID)
}

func (s *FavoriteService) ListByUser(ctx context.Context, username string) ([]entity.Favorite, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if errors.Is(err, ErrNotFound) {
		return nil, NotFound("USER_NOT_FOUND", "No user found with the provided username")
	}
	if err != nil {
		return nil, err
	}

	favorites, err := s.repo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if len(favorites) == 0 {
		return nil, NotFound("NO_FAVORITES", "This user has no favorite books")
	}
	return favorites, nil
}
