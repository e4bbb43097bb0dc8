package usecase_test

import (
	"context"
	"testing"

	"bookstore/internal/entity"
	"bookstore/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory repositories backing the full register/add/delete walk.

type memUserRepo struct {
	seq   int64
	users map[int64]entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[int64]entity.User{}}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return usecase.ErrDuplicate
		}
	}
	r.seq++
	u.ID = r.seq
	r.users[u.ID] = *u
	return nil
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return entity.User{}, usecase.ErrNotFound
}

func (r *memUserRepo) GetByID(_ context.Context, id int64) (entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return entity.User{}, usecase.ErrNotFound
	}
	return u, nil
}

func (r *memUserRepo) List(_ context.Context) ([]entity.User, error) {
	var out []entity.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *memUserRepo) Update(_ context.Context, u *entity.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return usecase.ErrNotFound
	}
	r.users[u.ID] = *u
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return usecase.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

type memBookRepo struct {
	seq   int64
	books map[int64]entity.Book
}

func newMemBookRepo() *memBookRepo {
	return &memBookRepo{books: map[int64]entity.Book{}}
}

func (r *memBookRepo) Create(_ context.Context, b *entity.Book) error {
	r.seq++
	b.ID = r.seq
	r.books[b.ID] = *b
	return nil
}

func (r *memBookRepo) GetByID(_ context.Context, id int64) (entity.Book, error) {
	b, ok := r.books[id]
	if !ok {
		return entity.Book{}, usecase.ErrNotFound
	}
	return b, nil
}

func (r *memBookRepo) List(_ context.Context) ([]entity.Book, error) {
	var out []entity.Book
	for _, b := range r.books {
		out = append(out, b)
	}
	return out, nil
}

func (r *memBookRepo) Update(_ context.Context, b *entity.Book) error {
	if _, ok := r.books[b.ID]; !ok {
		return usecase.ErrNotFound
	}
	r.books[b.ID] = *b
	return nil
}

func (r *memBookRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.books[id]; !ok {
		return usecase.ErrNotFound
	}
	delete(r.books, id)
	return nil
}

type memFavoriteRepo struct {
	seq       int64
	favorites []entity.Favorite
}

func (r *memFavoriteRepo) Create(_ context.Context, f *entity.Favorite) error {
	for _, existing := range r.favorites {
		if existing.UserID == f.UserID && existing.BookID == f.BookID {
			return usecase.ErrDuplicate
		}
	}
	r.seq++
	f.ID = r.seq
	r.favorites = append(r.favorites, *f)
	return nil
}

func (r *memFavoriteRepo) GetByUserAndBook(_ context.Context, userID, bookID int64) (entity.Favorite, error) {
	for _, f := range r.favorites {
		if f.UserID == userID && f.BookID == bookID {
			return f, nil
		}
	}
	return entity.Favorite{}, usecase.ErrNotFound
}

func (r *memFavoriteRepo) ListByUser(_ context.Context, userID int64) ([]entity.Favorite, error) {
	var out []entity.Favorite
	for _, f := range r.favorites {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *memFavoriteRepo) DeleteByUserAndBook(_ context.Context, userID, bookID int64) error {
	kept := r.favorites[:0]
	for _, f := range r.favorites {
		if f.UserID != userID || f.BookID != bookID {
			kept = append(kept, f)
		}
	}
	r.favorites = kept
	return nil
}

func TestBookstoreLifecycle(t *testing.T) {
	ctx := context.Background()
	userRepo := newMemUserRepo()
	bookRepo := newMemBookRepo()
	favoriteRepo := &memFavoriteRepo{}

	users := usecase.NewUserService(userRepo, "DELETE1234")
	books := usecase.NewBookService(bookRepo, userRepo)
	favorites := usecase.NewFavoriteService(favoriteRepo, userRepo, bookRepo)

	alice, err := users.Register(ctx, "alice", "a@x.com", "pw", entity.RoleAuthor)
	require.NoError(t, err)
	assert.Equal(t, int64(1), alice.ID)

	book, err := books.Add(ctx, "T", "A", "G", 2020, "alice")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, book.UserID)

	// bob never registered; same book data is still forbidden.
	_, err = books.Add(ctx, "T", "A", "G", 2020, "bob")
	fault, ok := usecase.AsFault(err)
	require.True(t, ok)
	assert.Equal(t, usecase.FaultForbidden, fault.Kind)

	// Favoriting works for any registered user; doubling up conflicts.
	carol, err := users.Register(ctx, "carol", "c@x.com", "pw", entity.RoleUser)
	require.NoError(t, err)
	_, err = favorites.Add(ctx, carol.Username, book.ID)
	require.NoError(t, err)
	_, err = favorites.Add(ctx, carol.Username, book.ID)
	fault, ok = usecase.AsFault(err)
	require.True(t, ok)
	assert.Equal(t, usecase.FaultConflict, fault.Kind)

	list, err := favorites.ListByUser(ctx, carol.Username)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, book.ID, list[0].BookID)

	// Removing twice: second removal is a no-op.
	require.NoError(t, favorites.Remove(ctx, carol.Username, book.ID))
	require.NoError(t, favorites.Remove(ctx, carol.Username, book.ID))

	require.NoError(t, books.Delete(ctx, book.ID, "alice"))

	_, err = books.List(ctx)
	fault, ok = usecase.AsFault(err)
	require.True(t, ok)
	assert.Equal(t, usecase.FaultNotFound, fault.Kind)
	assert.Equal(t, "NO_BOOKS", fault.Code)
}
