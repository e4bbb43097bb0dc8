package usecase

import (
	"bookstore/internal/entity"
	"context"
	"errors"
)

type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByUsername(ctx context.Context, username string) (entity.User, error)
	GetByID(ctx context.Context, id int64) (entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	Delete(ctx context.Context, id int64) error
}

// ValidRole reports whether role is one of the two recognized roles.
func ValidRole(role string) bool {
	switch role {
	case entity.RoleUser, entity.RoleAuthor:
		return true
	default:
		return false
	}
}

type UserService struct {
	repo UserRepository
	// deleteSecret gates DeleteUser; injected from configuration.
	deleteSecret string
}

func NewUserService(repo UserRepository, deleteSecret string) *UserService {
	return &UserService{repo: repo, deleteSecret: deleteSecret}
}

func (s *UserService) Register(ctx context.Context, username, email, password, role string) (entity.User, error) {
	if !ValidRole(role) {
		return entity.User{}, InvalidInput("INVALID_ROLE", "Allowed roles are USER and AUTHOR")
	}

	_, err := s.repo.GetByUsername(ctx, username)
	if err == nil {
		return entity.User{}, Conflict("ALREADY_EXISTS", "A user with this username already exists")
	}
	if !errors.Is(err, ErrNotFound) {
		return entity.User{}, err
	}

	newUser := &entity.User{
		Username: username,
		Email:    email,
		Password: password,
		Role:     role,
	}
	if err := s.repo.Create(ctx, newUser); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return entity.User{}, Conflict("ALREADY_EXISTS", "A user with this username already exists")
		}
		return entity.User{}, err
	}
	return *newUser, nil
}

func (s *UserService) Login(ctx context.Context, username, password string) (entity.User, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if errors.Is(err, ErrNotFound) {
		return entity.User{}, Unauthorized("UNAUTHORIZED", "Username or password is incorrect")
	}
	if err != nil {
		return entity.User{}, err
	}
	// Exact, case-sensitive comparison; passwords are stored verbatim.
	if user.Password != password {
		return entity.User{}, Unauthorized("UNAUTHORIZED", "Username or password is incorrect")
	}
	return user, nil
}

// UpdateProfile applies newEmail and/or newPassword when non-empty,
// leaving the other field untouched.
func (s *UserService) UpdateProfile(ctx context.Context, username, oldPassword, newEmail, newPassword string) (entity.User, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if errors.Is(err, ErrNotFound) {
		return entity.User{}, NotFound("USER_NOT_FOUND", "No user found with the provided username")
	}
	if err != nil {
		return entity.User{}, err
	}

	if user.Password != oldPassword {
		return entity.User{}, Forbidden("INVALID_OLD_PASSWORD", "The provided old password is incorrect")
	}

	if newEmail != "" {
		user.Email = newEmail
	}
	if newPassword != "" {
		user.Password = newPassword
	}

	if err := s.repo.Update(ctx, &user); err != nil {
		return entity.User{}, err
	}
	return user, nil
}

// Delete removes the user row only; their books and favorites are left
// in place (no cascade).
func (s *UserService) Delete(ctx context.Context, id int64, secret string) error {
	if secret != s.deleteSecret {
		return InvalidInput("INVALID_SECRET_CODE", "The provided secret code is incorrect")
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return NotFound("USER_NOT_FOUND", "No user found with the provided ID")
		}
		return err
	}

	return s.repo.Delete(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]entity.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, NotFound("NO_USERS", "There are no users in the system")
	}
	return users, nil
}
