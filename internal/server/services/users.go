// Package services implements the users API operations on top of the
// repository manager.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/usercatalog/internal/server/models"
	"github.com/dmitrijs2005/usercatalog/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/usercatalog/internal/server/repositories/users"
	"github.com/google/uuid"
)

type UserService struct {
	repomanager repomanager.RepositoryManager
	now         func() time.Time
	newID       func() string
}

func NewUserService(m repomanager.RepositoryManager) *UserService {
	return &UserService{
		repomanager: m,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// List returns the users matching q, newest first.
func (s *UserService) List(ctx context.Context, q string) ([]models.User, error) {
	result, err := s.repomanager.Users().List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	return result, nil
}

// Create validates in and stores it under a fresh id.
func (s *UserService) Create(ctx context.Context, in models.UserInput) (*models.User, error) {
	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	user := &models.User{
		ID:        s.newID(),
		Name:      in.Name,
		Email:     in.Email,
		Role:      in.Role,
		CreatedAt: s.now().UTC(),
	}

	user, err := s.repomanager.Users().Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return user, nil
}

// Update replaces the editable fields of user id. users.ErrNotFound is
// returned when it does not exist.
func (s *UserService) Update(ctx context.Context, id string, in models.UserInput) (*models.User, error) {
	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var updated *models.User
	err := s.repomanager.WithTx(ctx, func(ctx context.Context, repo users.Repository) error {
		current, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}

		current.Name = in.Name
		current.Email = in.Email
		current.Role = in.Role

		updated, err = repo.Update(ctx, current)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error updating user %s: %w", id, err)
	}
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repomanager.Users().Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting user %s: %w", id, err)
	}
	return nil
}
