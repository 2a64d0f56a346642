package service

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/modguard/internal/identity/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Repo domain.Repository
	Log  *zap.Logger
}

type Service struct {
	repo domain.Repository
	log  *zap.Logger
}

func New(p Params) domain.Service {
	return &Service{
		repo: p.Repo,
		log:  p.Log.Named("identity.service"),
	}
}

func (s *Service) List(ctx context.Context, req domain.ListUsersRequest) (domain.ListUsersResponse, error) {
	filter := domain.ListFilter{Search: req.Search}
	switch req.Status {
	case domain.StatusActive:
		filter.IsActive = boolPtr(true)
	case domain.StatusInactive:
		filter.IsActive = boolPtr(false)
	}
	switch req.Role {
	case domain.RoleAdmin:
		filter.IsAdmin = boolPtr(true)
	case domain.RoleUser:
		filter.IsAdmin = boolPtr(false)
	}

	page := req.Page.Normalize()
	users, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return domain.ListUsersResponse{}, err
	}
	return domain.ListUsersResponse{
		Users: users,
		Total: total,
		Page:  page.Page,
		Limit: page.Limit,
	}, nil
}

func (s *Service) UpdateStatus(ctx context.Context, req domain.UpdateStatusRequest) (domain.UserAccount, error) {
	id, err := parseID(req.UserID)
	if err != nil {
		return domain.UserAccount{}, err
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.UserAccount{}, err
	}
	if user == nil {
		return domain.UserAccount{}, domain.ErrNotFound
	}

	if err := s.repo.UpdateFlags(ctx, id, req.IsActive, req.IsAdmin); err != nil {
		return domain.UserAccount{}, err
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.UserAccount{}, err
	}
	if updated == nil {
		return domain.UserAccount{}, domain.ErrNotFound
	}

	s.log.Info("updated user flags", zap.String("user_id", id.String()))
	return *updated, nil
}

func (s *Service) Delete(ctx context.Context, userID string) error {
	id, err := parseID(userID)
	if err != nil {
		return err
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("deleted user", zap.String("user_id", id.String()))
	return nil
}

func parseID(raw string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(raw)
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}

func boolPtr(v bool) *bool { return &v }
