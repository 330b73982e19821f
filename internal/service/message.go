package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/apperr"
	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/model"
	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/repository"
	"github.com/bilgiteknoresmi-prog/3d-baski-studio/pkg/validator"
)

type CreateMessageParams struct {
	Name  string `validate:"notblank"`
	Email string `validate:"notblank"`
	Body  string `validate:"notblank"`
}

type MessageService interface {
	ListMessages(ctx context.Context) ([]model.Message, error)
	CountUnread(ctx context.Context) (int64, error)
	CreateMessage(ctx context.Context, params CreateMessageParams) (int64, error)
	MarkRead(ctx context.Context, id int64) error
	DeleteMessage(ctx context.Context, id int64) error
}

type messageService struct {
	validator   validator.Validator
	messageRepo repository.MessageRepository
}

func NewMessageService(
	validator validator.Validator,
	messageRepo repository.MessageRepository,
) MessageService {
	return &messageService{
		validator:   validator,
		messageRepo: messageRepo,
	}
}

func (s *messageService) ListMessages(ctx context.Context) ([]model.Message, error) {
	msgs, err := s.messageRepo.ListMessages(ctx)
	if err != nil {
		return nil, fmt.Errorf("message repository list messages: %w", err)
	}
	return msgs, nil
}

func (s *messageService) CountUnread(ctx context.Context) (int64, error) {
	n, err := s.messageRepo.CountUnread(ctx)
	if err != nil {
		return 0, fmt.Errorf("message repository count unread: %w", err)
	}
	return n, nil
}

func (s *messageService) CreateMessage(ctx context.Context, params CreateMessageParams) (int64, error) {
	params.Name = strings.TrimSpace(params.Name)
	params.Email = strings.TrimSpace(params.Email)
	params.Body = strings.TrimSpace(params.Body)

	if err := s.validator.Validate(params); err != nil {
		return 0, apperr.ValidationErr.WrapParent(err)
	}

	id, err := s.messageRepo.CreateMessage(ctx, repository.CreateMessageParams{
		Name:  params.Name,
		Email: params.Email,
		Body:  params.Body,
	})
	if err != nil {
		return 0, fmt.Errorf("message repository create message: %w", err)
	}

	return id, nil
}

func (s *messageService) MarkRead(ctx context.Context, id int64) error {
	if err := s.messageRepo.MarkRead(ctx, id); err != nil {
		return fmt.Errorf("message repository mark read: %w", err)
	}
	return nil
}

func (s *messageService) DeleteMessage(ctx context.Context, id int64) error {
	if err := s.messageRepo.DeleteMessage(ctx, id); err != nil {
		return fmt.Errorf("message repository delete message: %w", err)
	}
	return nil
}
