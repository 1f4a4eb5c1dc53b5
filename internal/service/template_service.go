package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gstbook/internal/domain"
	"gstbook/internal/port"
)

// CreateTemplateInput is the DTO for creating an invoice template.
type CreateTemplateInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdateTemplateInput is the DTO for updating an invoice template. IsDefault
// true promotes the template; false is ignored because some template must
// stay the default.
type UpdateTemplateInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsDefault   *bool   `json:"is_default"`
}

// TemplateService manages invoice templates. The first template created is
// the default, and the last remaining template cannot be deleted.
type TemplateService interface {
	Create(ctx context.Context, input CreateTemplateInput) (*domain.InvoiceTemplate, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.InvoiceTemplate, error)
	List(ctx context.Context) ([]domain.InvoiceTemplate, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateTemplateInput) (*domain.InvoiceTemplate, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type templateService struct {
	repo port.InvoiceTemplateRepository
	log  *zap.Logger
}

// NewTemplateService creates a new TemplateService implementation.
func NewTemplateService(repo port.InvoiceTemplateRepository, log *zap.Logger) TemplateService {
	if log == nil {
		log = zap.NewNop()
	}
	return &templateService{repo: repo, log: log.Named("template.service")}
}

func (s *templateService) Create(ctx context.Context, input CreateTemplateInput) (*domain.InvoiceTemplate, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrTemplateNameRequired
	}

	n, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	tmpl := &domain.InvoiceTemplate{
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		IsDefault:   n == 0,
	}
	if err := s.repo.Create(ctx, tmpl); err != nil {
		return nil, err
	}
	return tmpl, nil
}

func (s *templateService) GetByID(ctx context.Context, id uuid.UUID) (*domain.InvoiceTemplate, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *templateService) List(ctx context.Context) ([]domain.InvoiceTemplate, error) {
	return s.repo.List(ctx)
}

func (s *templateService) Update(ctx context.Context, id uuid.UUID, input UpdateTemplateInput) (*domain.InvoiceTemplate, error) {
	tmpl, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyString(&tmpl.Name, input.Name)
	applyString(&tmpl.Description, input.Description)
	if tmpl.Name == "" {
		return nil, domain.ErrTemplateNameRequired
	}
	if err := s.repo.Update(ctx, tmpl); err != nil {
		return nil, err
	}

	if input.IsDefault != nil && *input.IsDefault && !tmpl.IsDefault {
		if err := s.repo.SetDefault(ctx, tmpl.ID); err != nil {
			return nil, err
		}
		tmpl.IsDefault = true
	}
	return tmpl, nil
}

func (s *templateService) Delete(ctx context.Context, id uuid.UUID) error {
	tmpl, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if tmpl.IsDefault {
		n, err := s.repo.Count(ctx)
		if err != nil {
			return err
		}
		if n <= 1 {
			return domain.ErrLastTemplate
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if !tmpl.IsDefault {
		return nil
	}

	// Promote the next template so a default always exists.
	rest, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	if len(rest) == 0 {
		return nil
	}
	if err := s.repo.SetDefault(ctx, rest[0].ID); err != nil {
		return err
	}
	s.log.Info("default template reassigned",
		zap.String("deleted_id", id.String()),
		zap.String("default_id", rest[0].ID.String()),
	)
	return nil
}
