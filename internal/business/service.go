package business

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Diegosch1990/sistema-reserva-quadras/internal/pkg/storage"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/pkg/validation"
)

type Service interface {
	Get(ctx context.Context) (*Profile, error)
	Update(ctx context.Context, req UpdateRequest) (*Profile, error)
	// UploadLogo stores content as the new logo, shrunk to LogoMaxSide and
	// re-encoded as PNG, and removes the previous one.
	UploadLogo(ctx context.Context, content io.Reader, contentType string) (*Profile, error)
	// Logo opens the stored PNG. The caller closes it.
	Logo(ctx context.Context) (io.ReadCloser, error)
}

type service struct {
	repo    Repository
	store   storage.Storage
	imgProc *storage.ImageProcessor
	log     *zap.Logger
}

func NewService(repo Repository, store storage.Storage, log *zap.Logger) Service {
	return &service{
		repo:    repo,
		store:   store,
		imgProc: storage.NewImageProcessor(LogoMaxSide, LogoMaxSide),
		log:     log,
	}
}

func (s *service) Get(ctx context.Context) (*Profile, error) {
	return s.repo.Get(ctx)
}

func (s *service) Update(ctx context.Context, req UpdateRequest) (*Profile, error) {
	if res := Validate(req); !res.Valid {
		return nil, validation.NewError(res)
	}

	p := &Profile{
		Name:         strings.TrimSpace(req.Name),
		Address:      strings.TrimSpace(req.Address),
		Phone:        validation.NormalizePhone(req.Phone),
		Email:        strings.TrimSpace(req.Email),
		OpeningHours: strings.TrimSpace(req.OpeningHours),
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}

	s.log.Info("business profile updated", zap.String("name", p.Name))
	return p, nil
}

func (s *service) UploadLogo(ctx context.Context, content io.Reader, contentType string) (*Profile, error) {
	mediaType, _, _ := strings.Cut(contentType, ";")
	if !slices.Contains(LogoTypes, strings.TrimSpace(strings.ToLower(mediaType))) {
		return nil, ErrUnsupportedLogo
	}

	current, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	raw, err := io.ReadAll(io.LimitReader(content, MaxLogoBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read logo: %w", err)
	}
	if len(raw) > MaxLogoBytes {
		return nil, ErrLogoTooLarge
	}

	fitted, err := s.imgProc.FitPNG(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedLogo, err)
	}

	// A fresh name per upload so cached copies of the old logo never
	// shadow the new one.
	path := "business/logo-" + uuid.NewString() + ".png"
	if err := s.store.Save(ctx, path, fitted); err != nil {
		return nil, fmt.Errorf("save logo: %w", err)
	}

	updated, err := s.repo.SetLogo(ctx, path)
	if err != nil {
		if delErr := s.store.Delete(ctx, path); delErr != nil {
			s.log.Warn("failed to remove orphaned logo", zap.String("path", path), zap.Error(delErr))
		}
		return nil, err
	}

	if current.HasLogo() {
		if err := s.store.Delete(ctx, current.LogoPath); err != nil {
			s.log.Warn("failed to remove previous logo", zap.String("path", current.LogoPath), zap.Error(err))
		}
	}

	s.log.Info("business logo updated", zap.String("path", path))
	return updated, nil
}

func (s *service) Logo(ctx context.Context) (io.ReadCloser, error) {
	p, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if !p.HasLogo() {
		return nil, ErrNoLogo
	}

	rc, err := s.store.Get(ctx, p.LogoPath)
	if errors.Is(err, storage.ErrNotFound) {
		s.log.Warn("logo recorded but missing from storage", zap.String("path", p.LogoPath))
		return nil, ErrNoLogo
	}
	return rc, err
}
