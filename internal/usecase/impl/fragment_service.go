package impl

import (
	"bytes"
	"context"
	"log/slog"
	"strconv"
	"time"

	"fragments/config"
	"fragments/internal/domain/entity"
	domainerrors "fragments/internal/domain/errors"
	"fragments/internal/domain/repository"
	"fragments/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// FragmentServiceParams holds dependencies for fragmentService, injected by Fx.
type FragmentServiceParams struct {
	fx.In

	Config       *config.Config
	FragmentRepo repository.FragmentRepository
	Logger       *slog.Logger
}

type fragmentService struct {
	fragmentRepo repository.FragmentRepository
	maxSize      int64
	logger       *slog.Logger
	now          func() time.Time
	newID        func() string
}

// NewFragmentService creates a new fragment service instance
func NewFragmentService(params FragmentServiceParams) usecase.FragmentUsecase {
	return &fragmentService{
		fragmentRepo: params.FragmentRepo,
		maxSize:      params.Config.Stub.MaxFragmentSize,
		logger:       params.Logger,
		now:          time.Now,
		newID:        uuid.NewString,
	}
}

// CreateFragment validates and stores a new fragment
func (s *fragmentService) CreateFragment(
	ctx context.Context,
	ownerID string,
	fragmentType entity.FragmentType,
	content []byte,
) (*entity.Fragment, error) {
	if !fragmentType.IsValid() {
		return nil, domainerrors.ErrUnsupportedType.WithDetails(fragmentType.String())
	}
	if len(content) == 0 {
		return nil, domainerrors.ErrEmptyFragment
	}
	if s.maxSize > 0 && int64(len(content)) > s.maxSize {
		return nil, domainerrors.ErrFragmentTooLarge.WithDetails("limit is " + strconv.FormatInt(s.maxSize, 10) + " bytes")
	}

	now := s.now().UTC()
	fragment := &entity.Fragment{
		ID:      s.newID(),
		OwnerID: ownerID,
		Type:    fragmentType,
		Size:    len(content),
		Created: now,
		Updated: now,
		Content: bytes.Clone(content),
	}

	if err := s.fragmentRepo.Save(ctx, fragment); err != nil {
		return nil, errors.Wrap(err, "failed to save fragment")
	}

	s.logger.DebugContext(ctx, "Fragment stored",
		slog.String("owner_id", ownerID),
		slog.String("id", fragment.ID),
		slog.Int("size", fragment.Size),
	)

	return fragment, nil
}

// ListFragments returns the owner's fragments
func (s *fragmentService) ListFragments(ctx context.Context, ownerID string) ([]entity.Fragment, error) {
	fragments, err := s.fragmentRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list fragments")
	}

	return fragments, nil
}

// GetFragment returns one fragment with its content
func (s *fragmentService) GetFragment(ctx context.Context, ownerID, id string) (*entity.Fragment, error) {
	fragment, err := s.fragmentRepo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, translateRepoError(err, id)
	}

	return fragment, nil
}

// DeleteFragment removes one fragment
func (s *fragmentService) DeleteFragment(ctx context.Context, ownerID, id string) error {
	if err := s.fragmentRepo.Delete(ctx, ownerID, id); err != nil {
		return translateRepoError(err, id)
	}

	s.logger.DebugContext(ctx, "Fragment deleted", slog.String("owner_id", ownerID), slog.String("id", id))

	return nil
}

func translateRepoError(err error, id string) error {
	if errors.Is(err, repository.ErrFragmentNotFound) {
		return domainerrors.ErrFragmentNotFound.WithDetails(id)
	}

	return errors.Wrap(err, "fragment repository")
}
