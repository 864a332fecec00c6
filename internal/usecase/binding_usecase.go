package usecase

import (
	"github.com/LavaJover/shvark-attribution-service/internal/domain"
	"github.com/LavaJover/shvark-attribution-service/internal/infrastructure/metrics"
)

// BindingUsecase records (senderId -> saleCode) associations announced
// by /start commands. The resolver does not consult these today; the
// association is kept for future correlation modes and support tooling.
type BindingUsecase interface {
	Register(senderID, clickID string) error
	GetBySenderID(senderID string) (*domain.SenderBinding, error)
}

type DefaultBindingUsecase struct {
	BindingRepo domain.SenderBindingRepository
}

func NewDefaultBindingUsecase(bindingRepo domain.SenderBindingRepository) *DefaultBindingUsecase {
	return &DefaultBindingUsecase{BindingRepo: bindingRepo}
}

func (uc *DefaultBindingUsecase) Register(senderID, clickID string) error {
	if err := uc.BindingRepo.UpsertBinding(senderID, clickID); err != nil {
		return err
	}
	metrics.BindingsRegisteredTotal.Inc()
	return nil
}

func (uc *DefaultBindingUsecase) GetBySenderID(senderID string) (*domain.SenderBinding, error) {
	return uc.BindingRepo.GetBySenderID(senderID)
}
