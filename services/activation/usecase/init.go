package usecase

import (
	"time"

	"github.com/piresc/kurir/internal/pkg/models"
	"github.com/piresc/kurir/services/activation"
)

const defaultRankedPageSize = 20

// ActivationUC implements the activation use case interface
type ActivationUC struct {
	cfg            *models.Config
	activationRepo activation.ActivationRepo
	onboardingGW   activation.OnboardingGW
	now            func() time.Time
}

// NewActivationUC creates a new activation use case
func NewActivationUC(
	cfg *models.Config,
	activationRepo activation.ActivationRepo,
	onboardingGW activation.OnboardingGW,
) *ActivationUC {
	return &ActivationUC{
		cfg:            cfg,
		activationRepo: activationRepo,
		onboardingGW:   onboardingGW,
		now:            time.Now,
	}
}

func (uc *ActivationUC) pageSize() int {
	if uc.cfg.Activation.RankedPageSize > 0 {
		return uc.cfg.Activation.RankedPageSize
	}
	return defaultRankedPageSize
}
