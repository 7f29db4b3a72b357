package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/piresc/kurir/internal/pkg/circuitbreaker"
	httpclient "github.com/piresc/kurir/internal/pkg/http"
	"github.com/piresc/kurir/internal/pkg/logger"
	"github.com/piresc/kurir/internal/pkg/models"
	"github.com/piresc/kurir/internal/pkg/retry"
)

// prerequisitesResponse is the onboarding service's answer for one applicant
type prerequisitesResponse struct {
	Eligible bool     `json:"eligible"`
	Missing  []string `json:"missing"`
}

// OnboardingGateway asks the onboarding service whether an applicant still
// satisfies activation prerequisites
type OnboardingGateway struct {
	client *httpclient.EnhancedClient
}

// NewOnboardingGateway creates the gateway. With no onboarding URL configured
// every applicant passes.
func NewOnboardingGateway(cfg *models.Config) *OnboardingGateway {
	if cfg.Services.OnboardingURL == "" {
		logger.Warn("Onboarding service URL not configured, prerequisite checks disabled")
		return &OnboardingGateway{}
	}

	client := httpclient.NewEnhancedClient(
		strings.TrimRight(cfg.Services.OnboardingURL, "/"),
		cfg.Services.OnboardingTimeout,
		retry.FromModel(cfg.Retry),
		circuitbreaker.FromModel("onboarding", cfg.CircuitBreaker),
		httpclient.WithAPIKey(cfg.Services.OnboardingAPIKey),
	)
	return &OnboardingGateway{client: client}
}

// CheckPrerequisites returns ErrPrerequisitesNotMet when the applicant can no
// longer be activated in the region
func (g *OnboardingGateway) CheckPrerequisites(ctx context.Context, applicantID, regionID string) error {
	if g.client == nil {
		return nil
	}

	endpoint := fmt.Sprintf("/internal/applicants/%s/prerequisites?region_id=%s",
		url.PathEscape(applicantID), url.QueryEscape(regionID))

	var resp prerequisitesResponse
	err := g.client.DoJSON(ctx, http.MethodGet, endpoint, nil, &resp)
	if err != nil {
		var httpErr *httpclient.HTTPError
		if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound {
			return fmt.Errorf("%w: applicant unknown to onboarding", models.ErrPrerequisitesNotMet)
		}
		logger.ErrorCtx(ctx, "Failed to check applicant prerequisites",
			logger.ApplicantID(applicantID),
			logger.RegionID(regionID),
			logger.Err(err))
		return fmt.Errorf("failed to check prerequisites: %w", err)
	}

	if !resp.Eligible {
		return fmt.Errorf("%w: missing %s", models.ErrPrerequisitesNotMet, strings.Join(resp.Missing, ", "))
	}
	return nil
}
