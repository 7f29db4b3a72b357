package activation

import "context"

// OnboardingGW checks applicant prerequisites with the onboarding service
type OnboardingGW interface {
	CheckPrerequisites(ctx context.Context, applicantID, regionID string) error
}
