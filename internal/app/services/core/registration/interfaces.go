package registration

import (
	"context"
	"referral-service/internal/pkg/dto/requests"
	"referral-service/internal/pkg/dto/responses"
)

type RegistrationUsecase interface {
	Begin(ctx context.Context, request *requests.BeginRegistration) (*responses.BeginRegistration, error)
	SubmitStep(ctx context.Context, draftID string, step int, request *requests.SubmitStep) (*responses.SubmitStep, error)
}
