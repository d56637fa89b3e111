package hospitals

import (
	"context"
	"referral-service/internal/app/config"
	"referral-service/internal/app/models"
	"referral-service/internal/pkg/constvars"
	"referral-service/internal/pkg/dto/requests"
	"referral-service/internal/pkg/dto/responses"
	"referral-service/internal/pkg/exceptions"
	"time"

	"go.uber.org/zap"
)

// The wizard's hospital selector is unpaginated; this caps how many approved
// hospitals the endpoint will return in one response.
const approvedHospitalsLimit = 500

type hospitalUsecase struct {
	HospitalRepository HospitalRepository
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
}

func NewHospitalUsecase(
	hospitalMongoRepository HospitalRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) HospitalUsecase {
	return &hospitalUsecase{
		HospitalRepository: hospitalMongoRepository,
		InternalConfig:     internalConfig,
		Log:                logger,
	}
}

func (uc *hospitalUsecase) ListApproved(ctx context.Context) ([]responses.ApprovedHospital, error) {
	hospitalModels, _, err := uc.HospitalRepository.FindByStatus(ctx, constvars.HospitalStatusApproved, 1, approvedHospitalsLimit)
	if err != nil {
		return nil, err
	}

	hospitals := make([]responses.ApprovedHospital, 0, len(hospitalModels))
	for _, hospital := range hospitalModels {
		hospitals = append(hospitals, responses.ApprovedHospital{
			ID:      hospital.ID,
			Name:    hospital.Name,
			Address: buildHospitalAddress(hospital.Address),
		})
	}
	return hospitals, nil
}

func (uc *hospitalUsecase) ListHospitals(ctx context.Context, status string, pagination requests.Pagination) ([]responses.Hospital, int, error) {
	hospitalModels, total, err := uc.HospitalRepository.FindByStatus(ctx, status, pagination.Page, pagination.PageSize)
	if err != nil {
		return nil, 0, err
	}

	hospitals := make([]responses.Hospital, 0, len(hospitalModels))
	for _, hospital := range hospitalModels {
		hospitals = append(hospitals, buildHospitalResponse(&hospital))
	}
	return hospitals, total, nil
}

func (uc *hospitalUsecase) GetHospital(ctx context.Context, hospitalID string) (*responses.Hospital, error) {
	hospital, err := uc.HospitalRepository.FindByID(ctx, hospitalID)
	if err != nil {
		return nil, err
	}
	if hospital == nil {
		return nil, exceptions.ErrHospitalNotExist(nil)
	}
	response := buildHospitalResponse(hospital)
	return &response, nil
}

// CreateHospital registers a hospital as pending; it only becomes selectable
// in the wizard once a super admin approves it.
func (uc *hospitalUsecase) CreateHospital(ctx context.Context, request *requests.CreateHospital) (*responses.Hospital, error) {
	now := time.Now()
	hospital := &models.Hospital{
		Name: request.Name,
		Address: models.HospitalAddress{
			Street:  request.Address.Street,
			City:    request.Address.City,
			State:   request.Address.State,
			ZipCode: request.Address.ZipCode,
		},
		Phone:  request.Phone,
		Email:  request.Email,
		Status: constvars.HospitalStatusPending,
	}
	hospital.CreatedAt = now
	hospital.UpdatedAt = now

	hospitalID, err := uc.HospitalRepository.CreateHospital(ctx, hospital)
	if err != nil {
		return nil, err
	}
	hospital.ID = hospitalID

	response := buildHospitalResponse(hospital)
	return &response, nil
}

func (uc *hospitalUsecase) UpdateHospital(ctx context.Context, hospitalID string, request *requests.UpdateHospital) (*responses.Hospital, error) {
	hospital, err := uc.HospitalRepository.FindByID(ctx, hospitalID)
	if err != nil {
		return nil, err
	}
	if hospital == nil {
		return nil, exceptions.ErrHospitalNotExist(nil)
	}

	hospital.Name = request.Name
	hospital.Address = models.HospitalAddress{
		Street:  request.Address.Street,
		City:    request.Address.City,
		State:   request.Address.State,
		ZipCode: request.Address.ZipCode,
	}
	hospital.Phone = request.Phone
	hospital.Email = request.Email
	hospital.UpdatedAt = time.Now()

	if err := uc.HospitalRepository.UpdateHospital(ctx, hospital); err != nil {
		return nil, err
	}

	response := buildHospitalResponse(hospital)
	return &response, nil
}

func (uc *hospitalUsecase) DeleteHospital(ctx context.Context, hospitalID string) error {
	hospital, err := uc.HospitalRepository.FindByID(ctx, hospitalID)
	if err != nil {
		return err
	}
	if hospital == nil {
		return exceptions.ErrHospitalNotExist(nil)
	}
	return uc.HospitalRepository.DeleteByID(ctx, hospitalID)
}

func buildHospitalResponse(hospital *models.Hospital) responses.Hospital {
	return responses.Hospital{
		ID:      hospital.ID,
		Name:    hospital.Name,
		Address: buildHospitalAddress(hospital.Address),
		Phone:   hospital.Phone,
		Email:   hospital.Email,
		Status:  hospital.Status,
	}
}

func buildHospitalAddress(address models.HospitalAddress) responses.HospitalAddress {
	return responses.HospitalAddress{
		Street:  address.Street,
		City:    address.City,
		State:   address.State,
		ZipCode: address.ZipCode,
	}
}
