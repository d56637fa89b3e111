package appointments

import (
	"context"
	"referral-service/internal/app/models"
	"referral-service/internal/pkg/dto/requests"
	"referral-service/internal/pkg/dto/responses"
)

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointmentModel *models.Appointment) (appointmentID string, err error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindByFilter(ctx context.Context, filter AppointmentFilter, page, pageSize int) ([]models.Appointment, int, error)
	UpdateAppointment(ctx context.Context, appointment *models.Appointment) error
	DeleteByID(ctx context.Context, appointmentID string) error
}

// AppointmentFilter narrows a listing to the caller's visibility. Empty
// fields are ignored.
type AppointmentFilter struct {
	PatientID string
	DoctorID  string
	Status    string
}

type AppointmentUsecase interface {
	BookAppointment(ctx context.Context, session *models.Session, request *requests.BookAppointment) (*responses.Appointment, error)
	GetAppointment(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error)
	ListAppointments(ctx context.Context, session *models.Session, status string, pagination requests.Pagination) ([]responses.Appointment, int, error)
	UpdateAppointment(ctx context.Context, session *models.Session, appointmentID string, request *requests.UpdateAppointment) (*responses.Appointment, error)
	CancelAppointment(ctx context.Context, session *models.Session, appointmentID string) error
}
