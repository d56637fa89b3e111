package utils

import (
	"referral-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeLoginRequest(input *requests.Login) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
}

func SanitizeBeginRegistrationRequest(input *requests.BeginRegistration) {
	input.Role = strings.ToLower(strings.TrimSpace(input.Role))
}

func SanitizeSubmitStepRequest(input *requests.SubmitStep) {
	for field, value := range input.Fields {
		if field == "password" || field == "confirmPassword" {
			continue
		}
		input.Fields[field] = strings.TrimSpace(value)
	}
	if email, ok := input.Fields["email"]; ok {
		input.Fields["email"] = strings.ToLower(email)
	}
}

func SanitizeCreateHospitalRequest(input *requests.CreateHospital) {
	input.Name = strings.TrimSpace(input.Name)
	input.Address.City = strings.TrimSpace(input.Address.City)
	input.Address.State = strings.TrimSpace(input.Address.State)
	input.Address.Street = strings.TrimSpace(input.Address.Street)
	input.Address.ZipCode = strings.TrimSpace(input.Address.ZipCode)
}

func SanitizeBookAppointmentRequest(input *requests.BookAppointment) {
	input.DoctorID = strings.TrimSpace(input.DoctorID)
	input.Date = strings.TrimSpace(input.Date)
	input.Time = strings.TrimSpace(input.Time)
	input.Reason = strings.TrimSpace(input.Reason)
}

func SanitizeCreateReferralRequest(input *requests.CreateReferral) {
	input.PatientID = strings.TrimSpace(input.PatientID)
	input.ToHospitalID = strings.TrimSpace(input.ToHospitalID)
	input.Reason = strings.TrimSpace(input.Reason)
	input.Notes = strings.TrimSpace(input.Notes)
	input.Urgency = strings.ToLower(strings.TrimSpace(input.Urgency))
}
