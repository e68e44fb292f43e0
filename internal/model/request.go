package model

// PatientServiceRequest is a request for concrete support services filed on
// behalf of an already-registered beneficiary.
type PatientServiceRequest struct {
	Base
	OwnerNationalCode string `json:"-" db:"owner_national_code"`
	UsingResidence    bool   `json:"usingResidence" db:"using_residence"`
	NumberOfWoman     int    `json:"numberOfWoman" db:"number_of_woman"`
	NumberOfMan       int    `json:"numberOfMan" db:"number_of_man"`
	Explain           string `json:"explain" db:"explain"`
	NeededService     string `json:"neededService" db:"needed_service"`
	Owner             *Owner `json:"user,omitempty" db:"-"`
}

type CreatePatientServiceRequestRequest struct {
	NationalCode   string `json:"national_code" binding:"required" validate:"national_code"`
	UsingResidence bool   `json:"usingResidence"`
	NumberOfWoman  int    `json:"numberOfWoman" binding:"gte=0"`
	NumberOfMan    int    `json:"numberOfMan" binding:"gte=0"`
	Explain        string `json:"explain"`
	NeededService  string `json:"neededService" binding:"required"`
}

type UpdatePatientServiceRequestRequest struct {
	UsingResidence *bool   `json:"usingResidence" db:"using_residence"`
	NumberOfWoman  *int    `json:"numberOfWoman" db:"number_of_woman"`
	NumberOfMan    *int    `json:"numberOfMan" db:"number_of_man"`
	Explain        *string `json:"explain" db:"explain"`
	NeededService  *string `json:"neededService" db:"needed_service"`
}

// Consultation request lifecycle states. The server owns the status field.
const (
	ConsultationStatusPending  = "pending"
	ConsultationStatusAccepted = "accepted"
	ConsultationStatusRejected = "rejected"
	ConsultationStatusDone     = "done"
)

// Consultation channels.
const (
	ConsultationTypeOnline   = "online"
	ConsultationTypeInPerson = "in_person"
	ConsultationTypePhone    = "phone"
)

// ConsultationRequest is a request for a medical consultation, filed for a
// registered patient.
type ConsultationRequest struct {
	Base
	OwnerNationalCode string  `json:"-" db:"owner_national_code"`
	Subject           string  `json:"subject" db:"subject"`
	Description       string  `json:"description" db:"description"`
	ConsultationType  string  `json:"consultationType" db:"consultation_type"`
	PreferredDate     *string `json:"preferredDate" db:"preferred_date"`
	PreferredTime     *string `json:"preferredTime" db:"preferred_time"`
	Status            string  `json:"status" db:"status"`
	Owner             *Owner  `json:"user,omitempty" db:"-"`
}

type CreateConsultationRequestRequest struct {
	NationalCode     string  `json:"national_code" binding:"required" validate:"national_code"`
	Subject          string  `json:"subject" binding:"required"`
	Description      string  `json:"description" binding:"required"`
	ConsultationType string  `json:"consultationType" binding:"required,oneof=online in_person phone"`
	PreferredDate    *string `json:"preferredDate"`
	PreferredTime    *string `json:"preferredTime"`
}

type UpdateConsultationRequestRequest struct {
	Subject          *string `json:"subject" db:"subject"`
	Description      *string `json:"description" db:"description"`
	ConsultationType *string `json:"consultationType" db:"consultation_type"`
	PreferredDate    *string `json:"preferredDate" db:"preferred_date"`
	PreferredTime    *string `json:"preferredTime" db:"preferred_time"`
	Status           *string `json:"status" db:"status"`
}
