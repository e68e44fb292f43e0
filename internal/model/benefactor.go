package model

// Benefactor is an individual donor, backed by a shared owner profile.
type Benefactor struct {
	Base
	OwnerNationalCode string `json:"-" db:"owner_national_code"`
	LandLineNumber    string `json:"landLineNumber" db:"land_line_number"`
	Contribution      string `json:"contribution" db:"contribution"`
	Owner             *Owner `json:"user,omitempty" db:"-"`
}

type CreateBenefactorRequest struct {
	OwnerInput
	LandLineNumber string `json:"landLineNumber" binding:"required"`
	Contribution   string `json:"contribution" binding:"required"`
}

type UpdateBenefactorRequest struct {
	OwnerPatch
	LandLineNumber *string `json:"landLineNumber" db:"land_line_number"`
	Contribution   *string `json:"contribution" db:"contribution"`
}

// Doctor is a collaborating physician, backed by a shared owner profile.
type Doctor struct {
	Base
	OwnerNationalCode string `json:"-" db:"owner_national_code"`
	FatherName        string `json:"fatherName" db:"father_name"`
	MedicalCode       int    `json:"medicalCode" db:"medical_code"`
	SecPhoneNumber    string `json:"secPhoneNumber" db:"sec_phone_number"`
	Specialty         string `json:"specialty" db:"specialty"`
	Services          string `json:"services" db:"services"`
	CollabType        string `json:"collabType" db:"collab_type"`
	Contribution      string `json:"contribution" db:"contribution"`
	Owner             *Owner `json:"user,omitempty" db:"-"`
}

type CreateDoctorRequest struct {
	OwnerInput
	FatherName     string `json:"fatherName" binding:"required"`
	MedicalCode    int    `json:"medicalCode" binding:"required"`
	SecPhoneNumber string `json:"secPhoneNumber"`
	Specialty      string `json:"specialty" binding:"required"`
	Services       string `json:"services"`
	CollabType     string `json:"collabType"`
	Contribution   string `json:"contribution"`
}

type UpdateDoctorRequest struct {
	OwnerPatch
	FatherName     *string `json:"fatherName" db:"father_name"`
	MedicalCode    *int    `json:"medicalCode" db:"medical_code"`
	SecPhoneNumber *string `json:"secPhoneNumber" db:"sec_phone_number"`
	Specialty      *string `json:"specialty" db:"specialty"`
	Services       *string `json:"services" db:"services"`
	CollabType     *string `json:"collabType" db:"collab_type"`
	Contribution   *string `json:"contribution" db:"contribution"`
}

// HealthAssist is a volunteer health aide. Created via multipart because of
// the optional introduction letter attachment.
type HealthAssist struct {
	Base
	OwnerNationalCode     string  `json:"-" db:"owner_national_code"`
	PresenterNationalCode *string `json:"presenterNationalCode" db:"presenter_national_code"`
	PresenterFirstName    *string `json:"presenterFirstName" db:"presenter_first_name"`
	PresenterLastName     *string `json:"presenterLastName" db:"presenter_last_name"`
	LetterFile            *string `json:"letterFile" db:"letter_file"`
	AssistType            string  `json:"assistType" db:"assist_type"`
	AssistDescription     string  `json:"assistDescription" db:"assist_description"`
	Owner                 *Owner  `json:"user,omitempty" db:"-"`
}

type CreateHealthAssistRequest struct {
	OwnerInput
	PresenterNationalCode *string `form:"presenterNationalCode" json:"presenterNationalCode" validate:"omitempty,national_code"`
	PresenterFirstName    *string `form:"presenterFirstName" json:"presenterFirstName"`
	PresenterLastName     *string `form:"presenterLastName" json:"presenterLastName"`
	AssistType            string  `form:"assistType" json:"assistType" binding:"required"`
	AssistDescription     string  `form:"assistDescription" json:"assistDescription"`
}

type UpdateHealthAssistRequest struct {
	OwnerPatch
	PresenterNationalCode *string `form:"presenterNationalCode" json:"presenterNationalCode" db:"presenter_national_code"`
	PresenterFirstName    *string `form:"presenterFirstName" json:"presenterFirstName" db:"presenter_first_name"`
	PresenterLastName     *string `form:"presenterLastName" json:"presenterLastName" db:"presenter_last_name"`
	AssistType            *string `form:"assistType" json:"assistType" db:"assist_type"`
	AssistDescription     *string `form:"assistDescription" json:"assistDescription" db:"assist_description"`
}
