package model

// Patient is a beneficiary receiving medical or livelihood assistance.
// The owner profile travels with the record as `user`.
type Patient struct {
	Base
	OwnerNationalCode        string  `json:"-" db:"owner_national_code"`
	PresenterNationalCode    *string `json:"presenterNationalCode" db:"presenter_national_code"`
	PresenterFirstName       *string `json:"presenterFirstName" db:"presenter_first_name"`
	PresenterLastName        *string `json:"presenterLastName" db:"presenter_last_name"`
	FatherName               string  `json:"fatherName" db:"father_name"`
	Age                      int     `json:"age" db:"age"`
	MaritalStatus            string  `json:"maritalStatus" db:"marital_status"`
	HeadHousehold            bool    `json:"headHouseHold" db:"head_household"`
	NumberDependents         int     `json:"numberDependents" db:"number_dependents"`
	FamilyStatus             string  `json:"familyStatus" db:"family_status"`
	JobStatus                bool    `json:"jobStatus" db:"job_status"`
	Skill                    string  `json:"skill" db:"skill"`
	HomeStatus               string  `json:"homeStatus" db:"home_status"`
	LineNumber               string  `json:"lineNumber" db:"line_number"`
	Organ                    string  `json:"organ" db:"organ"`
	BankCardNumber           string  `json:"bankCardNumber" db:"bank_card_number"`
	Insurance                string  `json:"insurance" db:"insurance"`
	SicknessDescription      string  `json:"sicknessDescription" db:"sickness_description"`
	Familiar1Name            string  `json:"familiar1Name" db:"familiar1_name"`
	Familiar1FamilyName      string  `json:"familiar1FamilyName" db:"familiar1_family_name"`
	Familiar1PhoneNumber     string  `json:"familiar1PhoneNumber" db:"familiar1_phone_number"`
	Familiar2Name            string  `json:"familiar2Name" db:"familiar2_name"`
	Familiar2FamilyName      string  `json:"familiar2FamilyName" db:"familiar2_family_name"`
	Familiar2PhoneNumber     string  `json:"familiar2PhoneNumber" db:"familiar2_phone_number"`
	NationalCardImage        *string `json:"nationalCardImage" db:"national_card_image"`
	NationalCertificateImage *string `json:"nationalCertificateImage" db:"national_certificate_image"`
	Owner                    *Owner  `json:"user,omitempty" db:"-"`
}

// CreatePatientRequest flattens the owner fields into the patient payload,
// the way the admin forms submit them.
type CreatePatientRequest struct {
	OwnerInput
	PresenterNationalCode *string `json:"presenterNationalCode" validate:"omitempty,national_code"`
	PresenterFirstName    *string `json:"presenterFirstName"`
	PresenterLastName     *string `json:"presenterLastName"`
	FatherName            string  `json:"fatherName" binding:"required"`
	Age                   int     `json:"age" binding:"required,gte=0"`
	MaritalStatus         string  `json:"maritalStatus" binding:"required"`
	HeadHousehold         bool    `json:"headHouseHold"`
	NumberDependents      int     `json:"numberDependents"`
	FamilyStatus          string  `json:"familyStatus"`
	JobStatus             bool    `json:"jobStatus"`
	Skill                 string  `json:"skill"`
	HomeStatus            string  `json:"homeStatus"`
	LineNumber            string  `json:"lineNumber"`
	Organ                 string  `json:"organ"`
	BankCardNumber        string  `json:"bankCardNumber"`
	Insurance             string  `json:"insurance"`
	SicknessDescription   string  `json:"sicknessDescription"`
	Familiar1Name         string  `json:"familiar1Name"`
	Familiar1FamilyName   string  `json:"familiar1FamilyName"`
	Familiar1PhoneNumber  string  `json:"familiar1PhoneNumber"`
	Familiar2Name         string  `json:"familiar2Name"`
	Familiar2FamilyName   string  `json:"familiar2FamilyName"`
	Familiar2PhoneNumber  string  `json:"familiar2PhoneNumber"`
}

// UpdatePatientRequest is a partial update: only non-nil fields change.
// Owner edits arrive flattened alongside the patient fields.
type UpdatePatientRequest struct {
	OwnerPatch
	PresenterNationalCode *string `json:"presenterNationalCode" db:"presenter_national_code"`
	PresenterFirstName    *string `json:"presenterFirstName" db:"presenter_first_name"`
	PresenterLastName     *string `json:"presenterLastName" db:"presenter_last_name"`
	FatherName            *string `json:"fatherName" db:"father_name"`
	Age                   *int    `json:"age" db:"age"`
	MaritalStatus         *string `json:"maritalStatus" db:"marital_status"`
	HeadHousehold         *bool   `json:"headHouseHold" db:"head_household"`
	NumberDependents      *int    `json:"numberDependents" db:"number_dependents"`
	FamilyStatus          *string `json:"familyStatus" db:"family_status"`
	JobStatus             *bool   `json:"jobStatus" db:"job_status"`
	Skill                 *string `json:"skill" db:"skill"`
	HomeStatus            *string `json:"homeStatus" db:"home_status"`
	LineNumber            *string `json:"lineNumber" db:"line_number"`
	Organ                 *string `json:"organ" db:"organ"`
	BankCardNumber        *string `json:"bankCardNumber" db:"bank_card_number"`
	Insurance             *string `json:"insurance" db:"insurance"`
	SicknessDescription   *string `json:"sicknessDescription" db:"sickness_description"`
	Familiar1Name         *string `json:"familiar1Name" db:"familiar1_name"`
	Familiar1FamilyName   *string `json:"familiar1FamilyName" db:"familiar1_family_name"`
	Familiar1PhoneNumber  *string `json:"familiar1PhoneNumber" db:"familiar1_phone_number"`
	Familiar2Name         *string `json:"familiar2Name" db:"familiar2_name"`
	Familiar2FamilyName   *string `json:"familiar2FamilyName" db:"familiar2_family_name"`
	Familiar2PhoneNumber  *string `json:"familiar2PhoneNumber" db:"familiar2_phone_number"`
}
