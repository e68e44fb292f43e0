package model

// Status values shared by the center-like resources.
const (
	StatusPendingApproval = "pending_approval"
	StatusActive          = "active"
	StatusInactive        = "inactive"
)

// ServiceCenter is a provider of non-medical support services.
type ServiceCenter struct {
	Base
	Name               string  `json:"name" db:"name"`
	ServiceCategory    string  `json:"serviceCategory" db:"service_category"`
	DetailedServices   string  `json:"detailedServices" db:"detailed_services"`
	Email              *string `json:"email" db:"email"`
	PhoneNumber        string  `json:"phoneNumber" db:"phone_number"`
	State              string  `json:"state" db:"state"`
	City               string  `json:"city" db:"city"`
	County             string  `json:"county" db:"county"`
	AddressDetail      string  `json:"addressDetail" db:"address_detail"`
	Website            *string `json:"website" db:"website"`
	WorkingHours       *string `json:"workingHours" db:"working_hours"`
	ContactPersonName  string  `json:"contactPersonName" db:"contact_person_name"`
	ContactPersonPhone string  `json:"contactPersonPhone" db:"contact_person_phone"`
	LicenseNumber      *string `json:"licenseNumber" db:"license_number"`
	LicenseFile        *string `json:"licenseFile" db:"license_file"`
	ServiceArea        *string `json:"serviceArea" db:"service_area"`
	Description        *string `json:"description" db:"description"`
	Status             string  `json:"status" db:"status"`
}

type CreateServiceCenterRequest struct {
	Name               string  `form:"name" binding:"required"`
	ServiceCategory    string  `form:"serviceCategory" binding:"required"`
	DetailedServices   string  `form:"detailedServices" binding:"required"`
	Email              *string `form:"email" validate:"omitempty,email"`
	PhoneNumber        string  `form:"phoneNumber" binding:"required"`
	State              string  `form:"state" binding:"required"`
	City               string  `form:"city" binding:"required"`
	County             string  `form:"county" binding:"required"`
	AddressDetail      string  `form:"addressDetail" binding:"required"`
	Website            *string `form:"website"`
	WorkingHours       *string `form:"workingHours"`
	ContactPersonName  string  `form:"contactPersonName" binding:"required"`
	ContactPersonPhone string  `form:"contactPersonPhone" binding:"required"`
	LicenseNumber      *string `form:"licenseNumber"`
	ServiceArea        *string `form:"serviceArea"`
	Description        *string `form:"description"`
}

type UpdateServiceCenterRequest struct {
	Name               *string `form:"name" db:"name"`
	ServiceCategory    *string `form:"serviceCategory" db:"service_category"`
	DetailedServices   *string `form:"detailedServices" db:"detailed_services"`
	Email              *string `form:"email" db:"email"`
	PhoneNumber        *string `form:"phoneNumber" db:"phone_number"`
	State              *string `form:"state" db:"state"`
	City               *string `form:"city" db:"city"`
	County             *string `form:"county" db:"county"`
	AddressDetail      *string `form:"addressDetail" db:"address_detail"`
	Website            *string `form:"website" db:"website"`
	WorkingHours       *string `form:"workingHours" db:"working_hours"`
	ContactPersonName  *string `form:"contactPersonName" db:"contact_person_name"`
	ContactPersonPhone *string `form:"contactPersonPhone" db:"contact_person_phone"`
	LicenseNumber      *string `form:"licenseNumber" db:"license_number"`
	ServiceArea        *string `form:"serviceArea" db:"service_area"`
	Description        *string `form:"description" db:"description"`
	Status             *string `form:"status" db:"status"`
}

// MedicalCenter is a hospital, clinic or similar care facility.
type MedicalCenter struct {
	Base
	Name               string  `json:"name" db:"name"`
	Type               string  `json:"type" db:"type"`
	Email              string  `json:"email" db:"email"`
	PhoneNumber        string  `json:"phoneNumber" db:"phone_number"`
	State              string  `json:"state" db:"state"`
	City               string  `json:"city" db:"city"`
	County             string  `json:"county" db:"county"`
	AddressDetail      string  `json:"addressDetail" db:"address_detail"`
	Website            *string `json:"website" db:"website"`
	Services           string  `json:"services" db:"services"`
	WorkingHours       *string `json:"workingHours" db:"working_hours"`
	ContactPersonName  string  `json:"contactPersonName" db:"contact_person_name"`
	ContactPersonPhone string  `json:"contactPersonPhone" db:"contact_person_phone"`
	LicenseNumber      *string `json:"licenseNumber" db:"license_number"`
	LicenseFile        *string `json:"licenseFile" db:"license_file"`
	Description        *string `json:"description" db:"description"`
	Status             string  `json:"status" db:"status"`
}

type CreateMedicalCenterRequest struct {
	Name               string  `form:"name" binding:"required"`
	Type               string  `form:"type" binding:"required"`
	Email              string  `form:"email" binding:"required,email"`
	PhoneNumber        string  `form:"phoneNumber" binding:"required"`
	State              string  `form:"state" binding:"required"`
	City               string  `form:"city" binding:"required"`
	County             string  `form:"county" binding:"required"`
	AddressDetail      string  `form:"addressDetail" binding:"required"`
	Website            *string `form:"website"`
	Services           string  `form:"services" binding:"required"`
	WorkingHours       *string `form:"workingHours"`
	ContactPersonName  string  `form:"contactPersonName" binding:"required"`
	ContactPersonPhone string  `form:"contactPersonPhone" binding:"required"`
	LicenseNumber      *string `form:"licenseNumber"`
	Description        *string `form:"description"`
}

type UpdateMedicalCenterRequest struct {
	Name               *string `form:"name" db:"name"`
	Type               *string `form:"type" db:"type"`
	Email              *string `form:"email" db:"email"`
	PhoneNumber        *string `form:"phoneNumber" db:"phone_number"`
	State              *string `form:"state" db:"state"`
	City               *string `form:"city" db:"city"`
	County             *string `form:"county" db:"county"`
	AddressDetail      *string `form:"addressDetail" db:"address_detail"`
	Website            *string `form:"website" db:"website"`
	Services           *string `form:"services" db:"services"`
	WorkingHours       *string `form:"workingHours" db:"working_hours"`
	ContactPersonName  *string `form:"contactPersonName" db:"contact_person_name"`
	ContactPersonPhone *string `form:"contactPersonPhone" db:"contact_person_phone"`
	LicenseNumber      *string `form:"licenseNumber" db:"license_number"`
	Description        *string `form:"description" db:"description"`
	Status             *string `form:"status" db:"status"`
}

// CharityCenter is a partnering charity organization.
type CharityCenter struct {
	Base
	Name                 string  `json:"name" db:"name"`
	MainActivityArea     string  `json:"mainActivityArea" db:"main_activity_area"`
	Type                 string  `json:"type" db:"type"`
	RegistrationNumber   *string `json:"registrationNumber" db:"registration_number"`
	EstablishmentDate    *string `json:"establishmentDate" db:"establishment_date"`
	MissionAndGoals      string  `json:"missionAndGoals" db:"mission_and_goals"`
	Email                *string `json:"email" db:"email"`
	PhoneNumber          string  `json:"phoneNumber" db:"phone_number"`
	State                string  `json:"state" db:"state"`
	City                 string  `json:"city" db:"city"`
	County               string  `json:"county" db:"county"`
	AddressDetail        string  `json:"addressDetail" db:"address_detail"`
	Website              *string `json:"website" db:"website"`
	ContactPersonName    string  `json:"contactPersonName" db:"contact_person_name"`
	ContactPersonPhone   string  `json:"contactPersonPhone" db:"contact_person_phone"`
	CurrentNeeds         *string `json:"currentNeeds" db:"current_needs"`
	DonationMethods      *string `json:"donationMethods" db:"donation_methods"`
	CharterOrLicenseFile *string `json:"charterOrLicenseFile" db:"charter_or_license_file"`
	Logo                 *string `json:"logo" db:"logo"`
	Description          *string `json:"description" db:"description"`
	Status               string  `json:"status" db:"status"`
}

type CreateCharityCenterRequest struct {
	Name               string  `form:"name" binding:"required"`
	MainActivityArea   string  `form:"mainActivityArea" binding:"required"`
	Type               string  `form:"type" binding:"required"`
	RegistrationNumber *string `form:"registrationNumber"`
	EstablishmentDate  *string `form:"establishmentDate"`
	MissionAndGoals    string  `form:"missionAndGoals" binding:"required"`
	Email              *string `form:"email" validate:"omitempty,email"`
	PhoneNumber        string  `form:"phoneNumber" binding:"required"`
	State              string  `form:"state" binding:"required"`
	City               string  `form:"city" binding:"required"`
	County             string  `form:"county" binding:"required"`
	AddressDetail      string  `form:"addressDetail" binding:"required"`
	Website            *string `form:"website"`
	ContactPersonName  string  `form:"contactPersonName" binding:"required"`
	ContactPersonPhone string  `form:"contactPersonPhone" binding:"required"`
	CurrentNeeds       *string `form:"currentNeeds"`
	DonationMethods    *string `form:"donationMethods"`
	Description        *string `form:"description"`
}

type UpdateCharityCenterRequest struct {
	Name               *string `form:"name" db:"name"`
	MainActivityArea   *string `form:"mainActivityArea" db:"main_activity_area"`
	Type               *string `form:"type" db:"type"`
	RegistrationNumber *string `form:"registrationNumber" db:"registration_number"`
	EstablishmentDate  *string `form:"establishmentDate" db:"establishment_date"`
	MissionAndGoals    *string `form:"missionAndGoals" db:"mission_and_goals"`
	Email              *string `form:"email" db:"email"`
	PhoneNumber        *string `form:"phoneNumber" db:"phone_number"`
	State              *string `form:"state" db:"state"`
	City               *string `form:"city" db:"city"`
	County             *string `form:"county" db:"county"`
	AddressDetail      *string `form:"addressDetail" db:"address_detail"`
	Website            *string `form:"website" db:"website"`
	ContactPersonName  *string `form:"contactPersonName" db:"contact_person_name"`
	ContactPersonPhone *string `form:"contactPersonPhone" db:"contact_person_phone"`
	CurrentNeeds       *string `form:"currentNeeds" db:"current_needs"`
	DonationMethods    *string `form:"donationMethods" db:"donation_methods"`
	Description        *string `form:"description" db:"description"`
	Status             *string `form:"status" db:"status"`
}
