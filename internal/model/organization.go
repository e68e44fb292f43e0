package model

// GovernmentOrganization is a public body the charity coordinates with.
type GovernmentOrganization struct {
	Base
	Name                 string  `json:"name" db:"name"`
	ParentMinistryOrBody *string `json:"parentMinistryOrBody" db:"parent_ministry_or_body"`
	Type                 string  `json:"type" db:"type"`
	ActivityArea         string  `json:"activityArea" db:"activity_area"`
	OfficialWebsite      string  `json:"officialWebsite" db:"official_website"`
	MainPhoneNumber      string  `json:"mainPhoneNumber" db:"main_phone_number"`
	FaxNumber            *string `json:"faxNumber" db:"fax_number"`
	OfficialEmail        *string `json:"officialEmail" db:"official_email"`
	State                string  `json:"state" db:"state"`
	City                 string  `json:"city" db:"city"`
	County               string  `json:"county" db:"county"`
	CentralAddressDetail string  `json:"centralAddressDetail" db:"central_address_detail"`
	HeadPersonName       string  `json:"headPersonName" db:"head_person_name"`
	LiaisonPersonName    *string `json:"liaisonPersonName" db:"liaison_person_name"`
	LiaisonPersonPhone   *string `json:"liaisonPersonPhone" db:"liaison_person_phone"`
	LiaisonPersonEmail   *string `json:"liaisonPersonEmail" db:"liaison_person_email"`
	CollaborationLevel   *string `json:"collaborationLevel" db:"collaboration_level"`
	Description          *string `json:"description" db:"description"`
	Logo                 *string `json:"logo" db:"logo"`
	Status               string  `json:"status" db:"status"`
}

type CreateGovernmentOrganizationRequest struct {
	Name                 string  `form:"name" binding:"required"`
	ParentMinistryOrBody *string `form:"parentMinistryOrBody"`
	Type                 string  `form:"type" binding:"required"`
	ActivityArea         string  `form:"activityArea" binding:"required"`
	OfficialWebsite      string  `form:"officialWebsite" binding:"required,url"`
	MainPhoneNumber      string  `form:"mainPhoneNumber" binding:"required"`
	FaxNumber            *string `form:"faxNumber"`
	OfficialEmail        *string `form:"officialEmail" validate:"omitempty,email"`
	State                string  `form:"state" binding:"required"`
	City                 string  `form:"city" binding:"required"`
	County               string  `form:"county" binding:"required"`
	CentralAddressDetail string  `form:"centralAddressDetail" binding:"required"`
	HeadPersonName       string  `form:"headPersonName" binding:"required"`
	LiaisonPersonName    *string `form:"liaisonPersonName"`
	LiaisonPersonPhone   *string `form:"liaisonPersonPhone"`
	LiaisonPersonEmail   *string `form:"liaisonPersonEmail"`
	CollaborationLevel   *string `form:"collaborationLevel"`
	Description          *string `form:"description"`
}

type UpdateGovernmentOrganizationRequest struct {
	Name                 *string `form:"name" db:"name"`
	ParentMinistryOrBody *string `form:"parentMinistryOrBody" db:"parent_ministry_or_body"`
	Type                 *string `form:"type" db:"type"`
	ActivityArea         *string `form:"activityArea" db:"activity_area"`
	OfficialWebsite      *string `form:"officialWebsite" db:"official_website"`
	MainPhoneNumber      *string `form:"mainPhoneNumber" db:"main_phone_number"`
	FaxNumber            *string `form:"faxNumber" db:"fax_number"`
	OfficialEmail        *string `form:"officialEmail" db:"official_email"`
	State                *string `form:"state" db:"state"`
	City                 *string `form:"city" db:"city"`
	County               *string `form:"county" db:"county"`
	CentralAddressDetail *string `form:"centralAddressDetail" db:"central_address_detail"`
	HeadPersonName       *string `form:"headPersonName" db:"head_person_name"`
	LiaisonPersonName    *string `form:"liaisonPersonName" db:"liaison_person_name"`
	LiaisonPersonPhone   *string `form:"liaisonPersonPhone" db:"liaison_person_phone"`
	LiaisonPersonEmail   *string `form:"liaisonPersonEmail" db:"liaison_person_email"`
	CollaborationLevel   *string `form:"collaborationLevel" db:"collaboration_level"`
	Description          *string `form:"description" db:"description"`
	Status               *string `form:"status" db:"status"`
}

// Association is a grassroots or professional association.
type Association struct {
	Base
	Name                  string  `json:"name" db:"name"`
	Type                  string  `json:"type" db:"type"`
	MainActivityArea      string  `json:"mainActivityArea" db:"main_activity_area"`
	MissionAndVision      string  `json:"missionAndVision" db:"mission_and_vision"`
	EstablishmentDate     *string `json:"establishmentDate" db:"establishment_date"`
	RegistrationNumber    *string `json:"registrationNumber" db:"registration_number"`
	ContactPhoneNumber    string  `json:"contactPhoneNumber" db:"contact_phone_number"`
	Email                 *string `json:"email" db:"email"`
	WebsiteOrSocialPage   *string `json:"websiteOrSocialPage" db:"website_or_social_page"`
	State                 *string `json:"state" db:"state"`
	City                  *string `json:"city" db:"city"`
	County                *string `json:"county" db:"county"`
	AddressDetail         *string `json:"addressDetail" db:"address_detail"`
	HeadPersonName        string  `json:"headPersonName" db:"head_person_name"`
	HeadPersonPhone       string  `json:"headPersonPhone" db:"head_person_phone"`
	EstimatedMembersCount *int    `json:"estimatedMembersCount" db:"estimated_members_count"`
	MembershipProcess     *string `json:"membershipProcess" db:"membership_process"`
	CurrentNeeds          *string `json:"currentNeeds" db:"current_needs"`
	Logo                  *string `json:"logo" db:"logo"`
	Description           *string `json:"description" db:"description"`
	Status                string  `json:"status" db:"status"`
}

type CreateAssociationRequest struct {
	Name                  string  `form:"name" binding:"required"`
	Type                  string  `form:"type" binding:"required"`
	MainActivityArea      string  `form:"mainActivityArea" binding:"required"`
	MissionAndVision      string  `form:"missionAndVision" binding:"required"`
	EstablishmentDate     *string `form:"establishmentDate"`
	RegistrationNumber    *string `form:"registrationNumber"`
	ContactPhoneNumber    string  `form:"contactPhoneNumber" binding:"required"`
	Email                 *string `form:"email" validate:"omitempty,email"`
	WebsiteOrSocialPage   *string `form:"websiteOrSocialPage"`
	State                 *string `form:"state"`
	City                  *string `form:"city"`
	County                *string `form:"county"`
	AddressDetail         *string `form:"addressDetail"`
	HeadPersonName        string  `form:"headPersonName" binding:"required"`
	HeadPersonPhone       string  `form:"headPersonPhone" binding:"required"`
	EstimatedMembersCount *int    `form:"estimatedMembersCount"`
	MembershipProcess     *string `form:"membershipProcess"`
	CurrentNeeds          *string `form:"currentNeeds"`
	Description           *string `form:"description"`
}

type UpdateAssociationRequest struct {
	Name                  *string `form:"name" db:"name"`
	Type                  *string `form:"type" db:"type"`
	MainActivityArea      *string `form:"mainActivityArea" db:"main_activity_area"`
	MissionAndVision      *string `form:"missionAndVision" db:"mission_and_vision"`
	EstablishmentDate     *string `form:"establishmentDate" db:"establishment_date"`
	RegistrationNumber    *string `form:"registrationNumber" db:"registration_number"`
	ContactPhoneNumber    *string `form:"contactPhoneNumber" db:"contact_phone_number"`
	Email                 *string `form:"email" db:"email"`
	WebsiteOrSocialPage   *string `form:"websiteOrSocialPage" db:"website_or_social_page"`
	State                 *string `form:"state" db:"state"`
	City                  *string `form:"city" db:"city"`
	County                *string `form:"county" db:"county"`
	AddressDetail         *string `form:"addressDetail" db:"address_detail"`
	HeadPersonName        *string `form:"headPersonName" db:"head_person_name"`
	HeadPersonPhone       *string `form:"headPersonPhone" db:"head_person_phone"`
	EstimatedMembersCount *int    `form:"estimatedMembersCount" db:"estimated_members_count"`
	MembershipProcess     *string `form:"membershipProcess" db:"membership_process"`
	CurrentNeeds          *string `form:"currentNeeds" db:"current_needs"`
	Description           *string `form:"description" db:"description"`
	Status                *string `form:"status" db:"status"`
}
