package model

// PrivateCompany is a partnering private business. Always submitted as
// multipart because of the three optional attachments.
type PrivateCompany struct {
	Base
	Name                 string  `json:"name" db:"name"`
	YearFound            int     `json:"yearFound" db:"year_found"`
	License              bool    `json:"license" db:"license"`
	YearStart            int     `json:"yearStart" db:"year_start"`
	YearLicense          *int    `json:"yearLicense" db:"year_license"`
	LicenseReference     string  `json:"licenseReference" db:"license_reference"`
	Activity             string  `json:"activity" db:"activity"`
	SpecializedArea      string  `json:"specializedArea" db:"specialized_area"`
	TargetCommunity      string  `json:"targetCommunity" db:"target_community"`
	ShareableFeatures    string  `json:"shareableFeatures" db:"shareable_features"`
	NameCeo              string  `json:"nameCeo" db:"name_ceo"`
	PhoneNumberCeo       string  `json:"phoneNumberCeo" db:"phone_number_ceo"`
	NameCeo2             *string `json:"nameCeo2" db:"name_ceo2"`
	PhoneNumberCeo2      string  `json:"phoneNumberCeo2" db:"phone_number_ceo2"`
	LandLineNumber       string  `json:"landLineNumber" db:"land_line_number"`
	State                string  `json:"state" db:"state"`
	City                 string  `json:"city" db:"city"`
	County               string  `json:"county" db:"county"`
	ResidentialAddress   string  `json:"residentialAddress" db:"residential_address"`
	WorkplaceAddress     string  `json:"workplaceAddress" db:"workplace_address"`
	ScopeActivity        string  `json:"scopeActivity" db:"scope_activity"`
	NameRepresentative   string  `json:"nameRepresentative" db:"name_representative"`
	MobileRepresentative string  `json:"mobileRepresentative" db:"mobile_representative"`
	MembershipRequest    *string `json:"membershipRequest" db:"membership_request"`
	ActivityLicense      *string `json:"activityLicense" db:"activity_license"`
	CollectionLogo       *string `json:"collectionLogo" db:"collection_logo"`
}

// CreatePrivateCompanyRequest carries the non-file fields of the multipart
// form. Attachments are read from the request separately.
type CreatePrivateCompanyRequest struct {
	Name                 string  `form:"name" binding:"required"`
	YearFound            int     `form:"yearFound" binding:"required"`
	License              bool    `form:"license"`
	YearStart            int     `form:"yearStart" binding:"required"`
	YearLicense          *int    `form:"yearLicense"`
	LicenseReference     string  `form:"licenseReference"`
	Activity             string  `form:"activity" binding:"required"`
	SpecializedArea      string  `form:"specializedArea"`
	TargetCommunity      string  `form:"targetCommunity"`
	ShareableFeatures    string  `form:"shareableFeatures"`
	NameCeo              string  `form:"nameCeo" binding:"required"`
	PhoneNumberCeo       string  `form:"phoneNumberCeo" binding:"required" validate:"mobile"`
	NameCeo2             *string `form:"nameCeo2"`
	PhoneNumberCeo2      string  `form:"phoneNumberCeo2"`
	LandLineNumber       string  `form:"landLineNumber"`
	State                string  `form:"state" binding:"required"`
	City                 string  `form:"city" binding:"required"`
	County               string  `form:"county" binding:"required"`
	ResidentialAddress   string  `form:"residentialAddress"`
	WorkplaceAddress     string  `form:"workplaceAddress"`
	ScopeActivity        string  `form:"scopeActivity"`
	NameRepresentative   string  `form:"nameRepresentative"`
	MobileRepresentative string  `form:"mobileRepresentative"`
}

// Validate enforces the cross-field rules the form applies before submit;
// the server repeats them because multipart clients are not the only callers.
func (r *CreatePrivateCompanyRequest) Validate() []FieldError {
	return privateCompanyRules(r.YearFound, r.YearStart, r.License, r.LicenseReference, r.YearLicense)
}

func privateCompanyRules(yearFound, yearStart int, license bool, licenseReference string, yearLicense *int) []FieldError {
	var errs []FieldError
	if yearStart < yearFound {
		errs = append(errs, FieldError{Field: "yearStart", Message: "start year cannot precede the founding year"})
	}
	if license {
		if licenseReference == "" {
			errs = append(errs, FieldError{Field: "licenseReference", Message: "license reference is required when licensed"})
		}
		if yearLicense != nil && *yearLicense < yearFound {
			errs = append(errs, FieldError{Field: "yearLicense", Message: "license year cannot precede the founding year"})
		}
	}
	return errs
}

type UpdatePrivateCompanyRequest struct {
	Name                 *string `form:"name" db:"name"`
	YearFound            *int    `form:"yearFound" db:"year_found"`
	License              *bool   `form:"license" db:"license"`
	YearStart            *int    `form:"yearStart" db:"year_start"`
	YearLicense          *int    `form:"yearLicense" db:"year_license"`
	LicenseReference     *string `form:"licenseReference" db:"license_reference"`
	Activity             *string `form:"activity" db:"activity"`
	SpecializedArea      *string `form:"specializedArea" db:"specialized_area"`
	TargetCommunity      *string `form:"targetCommunity" db:"target_community"`
	ShareableFeatures    *string `form:"shareableFeatures" db:"shareable_features"`
	NameCeo              *string `form:"nameCeo" db:"name_ceo"`
	PhoneNumberCeo       *string `form:"phoneNumberCeo" db:"phone_number_ceo"`
	NameCeo2             *string `form:"nameCeo2" db:"name_ceo2"`
	PhoneNumberCeo2      *string `form:"phoneNumberCeo2" db:"phone_number_ceo2"`
	LandLineNumber       *string `form:"landLineNumber" db:"land_line_number"`
	State                *string `form:"state" db:"state"`
	City                 *string `form:"city" db:"city"`
	County               *string `form:"county" db:"county"`
	ResidentialAddress   *string `form:"residentialAddress" db:"residential_address"`
	WorkplaceAddress     *string `form:"workplaceAddress" db:"workplace_address"`
	ScopeActivity        *string `form:"scopeActivity" db:"scope_activity"`
	NameRepresentative   *string `form:"nameRepresentative" db:"name_representative"`
	MobileRepresentative *string `form:"mobileRepresentative" db:"mobile_representative"`
}

// Validate checks the cross-field rules over the fields the patch itself
// carries. Rules that depend on a field the patch omits need the stored
// record and are re-run server-side through ValidateAgainst.
func (r *UpdatePrivateCompanyRequest) Validate() []FieldError {
	var errs []FieldError
	if r.YearStart != nil && r.YearFound != nil && *r.YearStart < *r.YearFound {
		errs = append(errs, FieldError{Field: "yearStart", Message: "start year cannot precede the founding year"})
	}
	if r.License != nil && *r.License {
		if r.LicenseReference != nil && *r.LicenseReference == "" {
			errs = append(errs, FieldError{Field: "licenseReference", Message: "license reference is required when licensed"})
		}
		if r.YearLicense != nil && r.YearFound != nil && *r.YearLicense < *r.YearFound {
			errs = append(errs, FieldError{Field: "yearLicense", Message: "license year cannot precede the founding year"})
		}
	}
	return errs
}

// ValidateAgainst resolves the patch over the stored record and applies the
// full rule set to the values the row would hold after the update.
func (r *UpdatePrivateCompanyRequest) ValidateAgainst(existing *PrivateCompany) []FieldError {
	yearFound := existing.YearFound
	if r.YearFound != nil {
		yearFound = *r.YearFound
	}
	yearStart := existing.YearStart
	if r.YearStart != nil {
		yearStart = *r.YearStart
	}
	license := existing.License
	if r.License != nil {
		license = *r.License
	}
	licenseReference := existing.LicenseReference
	if r.LicenseReference != nil {
		licenseReference = *r.LicenseReference
	}
	yearLicense := existing.YearLicense
	if r.YearLicense != nil {
		yearLicense = r.YearLicense
	}
	return privateCompanyRules(yearFound, yearStart, license, licenseReference, yearLicense)
}

// FieldError pairs a form field with the rule it broke.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
