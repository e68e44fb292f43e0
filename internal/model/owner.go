package model

// Owner is the shared user profile embedded in the person-like resources
// (patients, benefactors, doctors, health assists). It is keyed by the
// national code, which several child records may reference.
type Owner struct {
	ID           int64   `json:"id" db:"id"`
	Username     string  `json:"username" db:"username"`
	FirstName    string  `json:"first_name" db:"first_name"`
	LastName     string  `json:"last_name" db:"last_name"`
	Email        string  `json:"email" db:"email"`
	PhoneNumber  string  `json:"phone_number" db:"phone_number"`
	NationalCode string  `json:"national_code" db:"national_code"`
	Gender       string  `json:"gender" db:"gender"`
	Job          *string `json:"job" db:"job"`
	State        string  `json:"state" db:"state"`
	City         string  `json:"city" db:"city"`
	County       string  `json:"county" db:"county"`
	HomeAddress  string  `json:"homeAddress" db:"home_address"`
	JobAddress   *string `json:"jobAddress" db:"job_address"`
	HowKnow      string  `json:"howKnow" db:"how_know"`
	Education    string  `json:"education" db:"education"`
	UserType     string  `json:"userType" db:"user_type"`
}

// OwnerInput is the flattened owner portion of a person create payload.
// The backing owner row is created on first use and reused afterwards,
// matched by national code.
type OwnerInput struct {
	FirstName    string `json:"first_name" form:"first_name" binding:"required"`
	LastName     string `json:"last_name" form:"last_name" binding:"required"`
	PhoneNumber  string `json:"phone_number" form:"phone_number" binding:"required" validate:"mobile"`
	NationalCode string `json:"national_code" form:"national_code" binding:"required" validate:"national_code"`
	Gender       string `json:"gender" form:"gender" binding:"required"`
	State        string `json:"state" form:"state" binding:"required"`
	City         string `json:"city" form:"city" binding:"required"`
	County       string `json:"county" form:"county" binding:"required"`
	HomeAddress  string `json:"homeAddress" form:"homeAddress" binding:"required"`
	HowKnow      string `json:"howKnow" form:"howKnow" binding:"required"`
	Education    string `json:"education" form:"education" binding:"required"`
	UserType     string `json:"userType" form:"userType" binding:"required"`
}

// OwnerPatch carries the owner fields that may be edited through a child
// entity's form. Nil means "leave untouched".
type OwnerPatch struct {
	FirstName   *string `json:"first_name" form:"first_name" db:"first_name"`
	LastName    *string `json:"last_name" form:"last_name" db:"last_name"`
	PhoneNumber *string `json:"phone_number" form:"phone_number" db:"phone_number"`
	Gender      *string `json:"gender" form:"gender" db:"gender"`
	State       *string `json:"state" form:"state" db:"state"`
	City        *string `json:"city" form:"city" db:"city"`
	County      *string `json:"county" form:"county" db:"county"`
	HomeAddress *string `json:"homeAddress" form:"homeAddress" db:"home_address"`
	HowKnow     *string `json:"howKnow" form:"howKnow" db:"how_know"`
	Education   *string `json:"education" form:"education" db:"education"`
	UserType    *string `json:"userType" form:"userType" db:"user_type"`
}

// Empty reports whether the patch holds no changes.
func (p *OwnerPatch) Empty() bool {
	if p == nil {
		return true
	}
	return p.FirstName == nil && p.LastName == nil && p.PhoneNumber == nil &&
		p.Gender == nil && p.State == nil && p.City == nil && p.County == nil &&
		p.HomeAddress == nil && p.HowKnow == nil && p.Education == nil && p.UserType == nil
}
