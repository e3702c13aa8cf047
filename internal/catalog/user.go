package catalog

// UserIn is the request body for user creation. It carries the
// credential, which must never appear in a response.
type UserIn struct {
	Username string  `json:"username" validate:"required,max=64"`
	Password string  `json:"password" validate:"required"`
	FullName *string `json:"full_name,omitempty" validate:"omitempty,max=512"`

	// TempVal, when present, must be greater than 1. Absence is fine.
	TempVal *int `json:"temp_val,omitempty" validate:"omitempty,gt=1"`
}

// Validate applies the declared constraints.
func (u *UserIn) Validate() error {
	return validate.Struct(u)
}

// UserOut is the response model for user creation: the input filtered
// down to its public fields. The password is dropped here, not in the
// handler, so no code path can echo it by accident.
type UserOut struct {
	Username string  `json:"username"`
	FullName *string `json:"full_name,omitempty"`
	TempVal  *int    `json:"temp_val,omitempty"`
}

// Out shapes the user into its response model.
func (u *UserIn) Out() UserOut {
	return UserOut{
		Username: u.Username,
		FullName: u.FullName,
		TempVal:  u.TempVal,
	}
}
