package employee

import (
	"strings"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name     string  `json:"name" validate:"required,max=255"`
	Position string  `json:"position" validate:"required,max=255"`
	Email    string  `json:"email" validate:"required,email"`
	Mobile   string  `json:"mob" validate:"required"`
	Avatar   *string `json:"avatar,omitempty" validate:"omitempty,url"`
}

func (r *CreateEmployeeRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Position = strings.TrimSpace(r.Position)
	r.Email = strings.TrimSpace(r.Email)
	r.Mobile = strings.TrimSpace(r.Mobile)

	errs := validator.Struct(r)

	if r.Mobile != "" && !validator.IsValidMobileNumber(r.Mobile) {
		errs = append(errs, validator.ValidationError{
			Field:   "mob",
			Message: "mob must be 7-15 digits, optionally starting with +",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Position  string `json:"position"`
	Email     string `json:"email"`
	Mobile    string `json:"mobile"`
	AvatarURL string `json:"avatar_url"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		Position:  e.Position,
		Email:     e.Email,
		Mobile:    e.Mobile,
		AvatarURL: e.AvatarURL(),
	}
}

// EmployeeOption is one entry of an employee picker, labelled "Name - Position".
type EmployeeOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

func NewEmployeeOption(e Employee) EmployeeOption {
	return EmployeeOption{ID: e.ID, Label: e.Name + " - " + e.Position}
}
