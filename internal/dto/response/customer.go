package response

import (
	"tech-store/internal/data/entity"
)

type CustomerResponse struct {
	ID          string       `json:"id"`
	User        UserResponse `json:"user"`
	DateOfBirth *string      `json:"date_of_birth,omitempty"`
}

func CustomerToResponse(customer *entity.Customer, user *entity.User) *CustomerResponse {
	resp := &CustomerResponse{
		ID:   customer.ID.String(),
		User: UserToResponse(user),
	}

	if customer.DateOfBirth != nil {
		dob := customer.DateOfBirth.Format("2006-01-02")
		resp.DateOfBirth = &dob
	}

	return resp
}
