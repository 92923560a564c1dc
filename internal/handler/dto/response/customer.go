package response

import (
	"orderflow/internal/usecase/readmodel"
)

type CustomerResponse struct {
	ID     string  `json:"id"`
	Email  string  `json:"email"`
	Name   string  `json:"name"`
	CEP    *string `json:"cep,omitempty"`
	State  *string `json:"state,omitempty"`
	City   *string `json:"city,omitempty"`
	Street *string `json:"street,omitempty"`
}

func FromCustomerRM(rm *readmodel.CustomerRM) CustomerResponse {
	return CustomerResponse{
		ID:     rm.ID.String(),
		Email:  rm.Email,
		Name:   rm.Name,
		CEP:    rm.CEP,
		State:  rm.State,
		City:   rm.City,
		Street: rm.Street,
	}
}

func FromCustomerList(items []*readmodel.CustomerRM) []CustomerResponse {
	res := make([]CustomerResponse, len(items))
	for i, it := range items {
		res[i] = FromCustomerRM(it)
	}
	return res
}
