package handler

import (
	"crm/internal/domain/entity"
	"crm/internal/usecase"
)

// AddressRequest represents the body for creating an address and the nested addresses of a new customer
type AddressRequest struct {
	AddressLine1 string `json:"addressLine1" validate:"required,max=80"`
	AddressLine2 string `json:"addressLine2" validate:"max=80"`
	Town         string `json:"town" validate:"required,max=50"`
	County       string `json:"county" validate:"max=50"`
	Postcode     string `json:"postcode" validate:"required,max=10"`
	Country      string `json:"country" validate:"max=50"`
	IsMain       bool   `json:"isMain"`
}

// UpdateAddressRequest represents the body for replacing an address
type UpdateAddressRequest struct {
	ID           int64  `json:"id"`
	CustomerID   int64  `json:"customerId"`
	AddressLine1 string `json:"addressLine1" validate:"required,max=80"`
	AddressLine2 string `json:"addressLine2" validate:"max=80"`
	Town         string `json:"town" validate:"required,max=50"`
	County       string `json:"county" validate:"max=50"`
	Postcode     string `json:"postcode" validate:"required,max=10"`
	Country      string `json:"country" validate:"max=50"`
	IsMain       bool   `json:"isMain"`
}

// CreateCustomerRequest represents the body for creating a customer
type CreateCustomerRequest struct {
	Title        string            `json:"title" validate:"required,max=20"`
	Forename     string            `json:"forename" validate:"required,max=50"`
	Surname      string            `json:"surname" validate:"required,max=50"`
	EmailAddress string            `json:"emailAddress" validate:"required,email,max=75"`
	MobileNo     string            `json:"mobileNo" validate:"required,max=15,phone"`
	IsActive     *bool             `json:"isActive"`
	Addresses    []*AddressRequest `json:"addresses" validate:"omitempty,dive,required"`
}

// UpdateCustomerRequest represents the body for replacing a customer's scalar fields
type UpdateCustomerRequest struct {
	ID           int64  `json:"id"`
	Title        string `json:"title" validate:"required,max=20"`
	Forename     string `json:"forename" validate:"required,max=50"`
	Surname      string `json:"surname" validate:"required,max=50"`
	EmailAddress string `json:"emailAddress" validate:"required,email,max=75"`
	MobileNo     string `json:"mobileNo" validate:"required,max=15,phone"`
	IsActive     *bool  `json:"isActive"`
}

// AddressResponse is the JSON form of an address
type AddressResponse struct {
	ID           int64  `json:"id"`
	CustomerID   int64  `json:"customerId"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	Town         string `json:"town"`
	County       string `json:"county"`
	Postcode     string `json:"postcode"`
	Country      string `json:"country"`
	IsMain       bool   `json:"isMain"`
}

// CustomerResponse is the JSON form of a customer with its addresses
type CustomerResponse struct {
	ID           int64              `json:"id"`
	Title        string             `json:"title"`
	Forename     string             `json:"forename"`
	Surname      string             `json:"surname"`
	EmailAddress string             `json:"emailAddress"`
	MobileNo     string             `json:"mobileNo"`
	IsActive     bool               `json:"isActive"`
	Addresses    []*AddressResponse `json:"addresses"`
}

func (r *AddressRequest) toInput() *usecase.AddressInput {
	return &usecase.AddressInput{
		AddressLine1: r.AddressLine1,
		AddressLine2: r.AddressLine2,
		Town:         r.Town,
		County:       r.County,
		Postcode:     r.Postcode,
		Country:      r.Country,
		IsMain:       r.IsMain,
	}
}

func (r *CreateCustomerRequest) toInput() *usecase.CreateCustomerInput {
	addresses := make([]*usecase.AddressInput, 0, len(r.Addresses))
	for _, address := range r.Addresses {
		addresses = append(addresses, address.toInput())
	}

	return &usecase.CreateCustomerInput{
		Title:        r.Title,
		Forename:     r.Forename,
		Surname:      r.Surname,
		EmailAddress: r.EmailAddress,
		MobileNo:     r.MobileNo,
		IsActive:     r.IsActive,
		Addresses:    addresses,
	}
}

func (r *UpdateCustomerRequest) toInput() *usecase.UpdateCustomerInput {
	return &usecase.UpdateCustomerInput{
		ID:           r.ID,
		Title:        r.Title,
		Forename:     r.Forename,
		Surname:      r.Surname,
		EmailAddress: r.EmailAddress,
		MobileNo:     r.MobileNo,
		IsActive:     r.IsActive,
	}
}

func (r *UpdateAddressRequest) toInput() *usecase.UpdateAddressInput {
	return &usecase.UpdateAddressInput{
		ID:         r.ID,
		CustomerID: r.CustomerID,
		AddressInput: usecase.AddressInput{
			AddressLine1: r.AddressLine1,
			AddressLine2: r.AddressLine2,
			Town:         r.Town,
			County:       r.County,
			Postcode:     r.Postcode,
			Country:      r.Country,
			IsMain:       r.IsMain,
		},
	}
}

func newAddressResponse(address *entity.Address) *AddressResponse {
	return &AddressResponse{
		ID:           address.ID,
		CustomerID:   address.CustomerID,
		AddressLine1: address.AddressLine1,
		AddressLine2: address.AddressLine2,
		Town:         address.Town,
		County:       address.County,
		Postcode:     address.Postcode,
		Country:      address.Country,
		IsMain:       address.IsMain,
	}
}

func newAddressResponses(addresses []*entity.Address) []*AddressResponse {
	out := make([]*AddressResponse, 0, len(addresses))
	for _, address := range addresses {
		out = append(out, newAddressResponse(address))
	}

	return out
}

func newCustomerResponse(customer *entity.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:           customer.ID,
		Title:        customer.Title,
		Forename:     customer.Forename,
		Surname:      customer.Surname,
		EmailAddress: customer.EmailAddress,
		MobileNo:     customer.MobileNo,
		IsActive:     customer.IsActive,
		Addresses:    newAddressResponses(customer.Addresses),
	}
}

func newCustomerResponses(customers []*entity.Customer) []*CustomerResponse {
	out := make([]*CustomerResponse, 0, len(customers))
	for _, customer := range customers {
		out = append(out, newCustomerResponse(customer))
	}

	return out
}
