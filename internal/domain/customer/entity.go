package customer

import (
	"github.com/google/uuid"
)

// Address is a resolved postal-code lookup result.
type Address struct {
	Code   string
	State  string
	City   string
	Street string
}

// Customer is keyed by email: one record per address, created on the first
// order and merged on later ones. Never deleted by the ingestion pipeline.
type Customer struct {
	id     uuid.UUID
	email  string
	name   string
	cep    *string
	state  *string
	city   *string
	street *string
}

func New(email, name string) *Customer {
	return &Customer{
		id:    uuid.New(),
		email: email,
		name:  name,
	}
}

func Reconstruct(id uuid.UUID, email, name string, cep, state, city, street *string) *Customer {
	return &Customer{
		id:     id,
		email:  email,
		name:   name,
		cep:    cep,
		state:  state,
		city:   city,
		street: street,
	}
}

func (c *Customer) ID() uuid.UUID   { return c.id }
func (c *Customer) Email() string   { return c.email }
func (c *Customer) Name() string    { return c.name }
func (c *Customer) CEP() *string    { return c.cep }
func (c *Customer) State() *string  { return c.state }
func (c *Customer) City() *string   { return c.city }
func (c *Customer) Street() *string { return c.street }

// Rename merges an updated name, reporting whether anything changed.
func (c *Customer) Rename(name string) bool {
	if c.name == name {
		return false
	}
	c.name = name
	return true
}

// ApplyAddress merges all resolved address fields at once.
func (c *Customer) ApplyAddress(a Address) {
	c.cep = &a.Code
	c.state = &a.State
	c.city = &a.City
	c.street = &a.Street
}

// HasIncompleteAddress reports a stored postal code whose resolved fields
// are missing, the state a record is left in when an earlier lookup never
// completed. Such records are re-resolved on the next order.
func (c *Customer) HasIncompleteAddress() bool {
	if c.cep == nil || *c.cep == "" {
		return false
	}
	return isBlank(c.state) || isBlank(c.city) || isBlank(c.street)
}

func isBlank(s *string) bool {
	return s == nil || *s == ""
}
