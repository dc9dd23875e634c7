package m_customer

import (
	"cloud.google.com/go/spanner"
)

// Data represents the database model for the customers table.
type Data struct {
	CustomerID       int64              `spanner:"customer_id"`
	Name             string             `spanner:"name"`
	Email            spanner.NullString `spanner:"email"`
	RegistrationDate spanner.NullTime   `spanner:"registration_date"`
}
