package m_customer

// Field name constants for the customers table.
// These provide type-safe field references and prevent typos.
const (
	TableName = "customers"

	CustomerID       = "customer_id"
	Name             = "name"
	Email            = "email"
	RegistrationDate = "registration_date"
)
