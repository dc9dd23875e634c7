package m_customer

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the customers table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// Columns returns all column names in insertion order.
func (m *Model) Columns() []string {
	return []string{
		CustomerID,
		Name,
		Email,
		RegistrationDate,
	}
}

// InsertMut creates a Spanner mutation for inserting a customer.
// It fails the commit if the key already exists; the loader filters
// duplicates before building mutations.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		m.Columns(),
		[]interface{}{
			data.CustomerID,
			data.Name,
			data.Email,
			data.RegistrationDate,
		},
	)
}

// DeleteMut creates a Spanner mutation for deleting a customer.
func (m *Model) DeleteMut(customerID int64) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{customerID})
}
