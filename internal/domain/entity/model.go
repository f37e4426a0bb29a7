package entity

// Model is a catalog entry for a prediction model with a per-call cost
type Model struct {
	ID   uint64
	Name string
	cost int64 // Cost per prediction call in cents (private)
}

// NewModel creates a catalog entry with its cost in cents
func NewModel(id uint64, name string, costInCents int64) *Model {
	return &Model{
		ID:   id,
		Name: name,
		cost: costInCents,
	}
}

// Cost returns the per-call cost in cents (for internal use)
func (m *Model) Cost() int64 {
	return m.cost
}

// GetCost returns the cost as a string with 2 decimal places
func (m *Model) GetCost() string {
	return AmountInCentsToString(m.cost)
}
