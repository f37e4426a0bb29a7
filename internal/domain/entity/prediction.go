package entity

// UnknownCategory is the label used for category ids absent from the mapping
const UnknownCategory = "Unknown Category"

// categoryMapping translates classifier output ids to human-readable labels.
// The table is fixed; classifiers are trained against these exact ids.
var categoryMapping = map[int]string{
	2612: "Mobile Phones",
	2614: "TVs",
	2615: "CPUs",
	2617: "Digital Cameras",
	2618: "Microwaves",
	2619: "Dishwashers",
	2620: "Washing Machines",
	2621: "Freezers",
	2622: "Fridge Freezers",
	2623: "Fridges",
}

// CategoryLabel maps a classifier category id to its label
func CategoryLabel(categoryID int) string {
	if label, ok := categoryMapping[categoryID]; ok {
		return label
	}
	return UnknownCategory
}

// Prediction is one recorded inference result for a single input row.
// Rows are append-only: created after a successful debit and inference call,
// never updated afterwards.
type Prediction struct {
	ID         uint64
	UserID     uint64
	ModelID    uint64
	InputData  string
	OutputData string
}
