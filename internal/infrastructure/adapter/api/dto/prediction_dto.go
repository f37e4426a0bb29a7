package dto

// ModelItem is one catalog entry in the models listing
type ModelItem struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Cost string `json:"cost"`
}

// ModelListResponse wraps the catalog listing
type ModelListResponse struct {
	Models []ModelItem `json:"models"`
}

// PredictRequest is the JSON body for POST /predict
type PredictRequest struct {
	Data []string `json:"data" binding:"required,min=1"`
}

// PredictResponse is the outcome of a prediction call
type PredictResponse struct {
	CategoryID   int    `json:"category_id"`
	CategoryName string `json:"category_name"`
}

// PredictionItem is one row of a user's prediction history
type PredictionItem struct {
	ID               uint64 `json:"id"`
	PredictedModelID uint64 `json:"predicted_model_id"`
	InputData        string `json:"input_data"`
	Result           string `json:"result"`
}
