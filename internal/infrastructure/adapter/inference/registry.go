package inference

import (
	errs "github.com/nsokolova/prediction-service/internal/domain/error"
	"github.com/nsokolova/prediction-service/internal/domain/port/inference"
)

// StaticRegistry maps catalog model names to their classifiers.
// The mapping is fixed at startup; adding a model means registering a new
// classifier here.
type StaticRegistry struct {
	classifiers map[string]inference.Classifier
}

// NewStaticRegistry creates a registry over the given name-to-classifier map
func NewStaticRegistry(classifiers map[string]inference.Classifier) *StaticRegistry {
	return &StaticRegistry{classifiers: classifiers}
}

// NewDefaultRegistry builds the registry for the three catalog models from
// their configured model server endpoints
func NewDefaultRegistry(randomForestURL, svcURL, catboostURL string) *StaticRegistry {
	return NewStaticRegistry(map[string]inference.Classifier{
		"rf_model":       NewHTTPClassifier("rf_model", randomForestURL),
		"svc_model":      NewHTTPClassifier("svc_model", svcURL),
		"catboost_model": NewHTTPClassifier("catboost_model", catboostURL),
	})
}

// Resolve returns the classifier registered under the model name
func (r *StaticRegistry) Resolve(modelName string) (inference.Classifier, error) {
	classifier, ok := r.classifiers[modelName]
	if !ok {
		return nil, errs.ErrModelNotFound
	}
	return classifier, nil
}
