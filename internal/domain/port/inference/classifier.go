package inference

import "context"

// Classifier is an opaque pre-trained model: one feature column in, one
// category id out. Implementations must be stateless and safe for concurrent
// use; they are constructed once at startup and shared by reference.
type Classifier interface {
	// Predict runs inference over the rows of a single feature column and
	// returns the predicted category id. The context bounds the call;
	// implementations must respect cancellation.
	Predict(ctx context.Context, rows []string) (int, error)
}

// Registry resolves a catalog model name to its classifier
type Registry interface {
	// Resolve returns the classifier registered under the model name
	//
	// Possible errors:
	// - ErrModelNotFound: If no classifier is registered under the name
	Resolve(modelName string) (Classifier, error)
}
