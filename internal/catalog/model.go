package catalog

// ModelName is the closed set of ML model names accepted as a path
// parameter. Anything outside the set is rejected before handler
// logic runs.
type ModelName string

const (
	ModelAlexnet ModelName = "alexnet"
	ModelResnet  ModelName = "resnet"
	ModelLenet   ModelName = "lenet"
)

// ModelNames lists the allowed values, in declaration order.
func ModelNames() []string {
	return []string{
		string(ModelAlexnet),
		string(ModelResnet),
		string(ModelLenet),
	}
}

// Message returns the demonstration message for a model name. Only
// alexnet and lenet have dedicated messages; every other member of the
// set gets the generic one.
func (m ModelName) Message() string {
	switch m {
	case ModelAlexnet:
		return "Deep Learning FTW!"
	case ModelLenet:
		return "LeCNN all the images"
	default:
		return "Have some residuals"
	}
}
