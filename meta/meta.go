// meta/meta.go
package meta

// DefaultWindow is the n-gram window size used when none is configured.
const DefaultWindow = 3

// ExperimentRounds is the number of rounds per experiment match.
const ExperimentRounds = 300

// ExperimentWindows lists the predictor window sizes evaluated by experiments.
var ExperimentWindows = []int{1, 2, 3, 4}
