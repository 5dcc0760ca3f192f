package textmeasure

import (
	"github.com/matzehuels/endlabel/pkg/errors"
	"github.com/matzehuels/endlabel/pkg/legend"
)

// Measurer names accepted by [ByName].
const (
	NameEstimate = "estimate"
	NameGoFont   = "gofont"
)

// Names lists the accepted measurer names.
var Names = []string{NameEstimate, NameGoFont}

// ByName returns the measurer registered under name. An empty name selects
// the estimator.
func ByName(name string) (legend.Measurer, error) {
	switch name {
	case "", NameEstimate:
		return NewEstimator(), nil
	case NameGoFont:
		return NewFace()
	}
	return nil, errors.New(errors.ErrCodeInvalidInput, "unknown measurer %q (must be estimate or gofont)", name)
}
