package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report fields by their YAML keys
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks every field and cross-field rule and returns a single
// error listing all violations. Each violation wraps ErrInvalidConfig.
func (c *Config) Validate() error {
	var errs error

	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		for _, fe := range verrs {
			errs = multierr.Append(errs, fieldError(fe))
		}
	}

	if c.GA.Elites >= c.GA.Population && c.GA.Population >= 2 {
		errs = multierr.Append(errs, fmt.Errorf("%w: ga.elites (%d) must be less than ga.population (%d)",
			ErrInvalidConfig, c.GA.Elites, c.GA.Population))
	}

	hasTable := len(c.Problem.Distances) > 0
	hasPoints := len(c.Problem.Locations) > 0
	switch {
	case hasTable && hasPoints:
		errs = multierr.Append(errs, fmt.Errorf("%w: problem.distances and problem.locations are mutually exclusive", ErrInvalidConfig))
	case !hasTable && !hasPoints:
		errs = multierr.Append(errs, fmt.Errorf("%w: problem needs distances or locations", ErrInvalidConfig))
	default:
		if _, err := c.DistanceMatrix(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%w: problem: %w", ErrInvalidConfig, err))
		}
	}

	return errs
}

func fieldError(fe validator.FieldError) error {
	// drop the root struct name: "Config.ga.population" -> "ga.population"
	field := fe.Namespace()
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}
	rule := fe.Tag()
	if fe.Param() != "" {
		rule += "=" + fe.Param()
	}
	return fmt.Errorf("%w: %s is %v, must satisfy %s", ErrInvalidConfig, field, fe.Value(), rule)
}
