package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"gitlab.com/tinyland/lab/pulse-ui/pkg/skeleton"
)

// MinPulseInterval is the fastest shimmer a config may ask for.
const MinPulseInterval = 50 * time.Millisecond

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	logLevels = map[string]struct{}{"debug": {}, "info": {}, "warn": {}, "error": {}}
)

// validatorInstance configures and returns the shared validator.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Report fields by their TOML key.
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("toml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("skeleton_type", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return s == "" || skeleton.Type(s).Known()
		})

		_ = v.RegisterValidation("log_level", func(fl validator.FieldLevel) bool {
			_, ok := logLevels[strings.ToLower(fl.Field().String())]
			return ok
		})

		_ = v.RegisterValidation("layout_preset", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			for _, name := range PresetNames() {
				if s == name {
					return true
				}
			}
			return false
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks cfg and returns every problem found, joined.
func (c *Config) Validate() error {
	var errs []error

	if err := validatorInstance().Struct(c); err != nil {
		var ves validator.ValidationErrors
		if !errors.As(err, &ves) {
			return fmt.Errorf("config: %w", err)
		}
		for _, fe := range ves {
			errs = append(errs, fieldError(fe))
		}
	}

	if d := c.Skeleton.PulseInterval.Duration; d != 0 && d < MinPulseInterval {
		errs = append(errs, fmt.Errorf("config: skeleton.pulse_interval %s is below %s", d, MinPulseInterval))
	}

	return errors.Join(errs...)
}

func fieldError(fe validator.FieldError) error {
	field := tomlFieldName(fe)
	switch fe.Tag() {
	case "oneof":
		return fmt.Errorf("config: %s must be one of [%s], got %q", field, fe.Param(), fe.Value())
	case "skeleton_type":
		return fmt.Errorf("config: %s: unknown skeleton type %q", field, fe.Value())
	case "log_level":
		return fmt.Errorf("config: %s: unknown log level %q", field, fe.Value())
	case "layout_preset":
		return fmt.Errorf("config: %s: unknown preset %q", field, fe.Value())
	default:
		return fmt.Errorf("config: %s failed validation for tag '%s'", field, fe.Tag())
	}
}

// tomlFieldName drops the root type from the namespace:
// "Config.skeleton.count" becomes "skeleton.count".
func tomlFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		ns = ns[i+1:]
	}
	return strings.ToLower(ns)
}
