package validation

import (
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("positive_duration", PositiveDuration)
	_ = v.RegisterValidation("origin_list", OriginList)
}

// New returns a validator with the custom rules already registered.
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// PositiveDuration validates that a time.Duration field is greater than zero
func PositiveDuration(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(time.Duration)
	if !ok {
		return false
	}
	return d > 0
}

// OriginList validates a slice of CORS origins. Each entry is either the
// wildcard "*" or an absolute http(s) origin without a path.
func OriginList(fl validator.FieldLevel) bool {
	origins, ok := fl.Field().Interface().([]string)
	if !ok {
		return false
	}
	for _, origin := range origins {
		if origin == "*" {
			continue
		}
		u, err := url.Parse(origin)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return false
		}
		if strings.Trim(u.Path, "/") != "" {
			return false
		}
	}
	return true
}
