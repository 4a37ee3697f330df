package jwt

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

func validateConfig(cfg Config) error {
	cfg.Issuer = strings.TrimSpace(cfg.Issuer)
	cfg.Audience = strings.TrimSpace(cfg.Audience)

	err := getValidator().Struct(cfg)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidSigningConfig, err)
	}
	fe := ve[0]
	switch fe.Field() {
	case "SecretKey":
		if fe.Tag() == "min" {
			return fmt.Errorf("%w: secret key must be at least %d characters long, got %d",
				ErrInvalidSigningConfig, MinSecretKeyLen, len(cfg.SecretKey))
		}
		return fmt.Errorf("%w: secret key is required", ErrInvalidSigningConfig)
	case "Issuer":
		return fmt.Errorf("%w: issuer is required", ErrInvalidSigningConfig)
	case "Audience":
		return fmt.Errorf("%w: audience is required", ErrInvalidSigningConfig)
	default:
		return fmt.Errorf("%w: %s failed %s", ErrInvalidSigningConfig, fe.Field(), fe.Tag())
	}
}
