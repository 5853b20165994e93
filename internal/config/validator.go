package config

import (
	"github.com/go-playground/validator/v10"

	"github.com/osse101/unlimited-inventories/internal/validation"
)

// validate is shared by Config and Settings; validator caches struct metadata
var validate = validator.New(validator.WithRequiredStructEnabled())

// schemaValidator checks the settings file shape before it is decoded
var schemaValidator = validation.NewSchemaValidator()
