// Package validation provides struct-tag input validation for qtkit
// configuration using the validator library.
//
//	type Config struct {
//	    Surface string `validate:"required,oneof=Qt5Agg Qt5Cairo Qt4Agg Qt4Cairo"`
//	}
//	err := validation.ValidateStruct(cfg)
package validation
