package domain

import "errors"

var (
	ErrSessionNotFound        = errors.New("import session not found")
	ErrRunNotFound            = errors.New("import run not found")
	ErrParse                  = errors.New("invalid import file")
	ErrReferenceLoad          = errors.New("failed to load categories and wallets")
	ErrReferencesNotLoaded    = errors.New("categories and wallets are not loaded")
	ErrNoFile                 = errors.New("no file parsed")
	ErrRequiredFieldsUnmapped = errors.New("required fields are not mapped")
	ErrUnknownField           = errors.New("unknown field")
	ErrUnknownHeader          = errors.New("header not present in file")
	ErrImportInProgress       = errors.New("import already in progress")
	ErrUnauthorized           = errors.New("unauthorized")
)
