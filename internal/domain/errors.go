package domain

import "errors"

var (
	ErrPreferenceNotFound  = errors.New("preference not found")
	ErrRoleNotCustomizable = errors.New("color role is not customizable")
	ErrUnknownColorRole    = errors.New("unknown color role")
)
