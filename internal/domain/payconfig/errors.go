package payconfig

import "errors"

var (
	ErrSettingNotFound = errors.New("setting not found")
)
