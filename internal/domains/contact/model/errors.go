package model

import "errors"

var ErrContactNotFound = errors.New("contact not found")
