package model

import "errors"

var ErrCareerNotFound = errors.New("application not found")
