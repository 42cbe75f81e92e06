package model

import "errors"

var ErrUnknownFormat = errors.New("unknown model format")
