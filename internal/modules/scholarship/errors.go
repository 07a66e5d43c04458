package scholarship

import "errors"

var ErrNotFound = errors.New("scholarship not found")
