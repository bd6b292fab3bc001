package interfaces

import "errors"

// ErrVersionConflict is returned by repositories when an optimistic write lost a race.
var ErrVersionConflict = errors.New("version conflict")
