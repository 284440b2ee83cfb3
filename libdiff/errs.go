package libdiff

import "errors"

// ErrConfiguration reports an unknown dimension, behavior, profile or
// preprocessing name.  It is raised synchronously at resolution time.
var ErrConfiguration = errors.New("configuration error")
