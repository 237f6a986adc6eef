package overcast

import "errors"

// ErrSchema marks record construction failures: a required attribute is
// absent or a value cannot be coerced to the field's type. Records failing
// this way are dropped individually while the rest of the export survives.
var ErrSchema = errors.New("schema validation")

// ErrMissingSection marks exports without a playlists or feeds outline.
// Such a document is structurally unrecognizable and nothing can be
// extracted from it.
var ErrMissingSection = errors.New("missing section")
