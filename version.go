package helpcenter

import _ "embed"

// Version is the release of this module, embedded at build time.
//
//go:embed VERSION
var Version string
