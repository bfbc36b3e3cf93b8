package sites

import "embed"

//go:embed */*.md
var Files embed.FS
