package diagfmt

import (
	"strings"

	"letcalc/internal/source"
)

// autoPathLimit — длиннее этого PathModeAuto показывает только имя файла.
const autoPathLimit = 40

func formatPath(fs *source.FileSet, f *source.File, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	}
	if len(f.Path) <= autoPathLimit {
		return f.Path
	}
	if rel := f.FormatPath("relative", fs.BaseDir()); len(rel) <= autoPathLimit && !strings.HasPrefix(rel, "/") {
		return rel
	}
	return f.FormatPath("basename", "")
}
