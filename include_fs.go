package glslang

import (
	"io/fs"
	"path"
	"strings"
)

// FSIncluder returns an IncludeCallback that reads headers from roots.
//
// A local include ("name") is first looked up next to the including file,
// then in each root in order. A system include (<name>) is looked up in
// each root only. The resolved name is the slash-separated path of the
// header within its root, so nested local includes resolve relative to it.
func FSIncluder(roots ...fs.FS) IncludeCallback {
	return func(kind IncludeType, headerName, includerName string, _ int) (IncludeResult, bool) {
		name := strings.ReplaceAll(headerName, "\\", "/")

		var candidates []string
		if kind == IncludeLocal && includerName != "" {
			candidates = append(candidates, path.Join(path.Dir(strings.ReplaceAll(includerName, "\\", "/")), name))
		}
		candidates = append(candidates, path.Clean(name))

		for _, candidate := range candidates {
			candidate = strings.TrimPrefix(candidate, "/")
			if !fs.ValidPath(candidate) {
				continue
			}
			for _, root := range roots {
				data, err := fs.ReadFile(root, candidate)
				if err == nil {
					return IncludeResult{Name: candidate, Data: string(data)}, true
				}
			}
		}
		return IncludeResult{}, false
	}
}
