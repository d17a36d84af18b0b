package loader

import (
	"errors"

	"golang.org/x/tools/txtar"
)

// ParseBundle splits a txtar archive into library manifests, one manifest
// per archive file. The archive comment is ignored.
func ParseBundle(data []byte) ([]*Manifest, error) {
	arc := txtar.Parse(data)
	if len(arc.Files) == 0 {
		return nil, errors.New("loader: bundle contains no manifests")
	}
	manifests := make([]*Manifest, 0, len(arc.Files))
	for _, f := range arc.Files {
		m, err := parseManifest(f.Name, f.Data)
		if err != nil {
			return nil, err
		}
		manifests = append(manifests, m)
	}
	return manifests, nil
}
