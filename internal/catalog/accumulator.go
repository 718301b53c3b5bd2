package catalog

import "fmt"

// Script is one upgrade script and its provenance annotation.
type Script struct {
	Path    string
	Comment string
}

// accumulate folds the file events along replay into an ordered script
// list, adding to existing comments on repeat adds and dropping a path
// entirely on delete.
func accumulate(graph CommitGraph, replay []int64) ([]Script, error) {
	var scripts []Script

	index := make(map[string]int)

	for _, c := range replay {
		files, err := graph.Files(c)
		if err != nil {
			return nil, &ErrStorageFailure{Op: "Files", Err: err}
		}

		if len(files) == 0 {
			continue
		}

		tag, ok, err := graph.LastTag(c)
		if err != nil {
			return nil, &ErrStorageFailure{Op: "LastTag", Err: err}
		}

		if !ok {
			tag = "DELETED"
		}

		for _, f := range files {
			if f.IsDelete {
				if idx, exists := index[f.Path]; exists {
					scripts = append(scripts[:idx], scripts[idx+1:]...)
					delete(index, f.Path)

					for path, i := range index {
						if i > idx {
							index[path] = i - 1
						}
					}
				}

				continue
			}

			if idx, exists := index[f.Path]; exists {
				scripts[idx].Comment += fmt.Sprintf(", %s (ID %d)", tag, c)
			} else {
				index[f.Path] = len(scripts)
				scripts = append(scripts, Script{
					Path:    f.Path,
					Comment: fmt.Sprintf("from %s (ID %d)", tag, c),
				})
			}
		}
	}

	return scripts, nil
}
