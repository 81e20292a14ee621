package shell

import (
	"src.crush.sh/pkg/lang"
	"src.crush.sh/pkg/mods/flow"
)

// InitScope creates the root scope, in which external commands are searched in
// searchPath and launched with lang.ExternalCmd. The flow namespace is
// installed.
func InitScope(searchPath []string) (*lang.Scope, error) {
	root := lang.NewScope()
	dirs := make([]lang.Value, len(searchPath))
	for i, dir := range searchPath {
		dirs[i] = lang.File(dir)
	}
	if err := root.Declare(lang.SearchPathVar, lang.NewList(dirs...)); err != nil {
		return nil, err
	}
	if err := root.Declare(lang.LauncherVar, lang.ExternalCmd); err != nil {
		return nil, err
	}
	if err := flow.Declare(root); err != nil {
		return nil, err
	}
	return root, nil
}
