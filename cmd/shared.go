package cmd

import (
	"context"
	"sync"

	"github.com/viant/namely"
	"github.com/viant/namely/config"
	"github.com/viant/namely/directory"
)

var (
	cfgPath string

	dirOnce sync.Once
	dirInst *directory.Directory[string]
	dirErr  error
)

// setConfigPath remembers the CLI-level -f/--config parameter so that the
// directory singleton can be created lazily by whichever sub-command is
// executed first.
func setConfigPath(p string) { cfgPath = p }

// directorySingleton initialises the name directory only once and reuses the
// instance across sub-commands within the same CLI invocation.  Without a
// config file the directory starts empty.
func directorySingleton() (*directory.Directory[string], error) {
	dirOnce.Do(func() {
		dirInst = directory.New[string]()
		if cfgPath == "" {
			return
		}
		ctx := context.Background()
		cfg, err := config.Load(ctx, cfgPath)
		if err != nil {
			dirErr = err
			return
		}
		names, err := cfg.NameList(ctx)
		if err != nil {
			dirErr = err
			return
		}
		for _, text := range names {
			n := namely.New(text)
			dirInst.Put(n, n.Original())
		}
	})
	return dirInst, dirErr
}
