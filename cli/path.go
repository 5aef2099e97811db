package cli

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/ardnew/mung"

	"github.com/ardnew/svexpr/pkg"
)

// baseConfig is the base name of the configuration file.
const baseConfig = "config"

// defaultDirMode is the permission mode for created directories.
var defaultDirMode os.FileMode = 0o700

// basePrefix returns the name used for the configuration and cache
// directories: the base name of the executable without its extension.
//
// A dlv debug binary ("__debug_bin" plus digits) is renamed to [pkg.Name]
// and leading dots are removed.
var basePrefix = sync.OnceValue(
	func() string {
		id := os.Args[0]
		if exe, err := os.Executable(); err == nil {
			id = exe
		}

		id = strings.TrimSuffix(filepath.Base(id), filepath.Ext(id))

		for rex, rep := range map[*regexp.Regexp]string{
			regexp.MustCompile(`^__debug_bin\d+$`): pkg.Name,
			regexp.MustCompile(`^\.+`):             "",
		} {
			id = rex.ReplaceAllString(id, rep)
		}

		if id == "" {
			id = pkg.Name
		}

		return id
	},
)

// userDir returns filepath.Join(base(), basePrefix()), falling back to
// fallback under the home directory and then to the working directory.
func userDir(base func() (string, error), fallback string) string {
	dir, err := base()
	if err != nil {
		if home, herr := os.UserHomeDir(); herr == nil {
			dir = filepath.Join(home, fallback)
		} else if dir, err = os.Getwd(); err != nil {
			dir = "."
		}
	}

	return filepath.Join(dir, basePrefix())
}

// configDir returns the configuration directory path.
var configDir = sync.OnceValue(func() string {
	return userDir(os.UserConfigDir, ".config")
})

// cacheDir returns the directory used for transient files such as profiles.
var cacheDir = sync.OnceValue(func() string {
	return userDir(os.UserCacheDir, ".cache")
})

// configPath joins elem onto the configuration directory.
func configPath(elem ...string) string {
	return filepath.Join(append([]string{configDir()}, elem...)...)
}

// mkdirAllRequired creates the configuration and cache directories.
func mkdirAllRequired() error {
	for _, dir := range []string{configDir(), cacheDir()} {
		if err := os.MkdirAll(dir, defaultDirMode); err != nil {
			return err
		}
	}

	return nil
}

// searchPath returns the directories searched for document arguments: the
// --path flags in order, then the entries of $SVEXPR_PATH. Entries that are
// not directories are dropped.
func searchPath(flags []string) []string {
	sep := string(os.PathListSeparator)

	joined := mung.Make(
		mung.WithSubjectItems(os.Getenv(pkg.EnvPrefix+"_PATH")),
		mung.WithDelim(sep),
		mung.WithPrefixItems(flags...),
		mung.WithFilter(isDir),
	).String()

	if joined == "" {
		return nil
	}

	return strings.Split(joined, sep)
}

func isDir(path string) bool {
	info, err := os.Stat(path)

	return err == nil && info.IsDir()
}
