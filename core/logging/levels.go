package logging

import (
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/exp/slices"
)

// EnvPrefix is the environment variable prefix for log levels.
// NDNGO_LOG_<Pkg> sets the level of a package; NDNGO_LOG sets the default level.
const EnvPrefix = "NDNGO_LOG"

var letterLevels = map[byte]zapcore.Level{
	'V': zapcore.DebugLevel,
	'D': zapcore.DebugLevel,
	'I': zapcore.InfoLevel,
	'W': zapcore.WarnLevel,
	'E': zapcore.ErrorLevel,
	'F': zapcore.DPanicLevel,
	'N': zapcore.DPanicLevel,
}

// PkgLevel represents log level of a package.
type PkgLevel struct {
	pkg string
	lvl byte
	al  zap.AtomicLevel
}

// Package returns package name.
func (pl *PkgLevel) Package() string {
	return pl.pkg
}

// Level returns log level as a letter.
func (pl *PkgLevel) Level() byte {
	return pl.lvl
}

// SetLevel assigns log level from a letter: V or D for debug, I for info, W for warn, E for error,
// F or N for fatal only.
// Empty or unrecognized input means info.
func (pl *PkgLevel) SetLevel(input string) {
	input = strings.ToUpper(input)
	if input != "" {
		if lvl, ok := letterLevels[input[0]]; ok {
			pl.lvl = input[0]
			pl.al.SetLevel(lvl)
			return
		}
	}
	pl.lvl = 'I'
	pl.al.SetLevel(zapcore.InfoLevel)
}

var (
	pkgLevelsLock sync.Mutex
	pkgLevels     = map[string]*PkgLevel{}
)

// ListLevels returns all package levels, sorted by package name.
func ListLevels() (list []*PkgLevel) {
	pkgLevelsLock.Lock()
	defer pkgLevelsLock.Unlock()
	for _, pl := range pkgLevels {
		list = append(list, pl)
	}
	slices.SortFunc(list, func(a, b *PkgLevel) int { return strings.Compare(a.pkg, b.pkg) })
	return list
}

// GetLevel finds or creates package log level object.
// A new object is initialized from environment variables.
func GetLevel(pkg string) (pl *PkgLevel) {
	pkgLevelsLock.Lock()
	defer pkgLevelsLock.Unlock()
	pl = pkgLevels[pkg]
	if pl == nil {
		pl = &PkgLevel{
			pkg: pkg,
			al:  zap.NewAtomicLevel(),
		}
		pl.SetLevel(envLevel(pkg))
		pkgLevels[pkg] = pl
	}
	return pl
}

func envLevel(pkg string) string {
	v, ok := os.LookupEnv(EnvPrefix + "_" + pkg)
	if !ok {
		v = os.Getenv(EnvPrefix)
	}
	return v
}
