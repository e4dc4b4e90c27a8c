// Command ndntlv inspects and constructs NDN-TLV structures.
package main

import (
	"os"
	"sort"

	"github.com/urfave/cli/v2"
	"github.com/usnistgov/ndntlv/core/logging"
	"github.com/usnistgov/ndntlv/core/version"
	"go.uber.org/zap"
)

var logger = logging.New("main")

var app = &cli.App{
	Version: version.V.String(),
	Usage:   "Inspect and construct NDN-TLV structures.",

	// errors are returned to main, which logs them before exiting
	ExitErrHandler: func(*cli.Context, error) {},
}

func defineCommand(command *cli.Command) {
	app.Commands = append(app.Commands, command)
}

func main() {
	sort.Sort(cli.CommandsByName(app.Commands))
	e := app.Run(os.Args)
	if e != nil {
		logger.Fatal("command error", zap.Error(e))
	}
}
