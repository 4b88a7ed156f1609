/* This file is part of quotecrawl, ©2020 Jörg Walter
 *  This software is licensed under the "GNU General Public License version 3" */

package global

import (
	"github.com/jwdev42/logger"
	"os"
)

const Default_Loglevel = logger.LevelError

//stdout is reserved for the summary table, diagnostics go to stderr
var log = logger.New(os.Stderr, Default_Loglevel, " - ")

func GetLogger() *logger.Logger {
	return log
}
