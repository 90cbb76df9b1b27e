// compileinfoprint is imported by tools for the side effect of printing the
// compileinfo to os.Stderr at startup
package compileinfoprint

import "github.com/carbocation/pcawgmaf/compileinfo"

func init() {
	compileinfo.PrintToStdErr()
}
