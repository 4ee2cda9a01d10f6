// compileinfoprint is imported by the tools for the side effect of printing
// their build banner to os.Stderr before any results are produced.
package compileinfoprint

import "github.com/carbocation/domainfisher/compileinfo"

func init() {
	compileinfo.PrintToStdErr()
}
