package report

import (
	"fmt"
	"time"
)

const fileNameTimeLayout = "20060102_1504"

// FileName follows the relatorio_<domain>_<scope>_<yyyyMMdd_HHmm>.<ext>
// convention shared by every exported artifact.
func FileName(reportDomain, scope, ext string, at time.Time) string {
	return fmt.Sprintf("relatorio_%s_%s_%s.%s", reportDomain, scope, at.Format(fileNameTimeLayout), ext)
}
