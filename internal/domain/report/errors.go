package report

import "errors"

var (
	ErrDownloadFailed = errors.New("failed to download attendance report")
	ErrExportFailed   = errors.New("failed to export weekly attendance")
)
