package types

import "errors"

var (
	ErrMissingBucket           = errors.New("destination bucket is not configured. Set BUCKET_NAME or pass --bucket")
	ErrUnsupportedReportType   = errors.New("unsupported report type")
	ErrUnsupportedConfigFormat = errors.New("unsupported config file format")
)
