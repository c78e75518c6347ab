package dto

// ExportFile is a generated download: CSV or PDF bytes plus the metadata the
// handler needs for the attachment headers.
type ExportFile struct {
	Name        string
	ContentType string
	Data        []byte
}
