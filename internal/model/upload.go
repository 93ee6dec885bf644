package model

// UploadKind caller-declared intent of an upload
type UploadKind string

const (
	UploadMaster UploadKind = "master"
	UploadDaily  UploadKind = "daily"
)
