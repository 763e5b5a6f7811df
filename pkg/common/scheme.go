// File: pkg/common/scheme.go
package common

// Scheme identifies the remote-storage backend an address resolves to.
type Scheme string

const (
	S3  Scheme = "s3"
	GCS Scheme = "gs"
)

func (s Scheme) String() string {
	return string(s)
}
