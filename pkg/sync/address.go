// File: pkg/sync/address.go
package sync

import (
	"fmt"
	"strings"

	"s3lync/pkg/common"
)

// Address identifies a remote object or prefix as bucket + key. Immutable once
// parsed; the key may denote a single object or a logical directory prefix.
type Address struct {
	Scheme common.Scheme
	Bucket string
	Key    string
}

// ParseAddress parses "scheme://bucket/key". The key may contain "/"; a
// trailing slash is not required to address a prefix.
func ParseAddress(uri string) (Address, error) {
	scheme, rest, found := strings.Cut(uri, "://")
	if !found || scheme == "" {
		return Address{}, fmt.Errorf("%w: %q, expected scheme://bucket/key", ErrInvalidAddress, uri)
	}

	bucket, key, found := strings.Cut(rest, "/")
	if !found {
		return Address{}, fmt.Errorf("%w: %q, missing key after bucket", ErrInvalidAddress, uri)
	}
	if bucket == "" || key == "" {
		return Address{}, fmt.Errorf("%w: %q, bucket and key cannot be empty", ErrInvalidAddress, uri)
	}

	return Address{Scheme: common.Scheme(scheme), Bucket: bucket, Key: key}, nil
}

func (a Address) String() string {
	return fmt.Sprintf("%s://%s/%s", a.Scheme, a.Bucket, a.Key)
}
