// File: pkg/sync/errors.go
package sync

import (
	"errors"
	"fmt"
)

// ErrInvalidAddress marks a malformed remote address. It is only ever returned
// by ParseAddress, never during a transfer.
var ErrInvalidAddress = errors.New("invalid address")

// ObjectError reports a violated local precondition, e.g. an upload whose
// source path does not exist.
type ObjectError struct {
	Path string
	Msg  string
}

func (e *ObjectError) Error() string {
	return fmt.Sprintf("%s: %s", e.Msg, e.Path)
}

// SyncError wraps any transfer-path failure that is not an integrity mismatch:
// network errors, permission errors, store-side errors, local I/O errors.
type SyncError struct {
	Op     string
	Bucket string
	Key    string
	Path   string
	Err    error
}

func (e *SyncError) Error() string {
	target := e.Path
	if e.Bucket != "" {
		target = e.Bucket + "/" + e.Key
	}
	return fmt.Sprintf("%s %s: %v", e.Op, target, e.Err)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

// HashMismatchError reports that the content fingerprint computed after a
// completed transfer did not match the remote metadata of a non-composite
// object. The transferred bytes are left on disk.
type HashMismatchError struct {
	Bucket string
	Key    string
	Local  string
	Remote string
}

func (e *HashMismatchError) Error() string {
	return fmt.Sprintf("hash mismatch for %s/%s: local=%s, remote=%s", e.Bucket, e.Key, e.Local, e.Remote)
}

// syncErr wraps err as a SyncError unless it already carries engine semantics.
func syncErr(op, bucket, key, path string, err error) error {
	var mismatch *HashMismatchError
	var objErr *ObjectError
	var sErr *SyncError
	if errors.As(err, &mismatch) || errors.As(err, &objErr) || errors.As(err, &sErr) {
		return err
	}
	return &SyncError{Op: op, Bucket: bucket, Key: key, Path: path, Err: err}
}
