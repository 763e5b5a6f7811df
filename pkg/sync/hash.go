// File: pkg/sync/hash.go
package sync

import (
	"crypto/md5"
	"encoding/hex"
	"io"
	"os"
	"strings"

	"s3lync/pkg/storage"
)

const hashChunkSize = 64 * 1024

// FileMD5 computes the MD5 content digest of a file as lowercase hex, reading
// in fixed-size chunks so memory stays bounded for large files.
func FileMD5(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	hash := md5.New()
	buf := make([]byte, hashChunkSize)
	if _, err := io.CopyBuffer(hash, file, buf); err != nil {
		return "", err
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}

// verifyLocal reports whether the local file content matches the remote
// fingerprint. mustCheck=false trusts without reading; composite fingerprints
// cannot be compared and are trusted as well.
func verifyLocal(localPath string, meta storage.ObjectMeta, mustCheck bool) (bool, error) {
	if !mustCheck {
		return true, nil
	}
	if meta.Composite() {
		return true, nil
	}

	localSum, err := FileMD5(localPath)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(localSum, meta.ETag), nil
}
