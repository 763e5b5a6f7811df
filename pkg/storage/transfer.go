// File: pkg/storage/transfer.go
package storage

import "io"

// ObserveWriter wraps w so every registered observer sees each written chunk,
// in registration order.
func ObserveWriter(w io.Writer, obs []TransferObserver) io.Writer {
	if len(obs) == 0 {
		return w
	}
	return &observedWriter{w: w, obs: obs}
}

// ObserveReader wraps r so every registered observer sees each read chunk,
// in registration order.
func ObserveReader(r io.Reader, obs []TransferObserver) io.Reader {
	if len(obs) == 0 {
		return r
	}
	return &observedReader{r: r, obs: obs}
}

type observedWriter struct {
	w   io.Writer
	obs []TransferObserver
}

func (o *observedWriter) Write(p []byte) (int, error) {
	n, err := o.w.Write(p)
	if n > 0 {
		for _, fn := range o.obs {
			fn(int64(n))
		}
	}
	return n, err
}

type observedReader struct {
	r   io.Reader
	obs []TransferObserver
}

func (o *observedReader) Read(p []byte) (int, error) {
	n, err := o.r.Read(p)
	if n > 0 {
		for _, fn := range o.obs {
			fn(int64(n))
		}
	}
	return n, err
}
