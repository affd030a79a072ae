// Package cloudwriter buffers object contents and uploads them on Close.
package cloudwriter

import "context"

type CloudWriter interface {
	Write(data []byte) (int, error)
	Close() error
}

type CloudWriterFactory interface {
	NewWriter(ctx context.Context, bucket, objectPath string) (CloudWriter, error)
}
