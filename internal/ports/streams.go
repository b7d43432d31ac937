package ports

import "io"

// StreamProvider acquires the text streams of a batch run (e.g., files on disk).
type StreamProvider interface {
	OpenInput(path string) (io.ReadCloser, error)
	CreateOutput(path string) (io.WriteCloser, error)
}
