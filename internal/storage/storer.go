package storage

type Type string

const (
	Disk  Type = "fs"
	InMem Type = "in_mem"
)

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type: %s"

	// ErrNotFound reports a record or alert whose file is absent.
	ErrNotFound StorerError = "record not found"
	// ErrUnavailable reports a singleton extra or a collection root that cannot be read.
	ErrUnavailable StorerError = "content unavailable"
	// ErrCorrupt reports content that exists but fails to decode.
	ErrCorrupt StorerError = "content corrupt"
)

func (e StorerError) Error() string {
	return string(e)
}
