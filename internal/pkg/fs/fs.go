package fs

import "os"

// Filesystem is the part of os the configuration loader needs.
type Filesystem interface {
	Stat(string) (os.FileInfo, error)
	Open(string) (*os.File, error)
}

type OS struct{}

func (OS) Open(name string) (*os.File, error)    { return os.Open(name) }
func (OS) Stat(name string) (os.FileInfo, error) { return os.Stat(name) }
