package errlock

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/ethereum/go-ethereum/cmd/utils"
)

var datadir string

// Check if errlock is written
func Check() {
	locked, reason, eLockPath, err := read(datadir)
	if err != nil {
		utils.Fatalf("Node isn't allowed to start due to an error reading"+
			" the lock file %s.\n Please fix the issue. Error message:\n%s",
			eLockPath, err)
	}

	if locked {
		utils.Fatalf("Node isn't allowed to start due to a previous error."+
			" Please fix the issue and then delete file \"%s\". Error message:\n%s",
			eLockPath, reason)
	}
}

// SetDefaultDatadir for errlock files
func SetDefaultDatadir(dir string) {
	datadir = dir
}

// Permanent error
func Permanent(err error) {
	eLockPath, _ := Write(err.Error())
	utils.Fatalf("Node is permanently stopping due to an issue. Please fix"+
		" the issue and then delete file \"%s\". Error message:\n%s",
		eLockPath, err.Error())
}

// Write the errlock file without stopping the process.
// Used when the proving layer halts itself: the node keeps running in a
// rejecting state, but isn't allowed to restart until an operator intervenes.
func Write(reason string) (string, error) {
	eLockPath := path.Join(datadir, "errlock")

	return eLockPath, os.WriteFile(eLockPath, []byte(reason), 0666)
}

func readAll(reader io.Reader, max int) ([]byte, error) {
	buf := make([]byte, max)
	consumed := 0
	for {
		n, err := reader.Read(buf[consumed:])
		consumed += n
		if consumed == len(buf) || err == io.EOF {
			return buf[:consumed], nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// read errlock file
func read(dir string) (bool, string, string, error) {
	eLockPath := path.Join(dir, "errlock")

	data, err := os.Open(eLockPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, "", eLockPath, nil
		}
		return false, "", eLockPath, err
	}
	defer data.Close()

	// read no more than N bytes
	maxFileLen := 5000
	eLockBytes, err := readAll(data, maxFileLen)
	if err != nil {
		return true, "", eLockPath, fmt.Errorf("failed to read lock file %v: %w", eLockPath, err)
	}
	return true, string(eLockBytes), eLockPath, nil
}
