// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/audnorm/audio"
)

// outputPerm is the mode of files created by WriteFile.
const outputPerm = 0o644

// ReadFile opens path, parses it and closes it again on every return path.
func ReadFile(path string, headerOnly bool) (*audio.Stream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", audio.ErrIO, err)
	}
	defer f.Close()

	return Parse(bufio.NewReader(f), headerOnly)
}

// WriteFile serializes s to path. The file is first written next to path
// under a temporary name and renamed into place only once complete, so a
// failed write never leaves a partial file at path.
func WriteFile(path string, s *audio.Stream) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", audio.ErrIO, err)
	}

	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err = Serialize(bw, s); err != nil {
		return err
	}
	if err = bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", audio.ErrIO, err)
	}
	if err = tmp.Chmod(outputPerm); err != nil {
		return fmt.Errorf("%w: %w", audio.ErrIO, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", audio.ErrIO, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %w", audio.ErrIO, err)
	}

	return nil
}
