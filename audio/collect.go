// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

const maxEmptyReads = 100

// ReadAll drains src and returns every sample it produced, interleaved as read.
// Reading stops early once limit samples are collected; limit <= 0 means no limit.
func ReadAll(src Source, bufferSize, limit int) ([]float32, error) {
	if bufferSize <= 0 {
		bufferSize = src.BufSize()
	}
	if bufferSize <= 0 {
		bufferSize = 4096
	}
	// keep whole frames
	if ch := src.Channels(); ch > 1 && bufferSize%ch != 0 {
		bufferSize += ch - bufferSize%ch
	}

	var out []float32
	if limit > 0 {
		out = make([]float32, 0, limit)
	}
	buf := make([]float32, bufferSize)
	empty := 0

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			out = append(out, buf[:n]...)
			empty = 0
		} else if err == nil {
			empty++
			if empty >= maxEmptyReads {
				return out, io.ErrNoProgress
			}
		}

		if limit > 0 && len(out) >= limit {
			return out[:limit], nil
		}

		if errors.Is(err, io.EOF) {
			return out, nil
		}

		if err != nil {
			return out, fmt.Errorf("reading samples: %w", err)
		}
	}
}
