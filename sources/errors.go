// SPDX-License-Identifier: EPL-2.0

package sources

import "errors"

var (
	ErrFrameSize = errors.New("frames per chunk must be positive")
)
