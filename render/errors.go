// SPDX-License-Identifier: EPL-2.0

package render

import "errors"

var (
	ErrUnknownMode = errors.New("unknown amplitude mode")
)
