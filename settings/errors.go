// SPDX-License-Identifier: EPL-2.0

package settings

import "errors"

var (
	ErrBadColor = errors.New("color must be #rgb or #rrggbb")
)
