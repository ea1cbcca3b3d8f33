// SPDX-License-Identifier: EPL-2.0

package effects

import "errors"

var (
	ErrInvalidFactor = errors.New("effect factor must be positive")
	ErrUnknownEffect = errors.New("unknown effect")
)
