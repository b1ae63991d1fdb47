// SPDX-License-Identifier: EPL-2.0

package score

import "errors"

var (
	ErrEmptyScore   = errors.New("score is empty")
	ErrInvalidScore = errors.New("invalid score")
	ErrInvalidEntry = errors.New("invalid score entry")
)
