package agentfile

import "errors"

var ErrFileNotFound = errors.New("file record not found")
