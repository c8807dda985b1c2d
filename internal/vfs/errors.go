package vfs

import "errors"

// Sentinel errors for tree lookup and fixture loading.
var (
	ErrNotFound       = errors.New("no such file or directory")
	ErrNotADirectory  = errors.New("not a directory")
	ErrNotAFile       = errors.New("is a directory")
	ErrDuplicateName  = errors.New("duplicate name within directory")
	ErrFileHasChild   = errors.New("file node cannot have children")
	ErrEmptyNodeName  = errors.New("node name is required")
	ErrNameHasSlash   = errors.New("node name cannot contain a path separator")
	ErrUnknownKind    = errors.New("unknown node kind")
	ErrNoRootProvided = errors.New("fixture must define exactly one root node")
)
