// Package folder manages the lifecycle of a single directory: exclusive
// in-process ownership of its path, creation and deletion with bounded
// retries.
//
// # Ownership
//
// A [Registry] records which normalized paths are currently owned. Every
// [Folder] claims its path on construction and releases it on [Folder.Close].
// A second [New] for a path that is still claimed fails with
// [ErrDuplicateOwnership]. The registry is in-process only; other processes
// touching the same directory are not coordinated.
//
// # Results
//
// [Folder.Create] and [Folder.Delete] never return an error value. They
// report a success flag and a message; on failure the message carries every
// per-attempt reason in order, prefixed with the operation name:
//
//	folder.Delete: (1/4) Problem with deleting the folder '/tmp/x'. Folder still present.
//	...
//
// After each attempt the filesystem is checked again. That check, not the
// return value of the mutating call, decides whether the attempt succeeded.
//
// Links inside the tree are removed, not followed. A handle whose own path
// is a symbolic link to a directory cannot be deleted: every attempt reports
// [ErrSymlinkRoot] and both the link and its target stay in place.
//
// # Basic Usage
//
//	reg := folder.NewRegistry()
//
//	f, err := folder.New(reg, "/tmp/x/y")
//	if err != nil {
//		return err
//	}
//	defer f.Close()
//
//	ok, msg := f.Create(false, true)
//
// # Thread Safety
//
// [Registry] methods are safe for concurrent use. A [Folder] is meant to be
// used from one goroutine; its operations block for the whole retry budget.
package folder
