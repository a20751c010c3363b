// Package filesystem provides the file access used by an archive build: the
// read-only sources a definition catalogue is loaded from, and atomic
// replacement of the files a build produces.
//
// Sources:
//   - DirSource: a directory on disk
//   - EmbedSource: a directory inside an embed.FS (the default catalogue)
//   - MemorySource: an in-memory tree for tests
package filesystem
