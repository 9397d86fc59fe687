// Package inspect walks a window hierarchy through a platform.Directory and
// builds a model.WindowNode tree with the requested metadata attached.
//
// A Session is one inspection run. It owns the atom cache and the node
// registry, is used from a single goroutine, and is discarded after the
// tree is built.
package inspect
