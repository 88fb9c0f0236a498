/*
Package corpus holds the immutable help forest and its query layer.

A Corpus is built once (from a loader or from a serialized build artifact) and
then only read. Every query is a lock-free read over data fixed at construction,
so a single Corpus can serve any number of concurrent renders.

Ordering: topics keep the order in which their ids were assigned. Children and
roots are sorted by explicit position (missing positions count as 0) and ties
fall back to assignment order, so repeated renders list siblings identically.
*/
package corpus
