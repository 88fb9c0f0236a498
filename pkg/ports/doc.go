/*
Package ports defines the driven ports (interfaces) of the help center.

These interfaces decouple the navigation engine from where its corpus is built
or stored, so the same engine runs over a content directory during development,
over the serialized build artifact in production, or over an in-memory corpus
in tests.

# Key Interfaces

  - CorpusSource: produces the immutable corpus once at startup.
  - CorpusPublisher: stores a built corpus for runtime instances to load.
*/
package ports
