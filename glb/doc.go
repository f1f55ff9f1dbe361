// Package glb decodes binary GLB asset containers into in-memory documents.
//
// A container is a 12-byte header (magic, version, total length) followed by
// chunks: a mandatory JSON chunk describing the scene graph, animations and
// metadata, and an optional BIN chunk holding keyframe and geometry payload.
// Decode validates the framing, parses the JSON chunk, resolves animation
// samplers against the BIN chunk and returns a Document whose node trees and
// clips are ready for view construction.
//
// Decoding is strict about framing (truncated or overrunning chunks fail)
// and lenient about content the loader does not consume: unknown JSON fields
// and unrecognized extensions are preserved as raw bytes, not errors.
package glb
