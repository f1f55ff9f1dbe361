// Package asset defines asset kinds and references, the locator-to-URL
// resolver, and the kind-specific views constructed over decoded containers.
//
// A view is the typed surface a caller works with after a load: a model view
// instantiates scene nodes, an emote view retargets its clip onto an
// external skeleton, an avatar view additionally carries a humanoid rig
// factory when the container declares one, and a script view holds admitted
// script text. Views are immutable; anything mutable they hand out is a
// fresh copy.
package asset
