// Package plaintext provides the policy layer for converting a
// structured document tree into normalized plaintext. It decides, per
// tree node, whether the node's subtree is entered, replaced by a
// token, or skipped, and which text-level normalizations (whitespace
// collapsing, token wrapping, Unicode folding, stemming, case folding)
// the extraction engine should apply. The tree walking itself is done
// by an external engine consuming these decisions.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Node adapters live in
// subdirectories named after their primary dependency (e.g. html/,
// goquery/).
package plaintext
