// Package classify maps syntax tags to operator identities and decodes
// literal text.
//
// Both expression engines consult this package for every operator and
// literal they meet, so folding and lowering always agree on what an
// operator is and how a literal is spelled.
//
// Mapping functions report false for a tag outside their domain. Builds
// tagged svexprdebug panic instead, which turns a dispatch bug into an
// immediate failure during testing.
package classify
