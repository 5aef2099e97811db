// Package document loads syntax trees and scope bindings from YAML tree
// documents.
//
// A tree document names a source file, a chain of scope levels, optional
// parameter defines, and a list of named expression trees:
//
//	file: top.sv
//	scope:
//	  values: {WIDTH: 8}
//	  parent:
//	    values: {DEPTH: 4}
//	defines: ["AREA=WIDTH*DEPTH"]
//	expressions:
//	  - name: sum
//	    root:
//	      tag: Constant_expression
//	      children: [...]
//
// Decoded documents are cached by a hash of their content, so loading the
// same input twice decodes it once.
package document
