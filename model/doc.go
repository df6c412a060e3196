// Package model defines the document data structures produced by text
// extraction and consumed by the analysis packages. A Document's text and
// segments never change after extraction; analysis stages derive new
// values from them and may append further warnings.
package model
