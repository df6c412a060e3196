// Package legalai analyzes legal contracts. It extracts normalized text
// from PDF, DOCX, legacy DOC, HTML, plain text, and (when compiled with
// OCR support) scanned images, recognizes the entities a reviewer cares
// about (parties, dates, amounts, durations, citations, contacts),
// segments the text into classified clauses, scores the document against
// a configurable set of risky provisions, and answers questions about
// the result.
//
// The simplest entry point analyzes a file with the default
// configuration:
//
//	a, err := legalai.Open("contract.pdf")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(a.Risk.Level, a.Risk.Score)
//
// Construct an Engine directly to control configuration, logging, the
// entity tagger, or OCR.
package legalai

import (
	"os"
	"sync"
)

var (
	defaultOnce   sync.Once
	defaultEngine *Engine
	defaultErr    error
)

// defaultEngineInstance lazily builds the shared default-configuration
// engine. The statistical tagger model loads once, on first use.
func defaultEngineInstance() (*Engine, error) {
	defaultOnce.Do(func() {
		defaultEngine, defaultErr = New(nil)
	})
	return defaultEngine, defaultErr
}

// Must panics when err is non-nil. It allows one-line initialization in
// examples and program setup:
//
//	a := legalai.Must(legalai.Open("contract.pdf"))
func Must(a *Analysis, err error) *Analysis {
	if err != nil {
		panic(err)
	}
	return a
}

// Open reads and analyzes a file with the default configuration.
func Open(path string) (*Analysis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Analyze(data, path)
}

// Analyze runs the default-configuration pipeline over file bytes. The
// filename supplies the extension used for format detection.
func Analyze(data []byte, filename string) (*Analysis, error) {
	e, err := defaultEngineInstance()
	if err != nil {
		return nil, err
	}
	return e.Analyze(data, filename)
}
