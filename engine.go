package legalai

import (
	"log/slog"

	"github.com/mohini32/legal-AI-Reader/clause"
	"github.com/mohini32/legal-AI-Reader/config"
	"github.com/mohini32/legal-AI-Reader/entity"
	"github.com/mohini32/legal-AI-Reader/extract"
	"github.com/mohini32/legal-AI-Reader/model"
	"github.com/mohini32/legal-AI-Reader/ocr"
	"github.com/mohini32/legal-AI-Reader/qa"
	"github.com/mohini32/legal-AI-Reader/risk"
)

// Engine wires the full analysis pipeline together: extraction, entity
// recognition, clause segmentation and classification, risk scoring, and
// question answering. An Engine is safe for concurrent use.
type Engine struct {
	cfg        *config.Config
	logger     *slog.Logger
	extractor  *extract.Extractor
	recognizer *entity.Recognizer
	segmenter  *clause.Segmenter
	classifier *clause.Classifier
	scorer     *risk.Scorer
}

// Option configures an Engine.
type Option func(*engineOptions)

type engineOptions struct {
	logger *slog.Logger
	tagger entity.Tagger
	ocr    *ocr.Client
}

// WithLogger sets the logger for pipeline events. Defaults to
// slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *engineOptions) { o.logger = l }
}

// WithTagger replaces the statistical entity tagger. Pass an
// entity.RuleTagger to avoid loading the NLP model, or nil to run the
// deterministic pattern passes alone.
func WithTagger(t entity.Tagger) Option {
	return func(o *engineOptions) { o.tagger = t }
}

// WithOCR supplies an OCR client for scanned image input.
func WithOCR(c *ocr.Client) Option {
	return func(o *engineOptions) { o.ocr = c }
}

// New builds an Engine from the configuration. A nil cfg uses
// config.Default(). The error is non-nil when the configuration is
// invalid or its risk rules do not compile.
func New(cfg *config.Config, opts ...Option) (*Engine, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := engineOptions{
		logger: slog.Default(),
		tagger: &entity.ProseTagger{},
	}
	for _, opt := range opts {
		opt(&o)
	}

	rules := cfg.Rules
	if len(rules) == 0 {
		rules = risk.DefaultRules()
	}
	scorer, err := risk.NewScorer(rules, cfg.WeightCap)
	if err != nil {
		return nil, err
	}

	extractOpts := []extract.Option{extract.WithLogger(o.logger)}
	if o.ocr != nil {
		extractOpts = append(extractOpts, extract.WithOCR(o.ocr))
	}

	gazetteer := append([]string{}, cfg.Gazetteers.Parties...)
	gazetteer = append(gazetteer, cfg.Gazetteers.LegalTerms...)

	return &Engine{
		cfg:    cfg,
		logger: o.logger,
		extractor: extract.New(
			extract.Limits{MaxFileSize: cfg.MaxFileSize, MaxPages: cfg.MaxPages},
			cfg.SupportedExtensions,
			extractOpts...,
		),
		recognizer: entity.NewRecognizer(o.tagger, gazetteer),
		segmenter:  clause.NewSegmenter(clause.DefaultSegmentConfig()),
		classifier: clause.NewClassifier(cfg.ClassifyThreshold),
		scorer:     scorer,
	}, nil
}

// Analysis is the complete result of analyzing one document.
type Analysis struct {
	Document *model.Document
	Entities []entity.Entity
	Clauses  []clause.Clause
	Risk     risk.Assessment

	index           *qa.Index
	answerThreshold float64
	summaryBudget   int
}

// Analyze runs the whole pipeline over one file. Extraction errors abort
// the analysis; downstream stages degrade to warnings on the Document
// instead of failing.
func (e *Engine) Analyze(data []byte, filename string) (*Analysis, error) {
	doc, err := e.Process(data, filename)
	if err != nil {
		return nil, err
	}

	entities := e.ExtractEntities(doc)
	clauses := e.Clauses(doc)

	a := &Analysis{
		Document:        doc,
		Entities:        entities,
		Clauses:         clauses,
		Risk:            e.scorer.Assess(clauses),
		index:           qa.NewIndex(clauses, entities),
		answerThreshold: e.cfg.AnswerThreshold,
		summaryBudget:   e.cfg.SummarySentences,
	}

	e.logger.Info("document analyzed",
		"filename", filename,
		"words", doc.WordCount,
		"entities", len(entities),
		"clauses", len(clauses),
		"risk_score", a.Risk.Score,
		"risk_level", a.Risk.Level.String(),
	)
	return a, nil
}

// Process extracts and normalizes a document without analyzing it.
func (e *Engine) Process(data []byte, filename string) (*model.Document, error) {
	return e.extractor.Extract(data, filename)
}

// ExtractEntities recognizes entities in the document text. Recognition
// warnings (tagger conflicts, degraded passes) are appended to the
// document's warning list.
func (e *Engine) ExtractEntities(doc *model.Document) []entity.Entity {
	entities, warnings := e.recognizer.Recognize(doc.Text)
	doc.Warnings = append(doc.Warnings, warnings...)
	return entities
}

// Clauses segments and classifies the document text.
func (e *Engine) Clauses(doc *model.Document) []clause.Clause {
	return e.classifier.ClassifyAll(e.segmenter.Segment(doc.Text))
}

// AssessRisk scores the document against the engine's risk rules.
func (e *Engine) AssessRisk(doc *model.Document) risk.Assessment {
	return e.scorer.Assess(e.Clauses(doc))
}

// AnswerQuestion answers a question about an extracted document. When
// asking several questions about the same document, run Analyze once and
// use Analysis.Answer instead of rebuilding the index per question.
func (e *Engine) AnswerQuestion(doc *model.Document, question string) (qa.Result, error) {
	entities, _ := e.recognizer.Recognize(doc.Text)
	idx := qa.NewIndex(e.Clauses(doc), entities)
	return qa.NewResponder(idx, e.cfg.AnswerThreshold).Answer(question)
}

// Summarize produces an extractive summary of an extracted document.
func (e *Engine) Summarize(doc *model.Document, maxSentences int) string {
	if maxSentences <= 0 {
		maxSentences = e.cfg.SummarySentences
	}
	entities, _ := e.recognizer.Recognize(doc.Text)
	return qa.NewIndex(e.Clauses(doc), entities).Summarize(maxSentences)
}

// Answer answers a question about the analyzed document. It returns
// qa.ErrNoConfidentAnswer when nothing in the document supports a
// confident answer.
func (a *Analysis) Answer(question string) (qa.Result, error) {
	return qa.NewResponder(a.index, a.answerThreshold).Answer(question)
}

// Summary produces an extractive summary. A non-positive maxSentences
// uses the configured budget.
func (a *Analysis) Summary(maxSentences int) string {
	if maxSentences <= 0 {
		maxSentences = a.summaryBudget
	}
	return a.index.Summarize(maxSentences)
}
