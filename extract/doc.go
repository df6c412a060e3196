// Package extract converts uploaded contract files (PDF, DOCX, DOC, TXT,
// HTML, scanned images) into a normalized model.Document. Extraction is
// best-effort: unreadable pages are recorded as warnings and skipped, and
// the pipeline only fails when no text at all can be recovered or a
// configured limit is exceeded.
package extract
