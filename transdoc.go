// Package transdoc provides a local, CLI-based translation tool.
// It extracts text from plain text, word-processor and PDF documents,
// translates it with a large language model, and optionally speaks the
// translation through a text-to-speech service.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, gemini/, fitz/).
package transdoc
