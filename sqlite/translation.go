package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fwojciec/transdoc"
)

// Compile-time interface verification.
var _ transdoc.TranslationCache = (*TranslationCache)(nil)

// TranslationCache implements transdoc.TranslationCache using SQLite.
type TranslationCache struct {
	db *DB

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewTranslationCache creates a new TranslationCache.
func NewTranslationCache(db *DB) *TranslationCache {
	return &TranslationCache{db: db, Now: time.Now}
}

// FindTranslation retrieves the cached translation of text.
func (c *TranslationCache) FindTranslation(ctx context.Context, text, from, to string) (*transdoc.CachedTranslation, error) {
	var tr transdoc.CachedTranslation
	var createdAt string

	err := c.db.QueryRowContext(ctx, `
		SELECT key, source_language, target_language, text, created_at
		FROM translations
		WHERE key = ?
	`, TranslationKey(text, from, to)).Scan(&tr.Key, &tr.SourceLanguage, &tr.TargetLanguage, &tr.Text, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, transdoc.Errorf(transdoc.ENOTFOUND, "translation not found")
	}
	if err != nil {
		return nil, err
	}

	tr.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &tr, nil
}

// StoreTranslation records the translation of text, replacing any previous
// entry for the same text and language pair.
func (c *TranslationCache) StoreTranslation(ctx context.Context, text, from, to, translated string) error {
	if to == "" {
		return transdoc.Errorf(transdoc.EINVALID, "target language required")
	}

	_, err := c.db.ExecContext(ctx, `
		INSERT INTO translations (key, source_language, target_language, text, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			text = excluded.text,
			created_at = excluded.created_at
	`, TranslationKey(text, from, to), from, to, translated, formatTime(c.Now()))

	return err
}

// PurgeTranslations deletes entries created before the given time.
func (c *TranslationCache) PurgeTranslations(ctx context.Context, before time.Time) (int, error) {
	result, err := c.db.ExecContext(ctx, `
		DELETE FROM translations WHERE created_at < ?
	`, formatTime(before))
	if err != nil {
		return 0, err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
