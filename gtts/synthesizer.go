// Package gtts implements transdoc.Synthesizer with the Google Translate
// text-to-speech endpoint.
package gtts

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/transdoc"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the Google Translate text-to-speech endpoint.
const DefaultBaseURL = "https://translate.google.com/translate_tts"

// MaxChunkLen is the longest text, in runes, the endpoint accepts per request.
const MaxChunkLen = 100

// DefaultTimeout is the default timeout for a single chunk request.
const DefaultTimeout = 30 * time.Second

// DefaultConcurrency is the default number of chunk requests in flight.
const DefaultConcurrency = 4

// DefaultRate is the default number of chunk requests per second.
const DefaultRate = 10.0

// Ensure Synthesizer implements transdoc.Synthesizer at compile time.
var _ transdoc.Synthesizer = (*Synthesizer)(nil)

// Synthesizer speaks text by requesting MP3 audio for each chunk of it and
// concatenating the results in order.
type Synthesizer struct {
	client      *http.Client
	baseURL     string
	timeout     time.Duration
	concurrency int
	limiter     *rate.Limiter
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithBaseURL overrides the endpoint URL.
func WithBaseURL(u string) Option {
	return func(s *Synthesizer) {
		s.baseURL = u
	}
}

// WithTimeout sets the timeout for each chunk request.
// Defaults to DefaultTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(s *Synthesizer) {
		s.timeout = d
	}
}

// WithConcurrency sets how many chunk requests may run at once.
func WithConcurrency(n int) Option {
	return func(s *Synthesizer) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithRateLimit sets the maximum chunk requests per second.
// A value <= 0 disables pacing.
func WithRateLimit(rps float64) Option {
	return func(s *Synthesizer) {
		if rps <= 0 {
			s.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		s.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewSynthesizer creates a new Synthesizer.
func NewSynthesizer(opts ...Option) *Synthesizer {
	s := &Synthesizer{
		baseURL:     DefaultBaseURL,
		timeout:     DefaultTimeout,
		concurrency: DefaultConcurrency,
		limiter:     rate.NewLimiter(rate.Limit(DefaultRate), 1),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.client = &http.Client{
		Timeout: s.timeout,
	}

	return s
}

// Synthesize returns MP3 audio of text spoken in lang.
func (s *Synthesizer) Synthesize(ctx context.Context, text, lang string) ([]byte, error) {
	if lang == "" {
		return nil, transdoc.Errorf(transdoc.EINVALID, "language required")
	}
	chunks := Chunks(text, MaxChunkLen)
	if len(chunks) == 0 {
		return nil, transdoc.Errorf(transdoc.EINVALID, "text required")
	}

	parts := make([][]byte, len(chunks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, chunk := range chunks {
		g.Go(func() error {
			if err := s.limiter.Wait(gctx); err != nil {
				return err
			}
			b, err := s.fetch(gctx, chunk, lang, i, len(chunks))
			if err != nil {
				return err
			}
			parts[i] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return bytes.Join(parts, nil), nil
}

// fetch requests the audio of one chunk.
func (s *Synthesizer) fetch(ctx context.Context, chunk, lang string, idx, total int) ([]byte, error) {
	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("q", chunk)
	q.Set("tl", lang)
	q.Set("client", "tw-ob")
	q.Set("total", strconv.Itoa(total))
	q.Set("idx", strconv.Itoa(idx))
	q.Set("textlen", strconv.Itoa(utf8.RuneCountInString(chunk)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for speech chunk %d/%d (lang %s)", resp.StatusCode, idx+1, total, lang)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("empty audio for speech chunk %d/%d", idx+1, total)
	}
	return body, nil
}

// Chunks splits text into pieces of at most max runes. Breaks fall after
// sentence punctuation where possible, then between words; a word longer
// than max is cut.
func Chunks(text string, max int) []string {
	var pieces []string
	for _, sentence := range splitSentences(text) {
		pieces = append(pieces, splitWords(sentence, max)...)
	}

	var chunks []string
	var cur string
	for _, p := range pieces {
		switch {
		case cur == "":
			cur = p
		case utf8.RuneCountInString(cur)+1+utf8.RuneCountInString(p) <= max:
			cur += " " + p
		default:
			chunks = append(chunks, cur)
			cur = p
		}
	}
	if cur != "" {
		chunks = append(chunks, cur)
	}
	return chunks
}

// splitSentences cuts text after sentence punctuation.
func splitSentences(text string) []string {
	var out []string
	start := 0
	for i, r := range text {
		if strings.ContainsRune(".!?;:。！？；", r) {
			end := i + utf8.RuneLen(r)
			if s := strings.TrimSpace(text[start:end]); s != "" {
				out = append(out, s)
			}
			start = end
		}
	}
	if s := strings.TrimSpace(text[start:]); s != "" {
		out = append(out, s)
	}
	return out
}

// splitWords packs the words of a sentence into pieces of at most max runes.
func splitWords(sentence string, max int) []string {
	if utf8.RuneCountInString(sentence) <= max {
		return []string{strings.Join(strings.Fields(sentence), " ")}
	}

	var out []string
	var cur string
	for _, w := range strings.Fields(sentence) {
		for utf8.RuneCountInString(w) > max {
			if cur != "" {
				out = append(out, cur)
				cur = ""
			}
			head := transdoc.Truncate(w, max)
			out = append(out, head)
			w = w[len(head):]
		}
		switch {
		case cur == "":
			cur = w
		case utf8.RuneCountInString(cur)+1+utf8.RuneCountInString(w) <= max:
			cur += " " + w
		default:
			out = append(out, cur)
			cur = w
		}
	}
	if cur != "" {
		out = append(out, cur)
	}
	return out
}
