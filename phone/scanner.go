package phone

import (
	"context"
	"strings"
	"unicode"

	pool "github.com/jolestar/go-commons-pool"

	"github.com/glottis/ipa"
)

// A Scanner walks transcription text from left to right and groups
// code-points into phones according to IPA composition rules:
//
// ▪ a new phone begins at every letter not joined to the previous one
// by a tie bar;
//
// ▪ a tie bar extends the current phone with the following letter
// (affricate formation);
//
// ▪ combining diacritics and trailing suprasegmentals (length, tone)
// attach to the current phone;
//
// ▪ stress and accent marks attach as a prefix to the following phone,
// since stress precedes the syllable it marks;
//
// ▪ break and intonation symbols become phones of their own.
//
// A Scanner may be re-initialized and re-used; scanning identical
// input always produces the identical phone sequence.
type Scanner struct {
	input   []rune // NFD-normalized input
	pos     int    // index of the next rune to consume
	current Phone  // most recent completed phone
	builder *phoneBuilder
	pending struct { // stress/accent waiting for the next phone
		stress ipa.Stress
		accent ipa.Accent
	}
	err   error
	eot   bool
	queue []Phone // completed phones not yet handed out
}

// NewScanner creates a Scanner. Clients have to call Init before use.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Init (re-)initializes the scanner for a transcription string.
// Surrounding phonetic/phonemic bracket symbols are ignored.
func (s *Scanner) Init(text string) {
	s.input = []rune(ipa.NFD(text))
	s.pos = 0
	s.current = Phone{}
	s.pending.stress = ipa.NoStress
	s.pending.accent = ipa.NoAccent
	s.err = nil
	s.eot = false
	s.queue = s.queue[:0]
	if s.builder != nil {
		s.builder.release()
		s.builder = nil
	}
}

// Err returns the first error encountered while scanning, or nil.
func (s *Scanner) Err() error {
	return s.err
}

// Phone returns the phone produced by the most recent call to Next.
func (s *Scanner) Phone() Phone {
	return s.current
}

// Next advances the scanner to the next phone, which will then be
// available through the Phone method. It returns false when scanning
// stops, either by reaching the end of the input or on malformed
// input. After Next returns false, Err returns the error, if any.
func (s *Scanner) Next() bool {
	if s.err != nil {
		return false
	}
	for len(s.queue) == 0 && !s.eot {
		if !s.step() {
			return false
		}
	}
	if len(s.queue) == 0 {
		return false
	}
	s.current = s.queue[0]
	s.queue = s.queue[1:]
	T().Debugf("scanner: next phone = %q", s.current.Text)
	return true
}

// step consumes one rune of input, emitting zero or more phones into
// the queue. It returns false on malformed input.
func (s *Scanner) step() bool {
	if s.pos >= len(s.input) {
		s.flushBuilder()
		if s.pending.stress != ipa.NoStress || s.pending.accent != ipa.NoAccent {
			// Dangling stress or accent mark at end of input.
			mark := s.pending.stress.Mark()
			if mark == "" {
				mark = s.pending.accent.Mark()
			}
			s.err = ipa.MalformedInputError{Symbol: mark, Offset: s.pos - 1}
			return false
		}
		s.eot = true
		return true
	}
	r := s.input[s.pos]
	offset := s.pos
	s.pos++
	c := string(r)

	switch {
	case unicode.IsSpace(r) || c == ipa.BreakWord:
		// Whitespace runs collapse into a single word break.
		for s.pos < len(s.input) && unicode.IsSpace(s.input[s.pos]) {
			s.pos++
		}
		s.emitBreak(ipa.WordBreak, ipa.BreakWord)

	case ipa.IsBracket(c):
		// Transcription brackets carry no phonetic content.

	case ipa.IsBreak(c):
		kind, _ := ipa.BreakKindOf(c)
		s.emitBreak(kind, c)

	case ipa.IsIntonation(c):
		s.flushBuilder()
		s.queue = append(s.queue, Phone{Text: c, Kind: Intonation})

	case ipa.IsStress(c):
		s.flushBuilder()
		if c == ipa.StressPrimary {
			s.pending.stress = ipa.Primary
		} else {
			s.pending.stress = ipa.Secondary
		}

	case ipa.IsAccent(c) && s.builder == nil:
		// A leading accent mark prefixes the following phone. (The
		// grave accent shares its symbol with tone 2, which trails.)
		s.flushBuilder()
		if c == ipa.AccentAcute {
			s.pending.accent = ipa.Acute
		} else {
			s.pending.accent = ipa.Grave
		}

	case ipa.IsTie(c):
		if s.builder == nil {
			s.err = ipa.MalformedInputError{Symbol: c, Offset: offset}
			return false
		}
		s.builder.tie(c)

	case ipa.IsLong(c) || c == ipa.HalfLongMark:
		if s.builder == nil {
			s.err = ipa.MalformedInputError{Symbol: c, Offset: offset}
			return false
		}
		s.builder.length(c)

	case ipa.IsTone(c) || c == ipa.ToneGlottalized:
		if s.builder == nil {
			s.err = ipa.MalformedInputError{Symbol: c, Offset: offset}
			return false
		}
		s.builder.tone(c)

	case isCombining(r):
		if s.builder == nil {
			s.err = ipa.MalformedInputError{Symbol: c, Offset: offset}
			return false
		}
		s.builder.diacritic(c)

	default:
		// A letter. It either extends the current phone across a tie
		// bar or starts a new one.
		if s.builder != nil && s.builder.joinNext {
			s.builder.letter(c)
			break
		}
		s.flushBuilder()
		s.builder = newPhoneBuilder()
		s.builder.stress = s.pending.stress
		s.builder.accent = s.pending.accent
		s.pending.stress = ipa.NoStress
		s.pending.accent = ipa.NoAccent
		s.builder.letter(c)
	}
	return true
}

func (s *Scanner) emitBreak(kind ipa.BreakKind, text string) {
	s.flushBuilder()
	s.queue = append(s.queue, Phone{Text: text, Kind: Break, BreakKind: kind})
}

// flushBuilder completes the phone under construction, if any.
func (s *Scanner) flushBuilder() {
	if s.builder == nil {
		return
	}
	s.queue = append(s.queue, s.builder.phone())
	s.builder.release()
	s.builder = nil
}

// isCombining is true for code-points with a non-zero canonical
// combining class.
func isCombining(r rune) bool {
	return ipa.ClassForRune(r) == ipa.Diacritic || ipa.ClassForRune(r) == ipa.Tie
}

// Tokenize scans a complete transcription into a phone sequence. It is
// a convenience wrapper around Scanner.
func Tokenize(text string) ([]Phone, error) {
	scanner := NewScanner()
	scanner.Init(text)
	var phones []Phone
	for scanner.Next() {
		phones = append(phones, scanner.Phone())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return phones, nil
}

// --- Phone builder -----------------------------------------------------

// Phone builders are short-lived objects; one is borrowed per phone
// under construction. To avoid multiple allocation of small objects we
// pool them.
type phoneBuilder struct {
	letters    strings.Builder // letters and ties, decomposed
	body       strings.Builder // letters, ties and diacritics, decomposed
	diacritics []string
	stress     ipa.Stress
	accent     ipa.Accent
	plength    ipa.Length
	ptone      strings.Builder
	joinNext   bool
}

type builderPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalBuilderPool *builderPool

func init() {
	globalBuilderPool = &builderPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &phoneBuilder{}, nil
		})
	globalBuilderPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalBuilderPool.opool = pool.NewObjectPool(globalBuilderPool.ctx, factory, config)
}

func newPhoneBuilder() *phoneBuilder {
	o, _ := globalBuilderPool.opool.BorrowObject(globalBuilderPool.ctx)
	pb := o.(*phoneBuilder)
	return pb
}

// Clears the builder and puts it back into the pool.
func (pb *phoneBuilder) release() {
	pb.letters.Reset()
	pb.body.Reset()
	pb.diacritics = nil
	pb.stress = ipa.NoStress
	pb.accent = ipa.NoAccent
	pb.plength = ipa.LengthNormal
	pb.ptone.Reset()
	pb.joinNext = false
	_ = globalBuilderPool.opool.ReturnObject(globalBuilderPool.ctx, pb)
}

func (pb *phoneBuilder) letter(c string) {
	pb.letters.WriteString(c)
	pb.body.WriteString(c)
	pb.joinNext = false
}

func (pb *phoneBuilder) tie(c string) {
	pb.letters.WriteString(c)
	pb.body.WriteString(c)
	pb.joinNext = true
}

func (pb *phoneBuilder) diacritic(c string) {
	pb.diacritics = append(pb.diacritics, c)
	pb.body.WriteString(c)
}

func (pb *phoneBuilder) length(c string) {
	if c == ipa.LongMark {
		pb.plength = ipa.LengthLong
	} else {
		pb.plength = ipa.LengthHalf
	}
}

func (pb *phoneBuilder) tone(c string) {
	pb.ptone.WriteString(c)
}

// phone assembles the completed Phone value.
func (pb *phoneBuilder) phone() Phone {
	var text strings.Builder
	text.WriteString(pb.stress.Mark())
	text.WriteString(pb.accent.Mark())
	text.WriteString(pb.body.String())
	text.WriteString(pb.plength.Mark())
	text.WriteString(pb.ptone.String())
	diacritics := make([]string, len(pb.diacritics))
	copy(diacritics, pb.diacritics)
	return Phone{
		Text:       ipa.NFC(text.String()),
		Letters:    ipa.NFC(pb.letters.String()),
		Kind:       Sound,
		Stress:     pb.stress,
		Accent:     pb.accent,
		Length:     pb.plength,
		Diacritics: diacritics,
		Tone:       pb.ptone.String(),
	}
}
