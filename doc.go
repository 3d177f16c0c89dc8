/*
Package ipa is about working with transcriptions in the
International Phonetic Alphabet.

Description

IPA transcriptions are plain Unicode text, but they are not plain
sequences of characters: a single pronounceable unit (a phone) may be
spelled with several code-points. A base letter may carry combining
diacritics (nasalization, syllabicity), it may be joined to a second
letter by a tie bar to form an affricate, and it may be surrounded by
suprasegmental marks for stress, length, tone or intonation. Treating
each code-point as a unit therefore mis-segments almost every
non-trivial transcription.

This package is the symbol table for the rest of the module: it knows
the IPA letters together with their articulatory features (vowel
height, placement and roundedness; consonant place, manner and
voicing), the combining diacritics, and the suprasegmental marks, and
it classifies arbitrary symbol strings against that inventory.

Algorithms operating on top of the symbol table live in sub-packages:

▪ Package phone segments transcription text into phones.

▪ Package phoneme groups phones into language-specific phonemes,
using per-language tables.

▪ Package notation converts transcriptions between IPA and other
phonetic notations (eSpeak, SAMPA).

▪ Packages features and accent derive feature vectors and
cross-language phoneme mappings.

All tables in this package are built once and never mutated; the
exported lookup functions are safe for concurrent use without locking.

BSD License

Copyright (c) 2023–24, the glottis/ipa authors

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package ipa

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
