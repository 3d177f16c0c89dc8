/*
Package phone segments IPA transcription text into phones.

A phone is one pronounceable unit: one or more base letters joined by
tie bars (affricates like t͡ʃ), together with any combining diacritics
and the suprasegmental marks attached to it. Stress marks precede the
syllable they mark, so a leading stress mark becomes a prefix of the
following phone, not a suffix of the preceding one. Break symbols
("|", "‖", "#", whitespace) and intonation marks are emitted as phones
of their own, so that a tokenized transcription can be reassembled
without loss.

The Scanner type provides an interface similar to bufio.Scanner:
successive calls to its Next method step through the phones of a
transcription.

  scanner := phone.NewScanner()
  scanner.Init("ˈjɛs|ˈt͡ʃuːz")
  for scanner.Next() {
    // do something with scanner.Phone()
  }
  if err := scanner.Err(); err != nil ...

Tokenize is a convenience wrapper doing exactly that.

Scanning is a pure function of the input text: identical input always
yields the identical phone sequence. Malformed input (a combining
diacritic or tie bar with no letter to attach to) surfaces as a
MalformedInputError carrying the rune offset of the offending symbol;
the scanner never drops symbols silently.

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
package phone

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
