/*
Package phoneme groups phone sequences into language-specific phonemes.

A language's phoneme inventory is a table of rules, each mapping a
canonical phoneme spelling to a set of surface variant spellings that
should be folded into it. Tables for a number of languages are embedded
in the package and loaded on first use:

	table, err := phoneme.FromLanguage("en-us")
	if err != nil { … }
	phonemes, err := table.Split("/dʒʌst ə kˈaʊ/", phoneme.GroupOptions{KeepStress: true})

Grouping scans the phone sequence with greedy longest-match over both
canonical spellings and registered variants, so untied affricates
("dʒ") and diphthongs ("aʊ") merge into single phonemes. Unmatched
phones pass through unchanged.

Clients may also load their own inventory from a text file with
FromText. The file format is line-oriented: each non-blank line not
starting with '#' reads

	<phoneme> <example-word> [<replace-token> ...]

where the example word is documentation only.

BSD License

Copyright (c) 2023–24, the glottis/ipa authors

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

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
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS
FOR A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE
COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT,
INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING,
BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES;
LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT
LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN
ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
POSSIBILITY OF SUCH DAMAGE.
*/
package phoneme

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
