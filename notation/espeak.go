package notation

// eSpeak phoneme mnemonics, see http://espeak.sourceforge.net/phonemes.html
//
// Several IPA symbols share an eSpeak token. The spelling listed first
// claims the token for the reverse direction, so the plain or more
// common symbol leads its group.
var espeakPairs = []Pair{
	// Vowels
	{"a", "a"},
	{"æ", "a"},
	{"ɑ", "A"},
	{"ɒ", "A."},
	{"ʌ", "V"},
	{"ɐ", "V"},
	{"e", "e"},
	{"ə", "@"},
	{"ɘ", "@"},
	{"ɝ", "3"},
	{"ɚ", "3"},
	{"ɛ", "E"},
	{"ɜ", "V\""},
	{"ɞ", "O\""},
	{"ɤ", "o-"},
	{"i", "i"},
	{"ɨ", "i\""},
	{"ɪ", "I"},
	{"o", "o"},
	{"ɵ", "@."},
	{"ø", "Y"},
	{"œ", "W"},
	{"ɶ", "W"},
	{"ɔ", "O"},
	{"u", "u"},
	{"ʉ", "u\""},
	{"ʊ", "U"},
	{"ɯ", "u-"},
	{"y", "y"},
	{"ʏ", "I."},

	// Consonants
	{"b", "b"},
	{"ɓ", "b`"},
	{"ʙ", "b<trl>"},
	{"β", "B"},
	{"c", "c"},
	{"ç", "C"},
	{"ç", "C"},
	{"ɕ", "S;"},
	{"d", "d"},
	{"ɗ", "d`"},
	{"ɖ", "d."},
	{"ð", "D"},
	{"f", "f"},
	{"ɡ", "g"},
	{"g", "g"},
	{"ɠ", "g`"},
	{"ɢ", "G"},
	{"ʛ", "G`"},
	{"ɣ", "Q"},
	{"ɰ", "Q"},
	{"h", "h"},
	{"ħ", "H"},
	{"ɦ", "h<?>"},
	{"ɧ", ""},
	{"ɥ", "j<rnd>"},
	{"ʜ", ""},
	{"j", "j"},
	{"ʝ", "C<vcd>"},
	{"ɟ", "J"},
	{"ʄ", "J`"},
	{"k", "k"},
	{"l", "l"},
	{"ɫ", "l"},
	{"ɬ", "s<lat>"},
	{"ɭ", "l."},
	{"ɮ", "z<lat>"},
	{"ʟ", "L"},
	{"m", "m"},
	{"ɱ", "M"},
	{"n", "n"},
	{"ɲ", "n^"},
	{"ŋ", "N"},
	{"ɳ", "n."},
	{"ɴ", "n\""},
	{"p", "p"},
	{"ɸ", "F"},
	{"q", "q"},
	{"r", "r<trl>"},
	{"ɹ", "r"},
	{"ʁ", "r"},
	{"ɾ", "R"},
	{"ɽ", "*."},
	{"ɼ", ""},
	{"ɻ", "r."},
	{"ɺ", "*<lat>"},
	{"ʀ", "r\""},
	{"s", "s"},
	{"ʂ", "s."},
	{"ʃ", "S"},
	{"t", "t"},
	{"ʈ", "t."},
	{"θ", "T"},
	{"v", "v"},
	{"ʋ", "v#"},
	{"w", "w"},
	{"ʍ", "w<vls>"},
	{"x", "x"},
	{"χ", "X"},
	{"ʎ", "l^"},
	{"z", "z"},
	{"ʑ", "Z;"},
	{"ʐ", "z."},
	{"ʒ", "Z"},
	{"ʔ", "?"},
	{"ʡ", ""},
	{"ʕ", "H<vcd>"},
	{"ʢ", ""},

	// Clicks
	{"ʘ", "p!"},
	{"ǃ", "c!"},
	{"ǂ", "c!"},
	{"ǀ", "t!"},
	{"ǁ", "l!"},

	// Modifier letters
	{"ʰ", "<h>"},
	{"ʲ", ";"},
	{"ʷ", "<w>"},
	{"ˠ", "~"},
	{"ˤ", "<H>"},

	// Diacritics
	{"̃", "~"},    // nasalized
	{"̴", "~"},    // velarized or pharyngealized
	{"̥", "<o>"},  // voiceless
	{"̊", ""},     // voiceless (above)
	{"̤", "<?>"},  // breathy voiced
	{"̩", "-"},    // syllabic
	{"̚", "<o>"},  // no audible release
	{"˞", "<r>"},  // rhoticity
	{"̠", ""},     // retracted
	{"̪", ""},     // dental
	{"̺", ""},     // apical
	{"̟", ""},     // advanced
	{"̝", ""},     // raised
	{"̞", ""},     // lowered
	{"̈", ""},     // centralized
	{"̰", ""},     // creaky voiced
	{"̬", ""},     // voiced
	{"̆", ""},     // extra-short
	{"̯", ""},     // non-syllabic
	{"̽", ""},     // mid-centralized
	{"̻", ""},     // laminal
	{"̘", ""},     // advanced tongue root
	{"̙", ""},     // retracted tongue root
	{"̼", ""},     // linguolabial
	{"̜", ""},     // less rounded
	{"̹", ""},     // more rounded

	// Suprasegmentals
	{"ˈ", "'"},
	{"ˌ", ","},
	{"ː", ":"},
	{"ˑ", ""},
	{"ʼ", "`"},
	{".", ""},
	{"↗", ""},
	{"↑", ""},
	{"↘", ""},
	{"↓", ""},

	// Ties
	{"͡", ""},
	{"͜", ""},

	// Tied symbols with dedicated mnemonics
	{"ʈ͡ʂ", "tS"},
	{"ɖ͡ʐ", "dz"},

	// Breaks
	{"|", "_::"},
	{"‖", "_::_::"},
	{"#", ""},
}
