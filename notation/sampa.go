package notation

// X-SAMPA tokens, see http://www.blahedo.org/ascii-ipa.html
var sampaPairs = []Pair{
	// Vowels
	{"a", "a"},
	{"ɐ", "6"},
	{"ɑ", "A"},
	{"ɒ", "Q"},
	{"æ", "{"},
	{"ʌ", "V"},
	{"e", "e"},
	{"ə", "@"},
	{"ɚ", "@`"},
	{"ɘ", "@\\"},
	{"ɛ", "E"},
	{"ɜ", "3"},
	{"ɝ", "@`"},
	{"ɞ", "3\\"},
	{"ɤ", "7"},
	{"i", "i"},
	{"ɨ", "1"},
	{"ɪ", "I"},
	{"o", "o"},
	{"ɵ", "8"},
	{"ø", "2"},
	{"œ", "9"},
	{"ɶ", "&"},
	{"ɔ", "O"},
	{"u", "u"},
	{"ʉ", "}"},
	{"ʊ", "U"},
	{"ɯ", "M"},
	{"y", "y"},
	{"ʏ", "Y"},

	// Consonants
	{"b", "b"},
	{"ɓ", ""},
	{"ʙ", "B\\"},
	{"β", "B"},
	{"c", "c"},
	{"ç", "C"},
	{"ç", "C"},
	{"ɕ", "s\\"},
	{"d", "d"},
	{"ɗ", ""},
	{"ɖ", "d`"},
	{"ð", "D"},
	{"f", "f"},
	{"ɡ", "g"},
	{"g", "g"},
	{"ɠ", ""},
	{"ɢ", "G\\"},
	{"ʛ", "G\\_<"},
	{"ɣ", "G"},
	{"h", "h"},
	{"ħ", "X\\"},
	{"ɦ", "h\\"},
	{"ɧ", "x\\"},
	{"ɥ", "H"},
	{"ʜ", "H\\"},
	{"j", "j"},
	{"ʝ", "j\\"},
	{"ɟ", "J\\"},
	{"ʄ", "J\\_<"},
	{"k", "k"},
	{"l", "l"},
	{"ɫ", "5"},
	{"ɬ", "K"},
	{"ɭ", "l`"},
	{"ɮ", "K\\"},
	{"ʟ", "L\\"},
	{"m", "m"},
	{"ɱ", "F"},
	{"ɰ", "M\\"},
	{"n", "n"},
	{"ɲ", "J"},
	{"ŋ", "N"},
	{"ɳ", "n`"},
	{"ɴ", "N\\"},
	{"p", "p"},
	{"ɸ", "p\\"},
	{"q", "q"},
	{"r", "r"},
	{"ɾ", "4"},
	{"ɼ", ""},
	{"ɽ", "r`"},
	{"ɹ", "r\\"},
	{"ɻ", "r\\`"},
	{"ɺ", "l\\"},
	{"ʀ", "R\\"},
	{"ʁ", "R"},
	{"s", "s"},
	{"ʂ", "s`"},
	{"ʃ", "S"},
	{"t", "t"},
	{"ʈ", "t`"},
	{"θ", "T"},
	{"v", "v"},
	{"ʋ", "v\\"},
	{"w", "w"},
	{"ʍ", "W"},
	{"x", "x"},
	{"χ", "X"},
	{"ʎ", "L"},
	{"z", "z"},
	{"ʑ", "z\\"},
	{"ʐ", "z`"},
	{"ʒ", "Z"},
	{"ʔ", "?"},
	{"ʡ", ">\\"},
	{"ʕ", "?\\"},
	{"ʢ", "<\\"},

	// Clicks
	{"ʘ", "O\\"},
	{"ǃ", "!\\"},
	{"ǀ", "|\\"},
	{"ǁ", "|\\|\\"},

	// Modifier letters
	{"ʰ", "_h"},
	{"ʲ", "_j"},
	{"ʷ", "_w"},
	{"ˠ", "_G"},
	{"ˤ", "_?\\"},

	// Diacritics
	{"̃", "~"},   // nasalized
	{"̴", "_e"},  // velarized or pharyngealized
	{"̥", "_0"},  // voiceless
	{"̊", ""},    // voiceless (above)
	{"̤", "_t"},  // breathy voiced
	{"̚", "_}"},  // no audible release
	{"˞", "`"},   // rhoticity
	{"̠", "_-"},  // retracted
	{"̪", "_d"},  // dental
	{"̺", "_a"},  // apical
	{"̟", "_+"},  // advanced
	{"̝", "_r"},  // raised
	{"̞", "_o"},  // lowered
	{"̈", "_\""}, // centralized
	{"̰", "_k"},  // creaky voiced
	{"̬", "_v"},  // voiced
	{"̆", "_X"},  // extra-short
	{"̯", "_^"},  // non-syllabic
	{"̽", ""},    // mid-centralized
	{"̻", "_m"},  // laminal
	{"̘", "_A"},  // advanced tongue root
	{"̙", "_q"},  // retracted tongue root
	{"̼", "_N"},  // linguolabial
	{"̜", "_c"},  // less rounded
	{"̹", "_O"},  // more rounded

	// Tone diacritics
	{"̏", "_B"}, // extra low
	{"̀", "_L"}, // low
	{"̄", "_M"}, // mid
	{"́", "_H"}, // high
	{"̋", "_T"}, // extra high

	// Suprasegmentals
	{"ˈ", "\""},
	{"ˌ", "%"},
	{"ː", ":"},
	{"ˑ", ":\\"},
	{"ʼ", ""},
	{".", ""},
	{"↗", "<R>"},
	{"↑", "^"},
	{"↘", ""},
	{"↓", "!"},

	// Ties
	{"͡", ""},
	{"͜", ""},

	// Tied symbols with dedicated mnemonics
	{"ʈ͡ʂ", "ts`"},
	{"ɖ͡ʐ", "dz`"},
	{"k͡x", "k_x"},

	// Breaks
	{"|", ""},
	{"‖", ""},
	{"#", ""},
}
