package plural

// catalog lists the rule families in priority order. A language appears in
// at most one family; Validate reports violations.
var catalog = []Family{
	{
		ID:        "IntOneOrZero",
		Languages: []Language{
			{Tag: "ak", Name: "Akan"},
			{Tag: "bh", Name: "Bihari"},
			{Tag: "guw", Name: "Gun"},
			{Tag: "ln", Name: "Lingala"},
			{Tag: "mg", Name: "Malagasy"},
			{Tag: "nso", Name: "Northern Sotho"},
			{Tag: "pa", Name: "Punjabi"},
			{Tag: "ti", Name: "Tigrinya"},
			{Tag: "wa", Name: "Walloon"},
		},
	},
	{
		ID:        "ZeroToOne",
		Languages: []Language{
			{Tag: "am", Name: "Amharic"},
			{Tag: "bn", Name: "Bengali"},
			{Tag: "ff", Name: "Fulah"},
			{Tag: "gu", Name: "Gujarati"},
			{Tag: "hi", Name: "Hindi"},
			{Tag: "kn", Name: "Kannada"},
			{Tag: "mr", Name: "Marathi"},
			{Tag: "fa", Name: "Persian"},
			{Tag: "zu", Name: "Zulu"},
		},
	},
	{
		ID:        "ZeroToTwoExcluded",
		Languages: []Language{
			{Tag: "hy", Name: "Armenian"},
			{Tag: "fr", Name: "French"},
			{Tag: "kab", Name: "Kabyle"},
		},
	},
	{
		ID:        "OnlyOne",
		Languages: []Language{
			{Tag: "af", Name: "Afrikaans"},
			{Tag: "sq", Name: "Albanian"},
			{Tag: "ast", Name: "Asturian"},
			{Tag: "asa", Name: "Asu"},
			{Tag: "az", Name: "Azerbaijani"},
			{Tag: "eu", Name: "Basque"},
			{Tag: "bem", Name: "Bemba"},
			{Tag: "bez", Name: "Bena"},
			{Tag: "brx", Name: "Bodo"},
			{Tag: "bg", Name: "Bulgarian"},
			{Tag: "ca", Name: "Catalan"},
			{Tag: "chr", Name: "Cherokee"},
			{Tag: "cgg", Name: "Chiga"},
			{Tag: "dv", Name: "Divehi"},
			{Tag: "nl", Name: "Dutch"},
			{Tag: "en", Name: "English"},
			{Tag: "eo", Name: "Esperanto"},
			{Tag: "et", Name: "Estonian"},
			{Tag: "pt", Name: "European Portuguese"},
			{Tag: "ee", Name: "Ewe"},
			{Tag: "fo", Name: "Faroese"},
			{Tag: "fi", Name: "Finnish"},
			{Tag: "fur", Name: "Friulian"},
			{Tag: "gl", Name: "Galician"},
			{Tag: "lg", Name: "Ganda"},
			{Tag: "ka", Name: "Georgian"},
			{Tag: "de", Name: "German"},
			{Tag: "el", Name: "Greek"},
			{Tag: "ha", Name: "Hausa"},
			{Tag: "haw", Name: "Hawaiian"},
			{Tag: "hu", Name: "Hungarian"},
			{Tag: "it", Name: "Italian"},
			{Tag: "kaj", Name: "Jju"},
			{Tag: "kkj", Name: "Kako"},
			{Tag: "kl", Name: "Kalaallisut"},
			{Tag: "ks", Name: "Kashmiri"},
			{Tag: "kk", Name: "Kazakh"},
			{Tag: "ku", Name: "Kurdish"},
			{Tag: "ky", Name: "Kyrgyz"},
			{Tag: "lb", Name: "Luxembourgish"},
			{Tag: "jmc", Name: "Machame"},
			{Tag: "ml", Name: "Malayalam"},
			{Tag: "mas", Name: "Masai"},
			{Tag: "mgo", Name: "Meta'"},
			{Tag: "mn", Name: "Mongolian"},
			{Tag: "nah", Name: "Nahuatl"},
			{Tag: "ne", Name: "Nepali"},
			{Tag: "nnh", Name: "Ngiemboon"},
			{Tag: "jgo", Name: "Ngomba"},
			{Tag: "nd", Name: "North Ndebele"},
			{Tag: "no", Name: "Norwegian"},
			{Tag: "nb", Name: "Norwegian Bokmål"},
			{Tag: "nn", Name: "Norwegian Nynorsk"},
			{Tag: "ny", Name: "Nyanja"},
			{Tag: "nyn", Name: "Nyankole"},
			{Tag: "or", Name: "Oriya"},
			{Tag: "om", Name: "Oromo"},
			{Tag: "os", Name: "Ossetic"},
			{Tag: "pap", Name: "Papiamento"},
			{Tag: "ps", Name: "Pashto"},
			{Tag: "rm", Name: "Romansh"},
			{Tag: "rof", Name: "Rombo"},
			{Tag: "rwk", Name: "Rwa"},
			{Tag: "ssy", Name: "Saho"},
			{Tag: "sag", Name: "Samburu"},
			{Tag: "seh", Name: "Sena"},
			{Tag: "ksb", Name: "Shambala"},
			{Tag: "sn", Name: "Shona"},
			{Tag: "xog", Name: "Soga"},
			{Tag: "so", Name: "Somali"},
			{Tag: "ckb", Name: "Sorani Kurdish"},
			{Tag: "nr", Name: "South Ndebele"},
			{Tag: "st", Name: "Southern Sotho"},
			{Tag: "es", Name: "Spanish"},
			{Tag: "sw", Name: "Swahili"},
			{Tag: "ss", Name: "Swati"},
			{Tag: "sv", Name: "Swedish"},
			{Tag: "gsw", Name: "Swiss German"},
			{Tag: "syr", Name: "Syriac"},
			{Tag: "ta", Name: "Tamil"},
			{Tag: "te", Name: "Telugu"},
			{Tag: "teo", Name: "Teso"},
			{Tag: "tig", Name: "Tigre"},
			{Tag: "ts", Name: "Tsonga"},
			{Tag: "tn", Name: "Tswana"},
			{Tag: "tr", Name: "Turkish"},
			{Tag: "tk", Name: "Turkmen"},
			{Tag: "kcg", Name: "Tyap"},
			{Tag: "ur", Name: "Urdu"},
			{Tag: "ug", Name: "Uyghur"},
			{Tag: "uz", Name: "Uzbek"},
			{Tag: "ve", Name: "Venda"},
			{Tag: "vo", Name: "Volapük"},
			{Tag: "vun", Name: "Vunjo"},
			{Tag: "wae", Name: "Walser"},
			{Tag: "fy", Name: "Western Frisian"},
			{Tag: "xh", Name: "Xhosa"},
			{Tag: "yi", Name: "Yiddish"},
			{Tag: "ji", Name: "Yiddish (legacy code)"},
		},
	},
	{
		ID:        "Sinhala",
		Languages: []Language{
			{Tag: "si", Name: "Sinhala"},
		},
	},
	{
		ID:        "Latvian",
		Languages: []Language{
			{Tag: "lv", Name: "Latvian"},
			{Tag: "prg", Name: "Prussian"},
		},
	},
	{
		ID:        "Irish",
		Languages: []Language{
			{Tag: "ga", Name: "Irish"},
		},
	},
	{
		ID:        "Romanian",
		Languages: []Language{
			{Tag: "ro", Name: "Romanian"},
			{Tag: "mo", Name: "Moldavian"},
		},
	},
	{
		ID:        "Lithuanian",
		Languages: []Language{
			{Tag: "lt", Name: "Lithuanian"},
		},
	},
	{
		ID:        "Slavic",
		Languages: []Language{
			{Tag: "ru", Name: "Russian"},
			{Tag: "uk", Name: "Ukrainian"},
			{Tag: "be", Name: "Belarusian"},
		},
	},
	{
		ID:        "Czech",
		Languages: []Language{
			{Tag: "cs", Name: "Czech"},
			{Tag: "sk", Name: "Slovak"},
		},
	},
	{
		ID:        "Polish",
		Languages: []Language{
			{Tag: "pl", Name: "Polish"},
		},
	},
	{
		ID:        "Slovenian",
		Languages: []Language{
			{Tag: "sl", Name: "Slovenian"},
		},
	},
	{
		ID:        "Arabic",
		Languages: []Language{
			{Tag: "ar", Name: "Arabic"},
		},
	},
	{
		ID:        "Hebrew",
		Languages: []Language{
			{Tag: "he", Name: "Hebrew"},
			{Tag: "iw", Name: "Hebrew (legacy code)"},
		},
	},
	{
		ID:        "Filipino",
		Languages: []Language{
			{Tag: "fil", Name: "Filipino"},
			{Tag: "tl", Name: "Tagalog"},
		},
	},
	{
		ID:        "Macedonian",
		Languages: []Language{
			{Tag: "mk", Name: "Macedonian"},
		},
	},
	{
		ID:        "Breizh",
		Languages: []Language{
			{Tag: "br", Name: "Breton"},
		},
	},
	{
		ID:        "CentralAtlasTamazight",
		Languages: []Language{
			{Tag: "tzm", Name: "Central Atlas Tamazight"},
		},
	},
	{
		ID:        "OneOrZero",
		Languages: []Language{
			{Tag: "ksh", Name: "Colognian"},
		},
	},
	{
		ID:        "OneOrZeroToOneExcluded",
		Languages: []Language{
			{Tag: "lag", Name: "Langi"},
		},
	},
	{
		ID:        "OneOrTwo",
		Languages: []Language{
			{Tag: "kw", Name: "Cornish"},
			{Tag: "smn", Name: "Inari Sami"},
			{Tag: "iu", Name: "Inuktitut"},
			{Tag: "smj", Name: "Lule Sami"},
			{Tag: "naq", Name: "Nama"},
			{Tag: "se", Name: "Northern Sami"},
			{Tag: "smi", Name: "Sami languages [Other]"},
			{Tag: "sms", Name: "Skolt Sami"},
			{Tag: "sma", Name: "Southern Sami"},
		},
	},
	{
		ID:        "Croat",
		Languages: []Language{
			{Tag: "bs", Name: "Bosnian"},
			{Tag: "hr", Name: "Croatian"},
			{Tag: "sr", Name: "Serbian"},
			{Tag: "sh", Name: "Serbo-Croatian"},
		},
	},
	{
		ID:        "Tachelhit",
		Languages: []Language{
			{Tag: "shi", Name: "Tachelhit"},
		},
	},
	{
		ID:        "Icelandic",
		Languages: []Language{
			{Tag: "is", Name: "Icelandic"},
		},
	},
	{
		ID:        "Manx",
		Languages: []Language{
			{Tag: "gv", Name: "Manx"},
		},
	},
	{
		ID:        "ScottishGaelic",
		Languages: []Language{
			{Tag: "gd", Name: "Scottish Gaelic"},
		},
	},
	{
		ID:        "Maltese",
		Languages: []Language{
			{Tag: "mt", Name: "Maltese"},
		},
	},
	{
		ID:        "Welsh",
		Languages: []Language{
			{Tag: "cy", Name: "Welsh"},
		},
	},
	{
		ID:        "Danish",
		Languages: []Language{
			{Tag: "da", Name: "Danish"},
		},
	},
}
