package hawaiian

// defaultMacrons maps vowels bearing a kahakō to their unmarked forms.
// Unicode decomposition in stripDiacritics catches anything not listed here.
func defaultMacrons() map[rune]rune {
	return map[rune]rune{
		'ā': 'a', 'ē': 'e', 'ī': 'i', 'ō': 'o', 'ū': 'u',
		'Ā': 'A', 'Ē': 'E', 'Ī': 'I', 'Ō': 'O', 'Ū': 'U',
	}
}

// defaultOkinaVariants lists the code points sources use for the ʻokina,
// most common first. Older songbooks often omit the mark entirely, so
// comparison deletes every variant instead of canonicalizing to one.
func defaultOkinaVariants() []string {
	return []string{
		"ʻ", // modifier letter turned comma, the proper ʻokina
		"’", // right single quotation mark
		"‘", // left single quotation mark
		"`", // grave accent
		"'", // straight apostrophe
	}
}

// defaultComposerAliases maps a normalized name token to its equivalents,
// canonical form first. Only exact token matches are expanded, and a token is
// always replaced by the first entry of its list. Canonical tokens carry no
// entry so that expansion is idempotent: "chas" becomes "charles" and
// "charles" stays put.
func defaultComposerAliases() map[string][]string {
	return map[string][]string{
		"chas":    {"charles", "charlie"},
		"charlie": {"charles", "chas"},
		"will":    {"william", "w"},
		"willie":  {"william", "will"},
		"ed":      {"edward", "eddie"},
		"eddie":   {"edward", "ed"},
		"jno":     {"john"},
		"johnny":  {"john"},
		"jos":     {"joseph", "joe"},
		"joe":     {"joseph", "jos"},
		"wm":      {"william"},
		"geo":     {"george"},
		"thos":    {"thomas"},
		"jas":     {"james"},
		"sam":     {"samuel", "sammy"},
		"dan":     {"daniel", "danny"},
		"ben":     {"benjamin"},
		"alex":    {"alexander"},
		"liz":     {"elizabeth"},
		"lili":    {"liliuokalani"},
	}
}
