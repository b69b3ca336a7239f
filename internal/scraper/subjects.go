package scraper

// DefaultSubjects is the known subject-code list, used when the caller
// does not supply its own. Last updated: Jan 2026.
func DefaultSubjects() []string {
	return []string{
		"AAAS", "AFSC", "AMCI", "ANTH", "APPL", "ARAB", "ARCH", "ARCR",
		"ARTS", "ASIA", "ASTR", "BIOE", "BIOS", "BUSI", "CEVE", "CHBE",
		"CHEM", "CHIN", "CLAS", "CLIC", "CMOR", "COLL", "COMM", "COMP",
		"CSCI", "DSCI", "DSRT", "ECON", "EDES", "EDUC", "EEPS", "ELEC",
		"EMBA", "EMSP", "ENGI", "ENGL", "ENST", "EURO", "FILM", "FOTO",
		"FREN", "FWIS", "GERM", "GLBL", "GLHT", "GREE", "HART", "HEAL",
		"HEBR", "HIST", "HONS", "HUMA", "HURC", "INDE", "INDS", "ITAL",
		"JAPA", "JWST", "KINE", "KORE", "LALX", "LATI", "LEAD", "LING",
		"LPAP", "LPCR", "MACC", "MATH", "MDEM", "MDHM", "MDIA", "MECH",
		"MEOS", "MGMP", "MGMT", "MGMW", "MILI", "MSNE", "MUCH", "MUSI",
		"NAVA", "NEUR", "NSCI", "PHIL", "PHYS", "PJHC", "PLST", "POLI",
		"PORT", "PSYC", "RCEL", "RELI", "SMGT", "SOCI", "SOPA", "SOPE",
		"SOSC", "SPAN", "SSPB", "STAT", "SWGS", "THEA", "TIBT", "UNIV",
	}
}
