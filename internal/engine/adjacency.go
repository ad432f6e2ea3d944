package engine

// neighbors is the curated land-adjacency dataset, keyed by ISO
// 3166-1 alpha-2 code. Each border is listed once; lookups are
// bidirectional. This is authoritative data layered over the geometry
// sampler: the sampler is an approximation and misses pairs whose
// subsampled rings skip the shared border, so known neighbors are
// pinned here to keep gameplay consistent.
//
// Grouped by region for auditability. Edit as data, not logic.
var neighbors = map[string][]string{
	// South America
	"AR": {"CL", "BO", "PY", "BR", "UY"},
	"BR": {"UY", "PY", "BO", "PE", "CO", "VE", "GY", "SR", "GF"},
	"CL": {"BO", "PE"},
	"CO": {"VE", "PE", "EC", "PA"},
	"PE": {"EC", "BO"},
	"BO": {"PY"},
	"VE": {"GY"},
	"GY": {"SR"},
	"GF": {"SR"},

	// North and Central America
	"US": {"CA", "MX"},
	"MX": {"GT", "BZ"},
	"GT": {"BZ", "HN", "SV"},
	"HN": {"SV", "NI"},
	"NI": {"CR"},
	"CR": {"PA"},
	"HT": {"DO"},

	// Europe
	"ES": {"PT", "FR", "AD"},
	"FR": {"BE", "LU", "DE", "CH", "IT", "MC", "AD"},
	"BE": {"NL", "LU", "DE"},
	"NL": {"DE"},
	"DE": {"DK", "PL", "CZ", "AT", "CH", "LU"},
	"CH": {"IT", "AT"},
	"IT": {"SI", "AT", "SM", "VA"},
	"AT": {"SI", "HU", "SK", "CZ"},
	"PL": {"CZ", "SK", "UA", "BY", "LT", "RU"},
	"CZ": {"SK"},
	"SK": {"HU", "UA"},
	"HU": {"RO", "RS", "HR", "SI", "UA"},
	"RO": {"MD", "UA", "BG", "RS"},
	"BG": {"RS", "MK", "GR", "TR"},
	"GR": {"AL", "MK", "TR"},
	"AL": {"ME", "MK", "RS"},
	"HR": {"RS", "BA", "ME", "SI"},
	"BA": {"RS", "ME"},
	"RS": {"ME", "MK"},
	"UA": {"BY", "RU", "MD"},
	"BY": {"RU", "LT", "LV"},
	"RU": {"LV", "EE", "LT", "FI", "NO", "GE", "AZ", "KZ", "CN", "MN", "KP"},
	"FI": {"SE", "NO"},
	"SE": {"NO"},
	"EE": {"LV"},
	"LT": {"LV"},
	"IE": {"GB"},

	// Middle East and Caucasus
	"TR": {"GE", "AM", "AZ", "IR", "IQ", "SY"},
	"SY": {"IQ", "JO", "LB", "IL"},
	"IL": {"JO", "LB", "EG", "PS"},
	"PS": {"JO", "EG"},
	"JO": {"IQ", "SA"},
	"SA": {"IQ", "KW", "QA", "AE", "OM", "YE"},
	"IQ": {"IR", "KW"},
	"IR": {"AM", "AZ", "TM", "AF", "PK"},
	"AE": {"OM"},
	"OM": {"YE"},
	"GE": {"AM", "AZ"},
	"AM": {"AZ"},

	// Central, South and East Asia
	"KZ": {"UZ", "TM", "KG", "CN"},
	"UZ": {"TM", "KG", "TJ", "AF"},
	"TM": {"AF"},
	"KG": {"TJ", "CN"},
	"TJ": {"AF", "CN"},
	"AF": {"PK", "CN"},
	"PK": {"IN", "CN"},
	"IN": {"CN", "NP", "BT", "BD", "MM"},
	"NP": {"CN"},
	"BT": {"CN"},
	"BD": {"MM"},
	"MM": {"CN", "TH", "LA"},
	"TH": {"LA", "KH", "MY"},
	"LA": {"CN", "VN", "KH"},
	"VN": {"CN", "KH"},
	"MY": {"ID", "BN"},
	"ID": {"PG", "TL"},
	"CN": {"MN", "KP"},
	"KP": {"KR"},

	// Africa
	"MA": {"DZ"},
	"DZ": {"TN", "LY", "NE", "ML", "MR"},
	"TN": {"LY"},
	"LY": {"EG", "TD", "NE", "SD"},
	"EG": {"SD"},
	"SD": {"TD", "ER", "ET", "CF", "LY"},
	"ER": {"ET", "DJ"},
	"ET": {"DJ", "SO", "KE"},
	"DJ": {"SO"},
	"SO": {"KE"},
	"KE": {"UG", "TZ"},
	"UG": {"TZ", "RW", "CD"},
	"TZ": {"RW", "BI", "CD", "ZM", "MW", "MZ"},
	"RW": {"BI", "CD"},
	"BI": {"CD"},
	"CD": {"CF", "CG", "AO", "ZM"},
	"CF": {"CM", "TD", "CG"},
	"TD": {"NE", "NG", "CM"},
	"NE": {"NG", "ML", "BF", "BJ"},
	"NG": {"BJ", "CM"},
	"CM": {"GQ", "GA", "CG"},
	"GA": {"CG", "GQ"},
	"CG": {"AO"},
	"AO": {"ZM", "NA"},
	"ZM": {"MW", "MZ", "ZW", "BW", "NA"},
	"MW": {"MZ"},
	"MZ": {"ZW", "ZA", "SZ"},
	"ZW": {"BW", "ZA"},
	"BW": {"NA", "ZA"},
	"NA": {"ZA"},
	"ZA": {"LS", "SZ"},
	"ML": {"SN", "MR", "GN", "CI", "BF"},
	"SN": {"MR", "GM", "GN", "GW"},
	"GW": {"GN"},
	"GN": {"SL", "LR", "CI"},
	"SL": {"LR"},
	"LR": {"CI"},
	"CI": {"BF", "GH"},
	"BF": {"GH", "TG", "BJ"},
	"GH": {"TG"},
	"TG": {"BJ"},
}

// adjacencySet holds every border as an unordered code pair.
var adjacencySet = buildAdjacencySet()

func buildAdjacencySet() map[[2]string]struct{} {
	set := make(map[[2]string]struct{})
	for code, list := range neighbors {
		for _, other := range list {
			set[pairKey(code, other)] = struct{}{}
		}
	}
	return set
}

func pairKey(a, b string) [2]string {
	if a > b {
		a, b = b, a
	}
	return [2]string{a, b}
}

// adjacent reports whether two ISO codes share a curated land border.
func adjacent(a, b string) bool {
	_, ok := adjacencySet[pairKey(a, b)]
	return ok
}
