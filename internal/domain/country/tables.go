package country

import "github.com/okian/podium/internal/domain/types"

// continentTable maps country names, name variants and special NOC codes to a
// continent. Keys are matched exactly: case and accents as authored.
var continentTable = map[string]types.Continent{
	// Special Olympic codes: Individual Neutral Athletes, Refugee Olympic Team.
	"AIN": types.Europe,
	"EOR": types.Africa,

	// Name variants used by the datasets.
	"IR Iran":                          types.Asia,
	"Hong Kong, China":                 types.Asia,
	"Chinese Taipei":                   types.Asia,
	"Great Britain":                    types.Europe,
	"Korea":                            types.Asia,
	"DPR Korea":                        types.Asia,
	"Republic of Korea":                types.Asia,
	"Republic of Moldova":              types.Europe,
	"Türkiye":                          types.Europe,
	"Turkiye":                          types.Europe,
	"Turkey":                           types.Europe,
	"Lao PDR":                          types.Asia,
	"Virgin Islands, US":               types.NorthAmerica,
	"Virgin Islands, B":                types.NorthAmerica,
	"British Virgin Islands":           types.NorthAmerica,
	"US Virgin Islands":                types.NorthAmerica,
	"StVincent&Grenadines":             types.NorthAmerica,
	"St Vincent and the Grenadines":    types.NorthAmerica,
	"Saint Vincent and the Grenadines": types.NorthAmerica,
	"St Kitts and Nevis":               types.NorthAmerica,
	"Saint Kitts and Nevis":            types.NorthAmerica,
	"Sao Tome & Principe":              types.Africa,
	"Sao Tome and Principe":            types.Africa,
	"São Tomé and Príncipe":            types.Africa,
	"Bosnia & Herzegovina":             types.Europe,
	"Bosnia and Herzegovina":           types.Europe,
	"Centr Afric Re":                   types.Africa,
	"Central African Republic":         types.Africa,
	"Côte d'Ivoire":                    types.Africa,
	"Cote d'Ivoire":                    types.Africa,
	"Ivory Coast":                      types.Africa,
	"UA Emirates":                      types.Asia,
	"United Arab Emirates":             types.Asia,
	"UAE":                              types.Asia,

	// Africa
	"Algeria":                          types.Africa,
	"Angola":                           types.Africa,
	"Benin":                            types.Africa,
	"Botswana":                         types.Africa,
	"Burkina Faso":                     types.Africa,
	"Burundi":                          types.Africa,
	"Cabo Verde":                       types.Africa,
	"Cape Verde":                       types.Africa,
	"Cameroon":                         types.Africa,
	"Chad":                             types.Africa,
	"Comoros":                          types.Africa,
	"Congo":                            types.Africa,
	"DR Congo":                         types.Africa,
	"Democratic Republic of the Congo": types.Africa,
	"Djibouti":                         types.Africa,
	"Egypt":                            types.Africa,
	"Equatorial Guinea":                types.Africa,
	"Eritrea":                          types.Africa,
	"Eswatini":                         types.Africa,
	"Swaziland":                        types.Africa,
	"Ethiopia":                         types.Africa,
	"Gabon":                            types.Africa,
	"Gambia":                           types.Africa,
	"Ghana":                            types.Africa,
	"Guinea":                           types.Africa,
	"Guinea-Bissau":                    types.Africa,
	"Kenya":                            types.Africa,
	"Lesotho":                          types.Africa,
	"Liberia":                          types.Africa,
	"Libya":                            types.Africa,
	"Madagascar":                       types.Africa,
	"Malawi":                           types.Africa,
	"Mali":                             types.Africa,
	"Mauritania":                       types.Africa,
	"Mauritius":                        types.Africa,
	"Morocco":                          types.Africa,
	"Mozambique":                       types.Africa,
	"Namibia":                          types.Africa,
	"Niger":                            types.Africa,
	"Nigeria":                          types.Africa,
	"Rwanda":                           types.Africa,
	"Senegal":                          types.Africa,
	"Seychelles":                       types.Africa,
	"Sierra Leone":                     types.Africa,
	"Somalia":                          types.Africa,
	"South Africa":                     types.Africa,
	"South Sudan":                      types.Africa,
	"Sudan":                            types.Africa,
	"Tanzania":                         types.Africa,
	"Togo":                             types.Africa,
	"Tunisia":                          types.Africa,
	"Uganda":                           types.Africa,
	"Zambia":                           types.Africa,
	"Zimbabwe":                         types.Africa,

	// Asia
	"Afghanistan":          types.Asia,
	"Armenia":              types.Asia,
	"Azerbaijan":           types.Asia,
	"Bahrain":              types.Asia,
	"Bangladesh":           types.Asia,
	"Bhutan":               types.Asia,
	"Brunei":               types.Asia,
	"Brunei Darussalam":    types.Asia,
	"Cambodia":             types.Asia,
	"China":                types.Asia,
	"Georgia":              types.Asia,
	"India":                types.Asia,
	"Indonesia":            types.Asia,
	"Iran":                 types.Asia,
	"Iraq":                 types.Asia,
	"Israel":               types.Asia,
	"Japan":                types.Asia,
	"Jordan":               types.Asia,
	"Kazakhstan":           types.Asia,
	"Kuwait":               types.Asia,
	"Kyrgyzstan":           types.Asia,
	"Laos":                 types.Asia,
	"Lebanon":              types.Asia,
	"Malaysia":             types.Asia,
	"Maldives":             types.Asia,
	"Mongolia":             types.Asia,
	"Myanmar":              types.Asia,
	"Burma":                types.Asia,
	"Nepal":                types.Asia,
	"North Korea":          types.Asia,
	"Oman":                 types.Asia,
	"Pakistan":             types.Asia,
	"Palestine":            types.Asia,
	"Philippines":          types.Asia,
	"Qatar":                types.Asia,
	"Saudi Arabia":         types.Asia,
	"Singapore":            types.Asia,
	"South Korea":          types.Asia,
	"Sri Lanka":            types.Asia,
	"Syria":                types.Asia,
	"Syrian Arab Republic": types.Asia,
	"Taiwan":               types.Asia,
	"Tajikistan":           types.Asia,
	"Thailand":             types.Asia,
	"Timor-Leste":          types.Asia,
	"East Timor":           types.Asia,
	"Turkmenistan":         types.Asia,
	"Uzbekistan":           types.Asia,
	"Vietnam":              types.Asia,
	"Viet Nam":             types.Asia,
	"Yemen":                types.Asia,

	// Europe
	"Albania":            types.Europe,
	"Andorra":            types.Europe,
	"Austria":            types.Europe,
	"Belarus":            types.Europe,
	"Belgium":            types.Europe,
	"Bulgaria":           types.Europe,
	"Croatia":            types.Europe,
	"Cyprus":             types.Europe,
	"Czechia":            types.Europe,
	"Czech Republic":     types.Europe,
	"Denmark":            types.Europe,
	"Estonia":            types.Europe,
	"Finland":            types.Europe,
	"France":             types.Europe,
	"Germany":            types.Europe,
	"Greece":             types.Europe,
	"Hungary":            types.Europe,
	"Iceland":            types.Europe,
	"Ireland":            types.Europe,
	"Italy":              types.Europe,
	"Kosovo":             types.Europe,
	"Latvia":             types.Europe,
	"Liechtenstein":      types.Europe,
	"Lithuania":          types.Europe,
	"Luxembourg":         types.Europe,
	"Malta":              types.Europe,
	"Moldova":            types.Europe,
	"Monaco":             types.Europe,
	"Montenegro":         types.Europe,
	"Netherlands":        types.Europe,
	"North Macedonia":    types.Europe,
	"Norway":             types.Europe,
	"Poland":             types.Europe,
	"Portugal":           types.Europe,
	"Romania":            types.Europe,
	"Russia":             types.Europe,
	"Russian Federation": types.Europe,
	"San Marino":         types.Europe,
	"Serbia":             types.Europe,
	"Slovakia":           types.Europe,
	"Slovenia":           types.Europe,
	"Spain":              types.Europe,
	"Sweden":             types.Europe,
	"Switzerland":        types.Europe,
	"Ukraine":            types.Europe,
	"United Kingdom":     types.Europe,
	"UK":                 types.Europe,
	"England":            types.Europe,
	"Scotland":           types.Europe,
	"Wales":              types.Europe,

	// North America, including Central America and the Caribbean
	"Antigua and Barbuda":      types.NorthAmerica,
	"Aruba":                    types.NorthAmerica,
	"Bahamas":                  types.NorthAmerica,
	"Barbados":                 types.NorthAmerica,
	"Belize":                   types.NorthAmerica,
	"Bermuda":                  types.NorthAmerica,
	"Canada":                   types.NorthAmerica,
	"Cayman Islands":           types.NorthAmerica,
	"Costa Rica":               types.NorthAmerica,
	"Cuba":                     types.NorthAmerica,
	"Dominica":                 types.NorthAmerica,
	"Dominican Republic":       types.NorthAmerica,
	"El Salvador":              types.NorthAmerica,
	"Grenada":                  types.NorthAmerica,
	"Guatemala":                types.NorthAmerica,
	"Haiti":                    types.NorthAmerica,
	"Honduras":                 types.NorthAmerica,
	"Jamaica":                  types.NorthAmerica,
	"Mexico":                   types.NorthAmerica,
	"Nicaragua":                types.NorthAmerica,
	"Panama":                   types.NorthAmerica,
	"Puerto Rico":              types.NorthAmerica,
	"Saint Lucia":              types.NorthAmerica,
	"St Lucia":                 types.NorthAmerica,
	"Trinidad and Tobago":      types.NorthAmerica,
	"United States":            types.NorthAmerica,
	"United States of America": types.NorthAmerica,
	"USA":                      types.NorthAmerica,

	// South America
	"Argentina": types.SouthAmerica,
	"Bolivia":   types.SouthAmerica,
	"Brazil":    types.SouthAmerica,
	"Chile":     types.SouthAmerica,
	"Colombia":  types.SouthAmerica,
	"Ecuador":   types.SouthAmerica,
	"Guyana":    types.SouthAmerica,
	"Paraguay":  types.SouthAmerica,
	"Peru":      types.SouthAmerica,
	"Suriname":  types.SouthAmerica,
	"Uruguay":   types.SouthAmerica,
	"Venezuela": types.SouthAmerica,

	// Oceania
	"American Samoa":                 types.Oceania,
	"Australia":                      types.Oceania,
	"Cook Islands":                   types.Oceania,
	"Fiji":                           types.Oceania,
	"Guam":                           types.Oceania,
	"Kiribati":                       types.Oceania,
	"Marshall Islands":               types.Oceania,
	"Micronesia":                     types.Oceania,
	"Federated States of Micronesia": types.Oceania,
	"Nauru":                          types.Oceania,
	"New Zealand":                    types.Oceania,
	"Palau":                          types.Oceania,
	"Papua New Guinea":               types.Oceania,
	"Samoa":                          types.Oceania,
	"Solomon Islands":                types.Oceania,
	"Tonga":                          types.Oceania,
	"Tuvalu":                         types.Oceania,
	"Vanuatu":                        types.Oceania,
}

// nocToISO3 lists the NOC codes whose ISO 3166-1 alpha-3 code differs.
// Codes missing here are assumed to already be ISO-3.
var nocToISO3 = map[string]string{
	"GER": "DEU",
	"GRE": "GRC",
	"SUI": "CHE",
	"NED": "NLD",
	"POR": "PRT",
	"DEN": "DNK",
	"CRO": "HRV",
	"SLO": "SVN",
	"RSA": "ZAF",
	"CHI": "CHL",
	"IRI": "IRN",
	"TPE": "TWN",
	"MAS": "MYS",
	"INA": "IDN",
	"PHI": "PHL",
	"VIE": "VNM",
	"SIN": "SGP",
	"UAE": "ARE",
	"KSA": "SAU",
	"BRN": "BHR",
	"KUW": "KWT",
	"OMA": "OMN",
	"LIB": "LBN",
	"BUL": "BGR",
	"LAT": "LVA",
	"MGL": "MNG",
	"NGR": "NGA",
	"ALG": "DZA",
	"TAN": "TZA",
	"ZIM": "ZWE",
	"BOT": "BWA",
	"ANG": "AGO",
	"PUR": "PRI",
	"ISV": "VIR",
	"IVB": "VGB",
	"BAH": "BHS",
	"BAR": "BRB",
	"HAI": "HTI",
	"GUA": "GTM",
	"HON": "HND",
	"ESA": "SLV",
	"NCA": "NIC",
	"CRC": "CRI",
	"PAR": "PRY",
	"URU": "URY",
	"BAN": "BGD",
	"SRI": "LKA",
	"NEP": "NPL",
	"FIJ": "FJI",
	"SAM": "WSM",
	"SOL": "SLB",
	"VAN": "VUT",
	"ASA": "ASM",
	"GRN": "GRD",
	"ANT": "ATG",
	"SKN": "KNA",
	"VIN": "VCT",
	"BER": "BMU",
	"CAY": "CYM",
	"ARU": "ABW",
	"CUR": "CUW",
	"AHO": "ANT",
	"MON": "MCO",
	"KOS": "XKX",
}

// alpha2Continent maps ISO 3166-1 alpha-2 codes to a continent. It backs the
// external geography fallback, which only yields a country code.
var alpha2Continent = map[string]types.Continent{
	"AD": types.Europe,
	"AE": types.Asia,
	"AF": types.Asia,
	"AG": types.NorthAmerica,
	"AI": types.NorthAmerica,
	"AL": types.Europe,
	"AM": types.Asia,
	"AO": types.Africa,
	"AS": types.Oceania,
	"AT": types.Europe,
	"AU": types.Oceania,
	"AW": types.NorthAmerica,
	"AZ": types.Asia,
	"BA": types.Europe,
	"BB": types.NorthAmerica,
	"BD": types.Asia,
	"BE": types.Europe,
	"BF": types.Africa,
	"BG": types.Europe,
	"BH": types.Asia,
	"BI": types.Africa,
	"BJ": types.Africa,
	"BL": types.NorthAmerica,
	"BM": types.NorthAmerica,
	"BN": types.Asia,
	"BS": types.NorthAmerica,
	"BT": types.Asia,
	"BW": types.Africa,
	"BY": types.Europe,
	"BZ": types.NorthAmerica,
	"CA": types.NorthAmerica,
	"CC": types.Oceania,
	"CD": types.Africa,
	"CF": types.Africa,
	"CG": types.Africa,
	"CH": types.Europe,
	"CI": types.Africa,
	"CK": types.Oceania,
	"CM": types.Africa,
	"CN": types.Asia,
	"CR": types.NorthAmerica,
	"CU": types.NorthAmerica,
	"CV": types.Africa,
	"CW": types.NorthAmerica,
	"CX": types.Oceania,
	"CY": types.Asia,
	"CZ": types.Europe,
	"DE": types.Europe,
	"DJ": types.Africa,
	"DK": types.Europe,
	"DM": types.NorthAmerica,
	"DO": types.NorthAmerica,
	"DZ": types.Africa,
	"EE": types.Europe,
	"EG": types.Africa,
	"EH": types.Africa,
	"ER": types.Africa,
	"ES": types.Europe,
	"ET": types.Africa,
	"FI": types.Europe,
	"FJ": types.Oceania,
	"FM": types.Oceania,
	"FO": types.Europe,
	"FR": types.Europe,
	"GA": types.Africa,
	"GB": types.Europe,
	"GD": types.NorthAmerica,
	"GE": types.Asia,
	"GG": types.Europe,
	"GH": types.Africa,
	"GI": types.Europe,
	"GL": types.NorthAmerica,
	"GM": types.Africa,
	"GN": types.Africa,
	"GP": types.NorthAmerica,
	"GQ": types.Africa,
	"GR": types.Europe,
	"GT": types.NorthAmerica,
	"GU": types.Oceania,
	"GW": types.Africa,
	"HK": types.Asia,
	"HM": types.Oceania,
	"HN": types.NorthAmerica,
	"HR": types.Europe,
	"HT": types.NorthAmerica,
	"HU": types.Europe,
	"ID": types.Asia,
	"IE": types.Europe,
	"IL": types.Asia,
	"IM": types.Europe,
	"IN": types.Asia,
	"IO": types.Africa,
	"IQ": types.Asia,
	"IR": types.Asia,
	"IS": types.Europe,
	"IT": types.Europe,
	"JE": types.Europe,
	"JM": types.NorthAmerica,
	"JO": types.Asia,
	"JP": types.Asia,
	"KE": types.Africa,
	"KG": types.Asia,
	"KH": types.Asia,
	"KI": types.Oceania,
	"KM": types.Africa,
	"KN": types.NorthAmerica,
	"KP": types.Asia,
	"KR": types.Asia,
	"KW": types.Asia,
	"KY": types.NorthAmerica,
	"KZ": types.Asia,
	"LA": types.Asia,
	"LB": types.Asia,
	"LC": types.NorthAmerica,
	"LI": types.Europe,
	"LK": types.Asia,
	"LR": types.Africa,
	"LS": types.Africa,
	"LT": types.Europe,
	"LU": types.Europe,
	"LV": types.Europe,
	"LY": types.Africa,
	"MA": types.Africa,
	"MC": types.Europe,
	"MD": types.Europe,
	"ME": types.Europe,
	"MF": types.NorthAmerica,
	"MG": types.Africa,
	"MH": types.Oceania,
	"MK": types.Europe,
	"ML": types.Africa,
	"MM": types.Asia,
	"MN": types.Asia,
	"MO": types.Asia,
	"MP": types.Oceania,
	"MQ": types.NorthAmerica,
	"MR": types.Africa,
	"MS": types.NorthAmerica,
	"MT": types.Europe,
	"MU": types.Africa,
	"MV": types.Asia,
	"MW": types.Africa,
	"MX": types.NorthAmerica,
	"MY": types.Asia,
	"MZ": types.Africa,
	"NA": types.Africa,
	"NC": types.Oceania,
	"NE": types.Africa,
	"NF": types.Oceania,
	"NG": types.Africa,
	"NI": types.NorthAmerica,
	"NL": types.Europe,
	"NO": types.Europe,
	"NP": types.Asia,
	"NR": types.Oceania,
	"NU": types.Oceania,
	"NZ": types.Oceania,
	"OM": types.Asia,
	"PA": types.NorthAmerica,
	"PF": types.Oceania,
	"PG": types.Oceania,
	"PH": types.Asia,
	"PK": types.Asia,
	"PL": types.Europe,
	"PM": types.NorthAmerica,
	"PN": types.Oceania,
	"PR": types.NorthAmerica,
	"PS": types.Asia,
	"PT": types.Europe,
	"PW": types.Oceania,
	"QA": types.Asia,
	"RE": types.Africa,
	"RO": types.Europe,
	"RS": types.Europe,
	"RU": types.Europe,
	"RW": types.Africa,
	"SA": types.Asia,
	"SB": types.Oceania,
	"SC": types.Africa,
	"SD": types.Africa,
	"SE": types.Europe,
	"SG": types.Asia,
	"SH": types.Africa,
	"SI": types.Europe,
	"SJ": types.Europe,
	"SK": types.Europe,
	"SL": types.Africa,
	"SM": types.Europe,
	"SN": types.Africa,
	"SO": types.Africa,
	"SS": types.Africa,
	"ST": types.Africa,
	"SV": types.NorthAmerica,
	"SX": types.NorthAmerica,
	"SY": types.Asia,
	"SZ": types.Africa,
	"TC": types.NorthAmerica,
	"TD": types.Africa,
	"TF": types.Africa,
	"TG": types.Africa,
	"TH": types.Asia,
	"TJ": types.Asia,
	"TK": types.Oceania,
	"TL": types.Asia,
	"TM": types.Asia,
	"TN": types.Africa,
	"TO": types.Oceania,
	"TR": types.Asia,
	"TT": types.NorthAmerica,
	"TV": types.Oceania,
	"TW": types.Asia,
	"TZ": types.Africa,
	"UA": types.Europe,
	"UG": types.Africa,
	"US": types.NorthAmerica,
	"UZ": types.Asia,
	"VA": types.Europe,
	"VC": types.NorthAmerica,
	"VG": types.NorthAmerica,
	"VI": types.NorthAmerica,
	"VN": types.Asia,
	"VU": types.Oceania,
	"WF": types.Oceania,
	"WS": types.Oceania,
	"XK": types.Europe,
	"YE": types.Asia,
	"YT": types.Africa,
	"ZA": types.Africa,
	"ZM": types.Africa,
	"ZW": types.Africa,
}
