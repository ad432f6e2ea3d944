package catalog

// rosterEntry is one country of the hand-authored roster: display
// (Spanish) name, ISO 3166-1 alpha-2 code and a capital-city centroid.
// The slice order is load-bearing: the daily selector indexes into it,
// so editing the roster reshuffles historical day assignments.
type rosterEntry struct {
	name string
	code string
	lat  float64
	lng  float64
}

var roster = []rosterEntry{
	// South America
	{"Argentina", "AR", -34.6118, -58.396},
	{"Brasil", "BR", -15.7942, -47.8822},
	{"Chile", "CL", -33.4489, -70.6693},
	{"Colombia", "CO", 4.711, -74.0721},
	{"Perú", "PE", -12.0464, -77.0428},
	{"Uruguay", "UY", -34.9011, -56.1645},
	{"Paraguay", "PY", -25.2637, -57.5759},
	{"Bolivia", "BO", -16.2902, -63.5887},
	{"Venezuela", "VE", 10.4806, -66.9036},
	{"Ecuador", "EC", -0.1807, -78.4678},
	{"Guyana", "GY", 6.8013, -58.1551},
	{"Surinam", "SR", 5.8664, -55.1668},
	{"Guayana Francesa", "GF", 3.9339, -53.1258},

	// North America
	{"Estados Unidos", "US", 38.9072, -77.0369},
	{"Canadá", "CA", 45.4215, -75.6972},
	{"México", "MX", 19.4326, -99.1332},
	{"Groenlandia", "GL", 71.7069, -42.6043},

	// Central America and the Caribbean
	{"Guatemala", "GT", 14.6349, -90.5069},
	{"Belice", "BZ", 17.1899, -88.4976},
	{"Honduras", "HN", 14.0723, -87.1921},
	{"El Salvador", "SV", 13.6929, -89.2182},
	{"Nicaragua", "NI", 12.1364, -86.2514},
	{"Costa Rica", "CR", 9.9281, -84.0907},
	{"Panamá", "PA", 8.9824, -79.5199},
	{"Cuba", "CU", 23.1136, -82.3666},
	{"Jamaica", "JM", 17.9712, -76.7936},
	{"Haití", "HT", 18.5392, -72.335},
	{"República Dominicana", "DO", 18.4861, -69.9312},
	{"Puerto Rico", "PR", 18.2208, -66.5901},
	{"Trinidad y Tobago", "TT", 10.6918, -61.2225},
	{"Barbados", "BB", 13.1939, -59.5432},
	{"Bahamas", "BS", 25.0343, -77.3963},

	// Western Europe
	{"España", "ES", 40.4168, -3.7038},
	{"Francia", "FR", 48.8566, 2.3522},
	{"Italia", "IT", 41.9028, 12.4964},
	{"Alemania", "DE", 52.52, 13.405},
	{"Reino Unido", "GB", 51.5074, -0.1278},
	{"Portugal", "PT", 38.7223, -9.1393},
	{"Holanda", "NL", 52.3676, 4.9041},
	{"Bélgica", "BE", 50.8503, 4.3517},
	{"Suiza", "CH", 46.948, 7.4474},
	{"Austria", "AT", 48.2082, 16.3738},
	{"Irlanda", "IE", 53.4084, -8.2439},
	{"Luxemburgo", "LU", 49.8153, 6.1296},
	{"Mónaco", "MC", 43.7384, 7.4246},
	{"Andorra", "AD", 42.5462, 1.6016},
	{"San Marino", "SM", 43.9424, 12.4578},
	{"Vaticano", "VA", 41.9029, 12.4534},
	{"Malta", "MT", 35.9375, 14.3754},
	{"Chipre", "CY", 35.1264, 33.4299},
	{"Islandia", "IS", 64.1466, -21.9426},

	// Nordic Europe
	{"Suecia", "SE", 59.3293, 18.0686},
	{"Noruega", "NO", 59.9139, 10.7522},
	{"Dinamarca", "DK", 55.6761, 12.5683},
	{"Finlandia", "FI", 60.1695, 24.9354},

	// Eastern Europe
	{"Polonia", "PL", 52.2297, 21.0122},
	{"República Checa", "CZ", 50.0755, 14.4378},
	{"Eslovaquia", "SK", 48.669, 19.699},
	{"Hungría", "HU", 47.4979, 19.0402},
	{"Rumania", "RO", 44.4268, 26.1025},
	{"Bulgaria", "BG", 42.6977, 23.3219},
	{"Croacia", "HR", 45.1, 15.2},
	{"Serbia", "RS", 44.0165, 21.0059},
	{"Bosnia y Herzegovina", "BA", 43.9159, 17.6791},
	{"Montenegro", "ME", 42.7087, 19.3744},
	{"Macedonia del Norte", "MK", 41.9973, 21.428},
	{"Albania", "AL", 41.1533, 19.8172},
	{"Eslovenia", "SI", 46.1512, 14.9955},
	{"Estonia", "EE", 59.437, 24.7536},
	{"Letonia", "LV", 56.8796, 24.6032},
	{"Lituania", "LT", 54.9027, 23.9097},
	{"Bielorrusia", "BY", 53.7098, 27.9534},
	{"Ucrania", "UA", 50.4501, 30.5234},
	{"Moldavia", "MD", 47.4116, 28.3699},

	// Balkans and eastern Mediterranean
	{"Grecia", "GR", 37.9838, 23.7275},
	{"Turquía", "TR", 39.9334, 32.8597},

	// Asia
	{"Rusia", "RU", 55.7558, 37.6176},
	{"China", "CN", 39.9042, 116.4074},
	{"Japón", "JP", 35.6762, 139.6503},
	{"Corea del Sur", "KR", 37.5665, 126.978},
	{"Corea del Norte", "KP", 39.0392, 125.7625},
	{"India", "IN", 28.6139, 77.209},
	{"Pakistán", "PK", 33.6844, 73.0479},
	{"Bangladesh", "BD", 23.685, 90.3563},
	{"Sri Lanka", "LK", 6.9271, 79.8612},
	{"Nepal", "NP", 27.7172, 85.324},
	{"Bután", "BT", 27.5142, 90.4336},
	{"Maldivas", "MV", 3.2028, 73.2207},
	{"Afganistán", "AF", 34.5553, 69.2075},
	{"Irán", "IR", 35.6892, 51.389},
	{"Irak", "IQ", 33.2232, 43.6793},
	{"Siria", "SY", 33.5138, 36.2765},
	{"Líbano", "LB", 33.8547, 35.8623},
	{"Jordania", "JO", 31.9454, 35.9284},
	{"Israel", "IL", 31.0461, 34.8516},
	{"Palestina", "PS", 31.9522, 35.2332},
	{"Arabia Saudí", "SA", 24.7136, 46.6753},
	{"Emiratos Árabes Unidos", "AE", 24.2992, 54.697},
	{"Qatar", "QA", 25.3548, 51.1839},
	{"Kuwait", "KW", 29.3117, 47.4818},
	{"Bahréin", "BH", 26.0667, 50.5577},
	{"Omán", "OM", 23.5859, 58.4059},
	{"Yemen", "YE", 15.5527, 48.5164},
	{"Georgia", "GE", 41.7151, 44.8271},
	{"Armenia", "AM", 40.0691, 45.0382},
	{"Azerbaiyán", "AZ", 40.1431, 47.5769},
	{"Kazajistán", "KZ", 51.1694, 71.4491},
	{"Uzbekistán", "UZ", 41.3775, 64.5853},
	{"Turkmenistán", "TM", 37.9601, 58.3261},
	{"Tayikistán", "TJ", 38.861, 71.2761},
	{"Kirguistán", "KG", 42.7335, 74.5664},
	{"Mongolia", "MN", 47.8864, 106.9057},
	{"Tailandia", "TH", 13.7563, 100.5018},
	{"Vietnam", "VN", 21.0285, 105.8542},
	{"Laos", "LA", 19.8563, 102.4955},
	{"Camboya", "KH", 11.5449, 104.8922},
	{"Myanmar", "MM", 19.7633, 96.0785},
	{"Filipinas", "PH", 14.5995, 120.9842},
	{"Indonesia", "ID", -6.2088, 106.8456},
	{"Malasia", "MY", 3.139, 101.6869},
	{"Singapur", "SG", 1.3521, 103.8198},
	{"Brunéi", "BN", 4.5353, 114.7277},
	{"Timor Oriental", "TL", -8.8742, 125.7275},

	// Africa
	{"Sudáfrica", "ZA", -25.7461, 28.1881},
	{"Egipto", "EG", 30.0444, 31.2357},
	{"Marruecos", "MA", 34.0209, -6.8416},
	{"Nigeria", "NG", 9.0765, 7.3986},
	{"Kenia", "KE", -1.2921, 36.8219},
	{"Etiopía", "ET", 9.145, 40.4897},
	{"Ghana", "GH", 5.6037, -0.187},
	{"Tanzania", "TZ", -6.369, 34.8888},
	{"Uganda", "UG", 0.3476, 32.5825},
	{"Mozambique", "MZ", -18.6657, 35.5296},
	{"Madagascar", "MG", -18.7669, 46.8691},
	{"Camerún", "CM", 7.3697, 12.3547},
	{"Angola", "AO", -11.2027, 17.8739},
	{"Sudán", "SD", 12.8628, 30.2176},
	{"Argelia", "DZ", 28.0339, 1.6596},
	{"República Democrática del Congo", "CD", -4.4419, 15.2663},
	{"Libia", "LY", 26.3351, 17.2283},
	{"Túnez", "TN", 33.8869, 9.5375},
	{"Zimbabue", "ZW", -17.8292, 31.0522},
	{"Zambia", "ZM", -13.1339, 27.8493},
	{"Senegal", "SN", 14.4974, -14.4524},
	{"Mali", "ML", 17.5707, -3.9962},
	{"Burkina Faso", "BF", 12.2383, -1.5616},
	{"Níger", "NE", 17.6078, 8.0817},
	{"Chad", "TD", 15.4542, 18.7322},
	{"Mauritania", "MR", 21.0079, -10.9408},
	{"Costa de Marfil", "CI", 7.54, -5.5471},
	{"Guinea", "GN", 9.9456, -9.6966},
	{"Benín", "BJ", 9.3077, 2.3158},
	{"Togo", "TG", 8.6195, 0.8248},
	{"Sierra Leona", "SL", 8.4606, -11.7799},
	{"Liberia", "LR", 6.4281, -9.4295},
	{"República Centroafricana", "CF", 6.6111, 20.9394},
	{"Gabón", "GA", 0.4162, 9.4673},
	{"Congo", "CG", -0.228, 15.8277},
	{"Guinea Ecuatorial", "GQ", 2.154, 10.2676},
	{"Ruanda", "RW", -1.9403, 29.8739},
	{"Burundi", "BI", -3.3731, 29.9189},
	{"Yibuti", "DJ", 11.8251, 42.5903},
	{"Somalia", "SO", 5.1521, 46.1996},
	{"Eritrea", "ER", 15.7394, 38.9637},
	{"Botsuana", "BW", -22.3285, 24.6849},
	{"Namibia", "NA", -22.9576, 18.4904},
	{"Lesoto", "LS", -29.61, 28.2336},
	{"Esuatini", "SZ", -26.5225, 31.4659},
	{"Malaui", "MW", -13.2543, 34.3015},
	{"Comoras", "KM", -11.6455, 43.3333},
	{"Mauricio", "MU", -20.3484, 57.5522},
	{"Seychelles", "SC", -4.6796, 55.492},
	{"Cabo Verde", "CV", 16.5388, -24.0132},
	{"Santo Tomé y Príncipe", "ST", 0.1864, 6.6131},
	{"Gambia", "GM", 13.4432, -15.3101},
	{"Guinea-Bisáu", "GW", 11.8037, -15.1804},

	// Oceania
	{"Australia", "AU", -35.2809, 149.13},
	{"Nueva Zelanda", "NZ", -41.2924, 174.7787},
	{"Fiyi", "FJ", -16.5782, 179.4144},
	{"Papúa Nueva Guinea", "PG", -6.314993, 143.95555},
	{"Islas Salomón", "SB", -9.64571, 160.156194},
	{"Vanuatu", "VU", -15.376706, 166.959158},
	{"Nueva Caledonia", "NC", -20.904305, 165.618042},
	{"Polinesia Francesa", "PF", -17.679742, -149.406843},
	{"Samoa", "WS", -13.759029, -172.104629},
	{"Tonga", "TO", -21.178986, -175.198242},
	{"Kiribati", "KI", -3.370417, -168.734039},
	{"Tuvalu", "TV", -7.109535, 177.64933},
	{"Nauru", "NR", -0.522778, 166.931503},
	{"Palau", "PW", 7.51498, 134.58252},
	{"Islas Marshall", "MH", 7.131474, 171.184478},
	{"Estados Federados de Micronesia", "FM", 7.425554, 150.550812},
}

// englishToSpanish translates the feature names carried by the boundary
// dataset into the roster's display names. Features whose English name
// is missing here keep their English name as display name.
var englishToSpanish = map[string]string{
	"Afghanistan":               "Afganistán",
	"Albania":                   "Albania",
	"Algeria":                   "Argelia",
	"Angola":                    "Angola",
	"Antarctica":                "Antártida",
	"Argentina":                 "Argentina",
	"Armenia":                   "Armenia",
	"Australia":                 "Australia",
	"Austria":                   "Austria",
	"Azerbaijan":                "Azerbaiyán",
	"The Bahamas":               "Bahamas",
	"Bangladesh":                "Bangladesh",
	"Belarus":                   "Bielorrusia",
	"Belgium":                   "Bélgica",
	"Belize":                    "Belice",
	"Benin":                     "Benín",
	"Bhutan":                    "Bután",
	"Bolivia":                   "Bolivia",
	"Bosnia and Herzegovina":    "Bosnia y Herzegovina",
	"Botswana":                  "Botsuana",
	"Brazil":                    "Brasil",
	"Brunei":                    "Brunéi",
	"Bulgaria":                  "Bulgaria",
	"Burkina Faso":              "Burkina Faso",
	"Burundi":                   "Burundi",
	"Cambodia":                  "Camboya",
	"Cameroon":                  "Camerún",
	"Canada":                    "Canadá",
	"Central African Republic":  "República Centroafricana",
	"Chad":                      "Chad",
	"Chile":                     "Chile",
	"China":                     "China",
	"Colombia":                  "Colombia",
	"Comoros":                   "Comoras",
	"Democratic Republic of the Congo": "República Democrática del Congo",
	"Republic of the Congo":     "Congo",
	"Costa Rica":                "Costa Rica",
	"Croatia":                   "Croacia",
	"Cuba":                      "Cuba",
	"Cyprus":                    "Chipre",
	"Czech Republic":            "República Checa",
	"Côte d'Ivoire":             "Costa de Marfil",
	"Denmark":                   "Dinamarca",
	"Djibouti":                  "Yibuti",
	"Dominica":                  "Dominica",
	"Dominican Republic":        "República Dominicana",
	"East Timor":                "Timor Oriental",
	"Ecuador":                   "Ecuador",
	"Egypt":                     "Egipto",
	"El Salvador":               "El Salvador",
	"Equatorial Guinea":         "Guinea Ecuatorial",
	"Eritrea":                   "Eritrea",
	"Estonia":                   "Estonia",
	"Ethiopia":                  "Etiopía",
	"Fiji":                      "Fiyi",
	"Finland":                   "Finlandia",
	"France":                    "Francia",
	"French Guiana":             "Guayana Francesa",
	"Gabon":                     "Gabón",
	"The Gambia":                "Gambia",
	"Georgia":                   "Georgia",
	"Germany":                   "Alemania",
	"Ghana":                     "Ghana",
	"Greece":                    "Grecia",
	"Greenland":                 "Groenlandia",
	"Grenada":                   "Granada",
	"Guatemala":                 "Guatemala",
	"Guinea":                    "Guinea",
	"Guinea-Bissau":             "Guinea-Bisáu",
	"Guyana":                    "Guyana",
	"Haiti":                     "Haití",
	"Honduras":                  "Honduras",
	"Hungary":                   "Hungría",
	"Iceland":                   "Islandia",
	"India":                     "India",
	"Indonesia":                 "Indonesia",
	"Iran":                      "Irán",
	"Iraq":                      "Irak",
	"Ireland":                   "Irlanda",
	"Israel":                    "Israel",
	"Italy":                     "Italia",
	"Jamaica":                   "Jamaica",
	"Japan":                     "Japón",
	"Jordan":                    "Jordania",
	"Kazakhstan":                "Kazajistán",
	"Kenya":                     "Kenia",
	"Kiribati":                  "Kiribati",
	"Kuwait":                    "Kuwait",
	"Kyrgyzstan":                "Kirguistán",
	"Laos":                      "Laos",
	"Latvia":                    "Letonia",
	"Lebanon":                   "Líbano",
	"Lesotho":                   "Lesoto",
	"Liberia":                   "Liberia",
	"Libya":                     "Libia",
	"Liechtenstein":             "Liechtenstein",
	"Lithuania":                 "Lituania",
	"Luxembourg":                "Luxemburgo",
	"Macedonia":                 "Macedonia del Norte",
	"Madagascar":                "Madagascar",
	"Malawi":                    "Malaui",
	"Malaysia":                  "Malasia",
	"Maldives":                  "Maldivas",
	"Mali":                      "Mali",
	"Malta":                     "Malta",
	"Marshall Islands":          "Islas Marshall",
	"Mauritania":                "Mauritania",
	"Mauritius":                 "Mauricio",
	"Mexico":                    "México",
	"Micronesia":                "Estados Federados de Micronesia",
	"Moldova":                   "Moldavia",
	"Monaco":                    "Mónaco",
	"Mongolia":                  "Mongolia",
	"Montenegro":                "Montenegro",
	"Morocco":                   "Marruecos",
	"Mozambique":                "Mozambique",
	"Myanmar":                   "Myanmar",
	"Namibia":                   "Namibia",
	"Nauru":                     "Nauru",
	"Nepal":                     "Nepal",
	"Netherlands":               "Holanda",
	"New Caledonia":             "Nueva Caledonia",
	"New Zealand":               "Nueva Zelanda",
	"Nicaragua":                 "Nicaragua",
	"Niger":                     "Níger",
	"Nigeria":                   "Nigeria",
	"North Korea":               "Corea del Norte",
	"Norway":                    "Noruega",
	"Oman":                      "Omán",
	"Pakistan":                  "Pakistán",
	"Palau":                     "Palau",
	"Palestine":                 "Palestina",
	"Panama":                    "Panamá",
	"Papua New Guinea":          "Papúa Nueva Guinea",
	"Paraguay":                  "Paraguay",
	"Peru":                      "Perú",
	"Philippines":               "Filipinas",
	"Poland":                    "Polonia",
	"Portugal":                  "Portugal",
	"Puerto Rico":               "Puerto Rico",
	"Qatar":                     "Qatar",
	"Romania":                   "Rumania",
	"Russia":                    "Rusia",
	"Rwanda":                    "Ruanda",
	"Samoa":                     "Samoa",
	"San Marino":                "San Marino",
	"São Tomé and Príncipe":     "Santo Tomé y Príncipe",
	"Saudi Arabia":              "Arabia Saudí",
	"Senegal":                   "Senegal",
	"Serbia":                    "Serbia",
	"Seychelles":                "Seychelles",
	"Sierra Leone":              "Sierra Leona",
	"Singapore":                 "Singapur",
	"Slovakia":                  "Eslovaquia",
	"Slovenia":                  "Eslovenia",
	"Solomon Islands":           "Islas Salomón",
	"Somalia":                   "Somalia",
	"South Africa":              "Sudáfrica",
	"South Korea":               "Corea del Sur",
	"South Sudan":               "Sudán del Sur",
	"Spain":                     "España",
	"Sri Lanka":                 "Sri Lanka",
	"Sudan":                     "Sudán",
	"Suriname":                  "Surinam",
	"Swaziland":                 "Esuatini",
	"Sweden":                    "Suecia",
	"Switzerland":               "Suiza",
	"Syria":                     "Siria",
	"Taiwan":                    "Taiwán",
	"Tajikistan":                "Tayikistán",
	"Tanzania":                  "Tanzania",
	"Thailand":                  "Tailandia",
	"Togo":                      "Togo",
	"Tonga":                     "Tonga",
	"Trinidad and Tobago":       "Trinidad y Tobago",
	"Tunisia":                   "Túnez",
	"Turkey":                    "Turquía",
	"Turkmenistan":              "Turkmenistán",
	"Tuvalu":                    "Tuvalu",
	"Uganda":                    "Uganda",
	"Ukraine":                   "Ucrania",
	"United Arab Emirates":      "Emiratos Árabes Unidos",
	"United Kingdom":            "Reino Unido",
	"United States of America":  "Estados Unidos",
	"Uruguay":                   "Uruguay",
	"Uzbekistan":                "Uzbekistán",
	"Vanuatu":                   "Vanuatu",
	"Vatican City":              "Vaticano",
	"Venezuela":                 "Venezuela",
	"Vietnam":                   "Vietnam",
	"Yemen":                     "Yemen",
	"Zambia":                    "Zambia",
	"Zimbabwe":                  "Zimbabue",
}
