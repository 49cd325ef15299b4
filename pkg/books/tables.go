package books

// Name tables for the built-in definitions. Names use Blank between a leading
// number and the rest of the name.

var (
	// full English names
	fullNames = Table{
		Book(1):  "Genesis",
		Book(2):  "Exodus",
		Book(3):  "Leviticus",
		Book(4):  "Numbers",
		Book(5):  "Deuteronomy",
		Book(6):  "Joshua",
		Book(7):  "Judges",
		Book(8):  "Ruth",
		Book(9):  "1\u00a0Samuel",
		Book(10): "2\u00a0Samuel",
		Book(11): "1\u00a0Kings",
		Book(12): "2\u00a0Kings",
		Book(13): "1\u00a0Chronicles",
		Book(14): "2\u00a0Chronicles",
		Book(15): "Ezra",
		Book(16): "Nehemiah",
		Book(17): "Esther",
		Book(18): "Job",
		Book(19): "Psalms",
		Book(20): "Proverbs",
		Book(21): "Ecclesiastes",
		Book(22): "Song of Solomon",
		Book(23): "Isaiah",
		Book(24): "Jeremiah",
		Book(25): "Lamentations",
		Book(26): "Ezekiel",
		Book(27): "Daniel",
		Book(28): "Hosea",
		Book(29): "Joel",
		Book(30): "Amos",
		Book(31): "Obadiah",
		Book(32): "Jonah",
		Book(33): "Micah",
		Book(34): "Nahum",
		Book(35): "Habakkuk",
		Book(36): "Zephaniah",
		Book(37): "Haggai",
		Book(38): "Zechariah",
		Book(39): "Malachi",
		Book(40): "Matthew",
		Book(41): "Mark",
		Book(42): "Luke",
		Book(43): "John",
		Book(44): "Acts",
		Book(45): "Romans",
		Book(46): "1\u00a0Corinthians",
		Book(47): "2\u00a0Corinthians",
		Book(48): "Galatians",
		Book(49): "Ephesians",
		Book(50): "Philippians",
		Book(51): "Colossians",
		Book(52): "1\u00a0Thessalonians",
		Book(53): "2\u00a0Thessalonians",
		Book(54): "1\u00a0Timothy",
		Book(55): "2\u00a0Timothy",
		Book(56): "Titus",
		Book(57): "Philemon",
		Book(58): "Hebrews",
		Book(59): "James",
		Book(60): "1\u00a0Peter",
		Book(61): "2\u00a0Peter",
		Book(62): "1\u00a0John",
		Book(63): "2\u00a0John",
		Book(64): "3\u00a0John",
		Book(65): "Jude",
		Book(66): "Revelation",
	}

	// full English names of the deuterocanonical books
	fullNameDeuterocanon = Table{
		Inserted(16, 1): "Tobit",
		Inserted(16, 2): "Judith",
		Inserted(17, 1): "1\u00a0Maccabees",
		Inserted(17, 2): "2\u00a0Maccabees",
		Inserted(22, 1): "Wisdom",
		Inserted(22, 2): "Sirach (Ecclesiasticus)",
		Inserted(25, 1): "Baruch",
	}

	// full Spanish names
	spanishFullNames = Table{
		Book(1):  "G\u00E9nesis",
		Book(2):  "\u00c9xodo",
		Book(3):  "Lev\u00EDtico",
		Book(4):  "N\u00FAmeros",
		Book(5):  "Deuteronomio",
		Book(6):  "Josu\u00E9",
		Book(7):  "Jueces",
		Book(8):  "Rut",
		Book(9):  "1\u00a0Samuel",
		Book(10): "2\u00a0Samuel",
		Book(11): "1\u00a0Reyes",
		Book(12): "2\u00a0Reyes",
		Book(13): "1\u00a0Cr\u00F3nicas",
		Book(14): "2\u00a0Cr\u00F3nicas",
		Book(15): "Esdras",
		Book(16): "Nehem\u00EDas",
		Book(17): "Ester",
		Book(18): "Job",
		Book(19): "Salmos",
		Book(20): "Proverbios",
		Book(21): "Eclesiast\u00E9s",
		Book(22): "Cantar\u00a0de los Cantares",
		Book(23): "Isa\u00EDas",
		Book(24): "Jerem\u00EDas",
		Book(25): "Lamentaciones",
		Book(26): "Ezequiel",
		Book(27): "Daniel",
		Book(28): "Oseas",
		Book(29): "Joel",
		Book(30): "Am\u00F3s",
		Book(31): "Abd\u00EDas",
		Book(32): "Jon\u00E1s",
		Book(33): "Miqueas",
		Book(34): "Nah\u00FAm",
		Book(35): "Habacuc",
		Book(36): "Sofon\u00EDas",
		Book(37): "Hageo",
		Book(38): "Zacar\u00EDas",
		Book(39): "Malaqu\u00EDas",
		Book(40): "Mateo",
		Book(41): "Marcos",
		Book(42): "Lucas",
		Book(43): "Juan",
		Book(44): "Hechos",
		Book(45): "Romanos",
		Book(46): "1\u00a0Corintios",
		Book(47): "2\u00a0Corintios",
		Book(48): "G\u00E1latas",
		Book(49): "Efesios",
		Book(50): "Filipenses",
		Book(51): "Colosenses",
		Book(52): "1\u00a0Tesalonicenses",
		Book(53): "2\u00a0Tesalonicenses",
		Book(54): "1\u00a0Timoteo",
		Book(55): "2\u00a0Timoteo",
		Book(56): "Tito",
		Book(57): "Filem\u00F3n",
		Book(58): "Hebreos",
		Book(59): "Santiago",
		Book(60): "1\u00a0Pedro",
		Book(61): "2\u00a0Pedro",
		Book(62): "1\u00a0Juan",
		Book(63): "2\u00a0Juan",
		Book(64): "3\u00a0Juan",
		Book(65): "Judas",
		Book(66): "Apocalipsis",
	}

	fullNameSongs = Table{
		Book(22): "Song of Songs",
	}

	fullNameCanticles = Table{
		Book(22): "Canticles",
	}

	fullNameQoheleth = Table{
		Book(21): "Qoheleth",
	}

	// Tyndale Manual of Style abbreviations
	tmsAbbr = Table{
		Book(1):  "Gen.",
		Book(2):  "Exod.",
		Book(3):  "Lev.",
		Book(4):  "Num.",
		Book(5):  "Deut.",
		Book(6):  "Josh.",
		Book(7):  "Judg.",
		Book(9):  "1\u00a0Sam.",
		Book(10): "2\u00a0Sam.",
		Book(13): "1\u00a0Chron.",
		Book(14): "2\u00a0Chron.",
		Book(16): "Neh.",
		Book(19): "Ps.",
		Book(20): "Prov.",
		Book(21): "Eccles.",
		Book(22): "Song",
		Book(23): "Isa.",
		Book(24): "Jer.",
		Book(25): "Lam.",
		Book(26): "Ezek.",
		Book(27): "Dan.",
		Book(28): "Hos.",
		Book(31): "Obad.",
		Book(32): "Jon.",
		Book(33): "Mic.",
		Book(34): "Nah.",
		Book(35): "Hab.",
		Book(36): "Zeph.",
		Book(37): "Hag.",
		Book(38): "Zech.",
		Book(39): "Mal.",
		Book(40): "Matt.",
		Book(45): "Rom.",
		Book(46): "1\u00a0Cor.",
		Book(47): "2\u00a0Cor.",
		Book(48): "Gal.",
		Book(49): "Eph.",
		Book(50): "Phil.",
		Book(51): "Col.",
		Book(52): "1\u00a0Thes.",
		Book(53): "2\u00a0Thes.",
		Book(54): "1\u00a0Tim.",
		Book(55): "2\u00a0Tim.",
		Book(57): "Philem.",
		Book(58): "Heb.",
		Book(60): "1\u00a0Pet.",
		Book(61): "2\u00a0Pet.",
		Book(66): "Rev.",
	}

	// Bible team abbreviations, applied on top of the period-less Tyndale set
	teamAbbr = Table{
		Book(11): "1\u00a0Kgs",
		Book(12): "2\u00a0Kgs",
		Book(13): "1\u00a0Chr",
		Book(14): "2\u00a0Chr",
		Book(17): "Esth",
		Book(20): "Pr",
		Book(21): "Eccl",
		Book(57): "Phlm",
		Book(59): "Jas",
		Book(62): "1\u00a0Jn",
		Book(63): "2\u00a0Jn",
		Book(64): "3\u00a0Jn",
	}

	// Swindoll Study Bible abbreviations, applied on top of the Tyndale set
	swindollAbbr = Table{
		Book(11): "1\u00a0Kgs.",
		Book(12): "2\u00a0Kgs.",
		Book(13): "1\u00a0Chr.",
		Book(14): "2\u00a0Chr.",
		Book(17): "Esth.",
		Book(20): "Prov.",
		Book(21): "Eccl.",
		Book(57): "Phlm.",
		Book(59): "Jas.",
		Book(62): "1\u00a0Jn.",
		Book(63): "2\u00a0Jn.",
		Book(64): "3\u00a0Jn.",
	}

	teamAbbrHagg = Table{
		Book(37): "Hagg",
	}

	nltsbAbbr = Table{
		Book(20): "Prov",
	}

	// Spanish Bible team abbreviations
	spanishTeamAbbr = Table{
		Book(1):  "Gn",
		Book(2):  "Ex",
		Book(3):  "Lv",
		Book(4):  "Nm",
		Book(5):  "Dt",
		Book(6):  "Jos",
		Book(7):  "Jc",
		Book(8):  "Rt",
		Book(9):  "1\u00a0Sm",
		Book(10): "2\u00a0Sm",
		Book(11): "1\u00a0Re",
		Book(12): "2\u00a0Re",
		Book(13): "1\u00a0Cr",
		Book(14): "2\u00a0Cr",
		Book(15): "Esd",
		Book(16): "Ne",
		Book(17): "Est",
		Book(18): "Jb",
		Book(19): "Sal",
		Book(20): "Pr",
		Book(21): "Ecl",
		Book(22): "Ct",
		Book(23): "Is",
		Book(24): "Jr",
		Book(25): "Lm",
		Book(26): "Ez",
		Book(27): "Dn",
		Book(28): "Os",
		Book(29): "Jl",
		Book(30): "Am",
		Book(31): "Ab",
		Book(32): "Jon",
		Book(33): "Mi",
		Book(34): "Na",
		Book(35): "Ha",
		Book(36): "So",
		Book(37): "Hag",
		Book(38): "Za",
		Book(39): "Ml",
		Book(40): "Mt",
		Book(41): "Mc",
		Book(42): "Lc",
		Book(43): "Jn",
		Book(44): "Hch",
		Book(45): "Rm",
		Book(46): "1\u00a0Co",
		Book(47): "2\u00a0Co",
		Book(48): "Ga",
		Book(49): "Ef",
		Book(50): "Flp",
		Book(51): "Col",
		Book(52): "1\u00a0Ts",
		Book(53): "2\u00a0Ts",
		Book(54): "1\u00a0Tm",
		Book(55): "2\u00a0Tm",
		Book(56): "Tt",
		Book(57): "Flm",
		Book(58): "Hb",
		Book(59): "St",
		Book(60): "1\u00a0P",
		Book(61): "2\u00a0P",
		Book(62): "1\u00a0Jn",
		Book(63): "2\u00a0Jn",
		Book(64): "3\u00a0Jn",
		Book(65): "Jds",
		Book(66): "Ap",
	}

	// LASB master index abbreviations
	lasbIndexAbbr = Table{
		Book(1):  "Gn",
		Book(2):  "Ex",
		Book(3):  "Lv",
		Book(4):  "Nm",
		Book(5):  "Dt",
		Book(6):  "Jos",
		Book(7):  "Jgs",
		Book(8):  "Ru",
		Book(9):  "1\u00a0Sm",
		Book(10): "2\u00a0Sm",
		Book(15): "Ezr",
		Book(17): "Est",
		Book(18): "Jb",
		Book(20): "Prv",
		Book(23): "Is",
		Book(26): "Ez",
		Book(27): "Dn",
		Book(29): "Jl",
		Book(30): "Am",
		Book(31): "Ob",
		Book(33): "Mi",
		Book(34): "Na",
		Book(35): "Hab",
		Book(36): "Zep",
		Book(37): "Hg",
		Book(38): "Zec",
		Book(40): "Mt",
		Book(41): "Mk",
		Book(42): "Lk",
		Book(43): "Jn",
		Book(54): "1\u00a0Tm",
		Book(55): "2\u00a0Tm",
		Book(56): "Ti",
		Book(60): "1\u00a0Pt",
		Book(61): "2\u00a0Pt",
		Book(66): "Rv",
	}

	// HCSB LASB master index abbreviations
	hcsbLASBIndexAbbr = Table{
		Book(7):  "Jdg",
		Book(11): "1Kg",
		Book(12): "2Kg",
		Book(13): "1Ch",
		Book(14): "2Ch",
		Book(21): "Ec",
		Book(22): "Sg",
		Book(24): "Jr",
		Book(25): "Lm",
		Book(26): "Ezk",
		Book(28): "Hs",
		Book(32): "Jnh",
		Book(33): "Mc",
		Book(38): "Zch",
		Book(44): "Ac",
		Book(45): "Rm",
		Book(46): "1Co",
		Book(47): "2Co",
		Book(48): "Gl",
		Book(50): "Php",
		Book(52): "1Th",
		Book(53): "2Th",
		Book(57): "Phm",
		Book(59): "Jms",
		Book(65): "Jd",
	}

	teamAbbrDeuterocanon = Table{
		Inserted(16, 1): "Tob",
		Inserted(16, 2): "Jdt",
		Inserted(17, 1): "1\u00a0Macc",
		Inserted(17, 2): "2\u00a0Macc",
		Inserted(22, 1): "Wis",
		Inserted(22, 2): "Sir",
		Inserted(25, 1): "Bar",
	}

	// IVP abbreviations, including its deuterocanon
	ivpAbbrDeuterocanon = Table{
		Book(2):         "Ex",
		Book(11):        "1\u00a0Kings",
		Book(12):        "2\u00a0Kings",
		Book(13):        "1\u00a0Chron",
		Book(14):        "2\u00a0Chron",
		Inserted(14, 1): "Pr\u00a0Man",
		Inserted(15, 1): "1\u00a0Esdr",
		Inserted(15, 2): "2\u00a0Esdr",
		Book(17):        "Esther",
		Inserted(17, 1): "Add\u00a0Esther",
		Inserted(17, 2): "1\u00a0Macc",
		Inserted(17, 3): "2\u00a0Macc",
		Inserted(17, 4): "3\u00a0Macc",
		Inserted(17, 5): "4\u00a0Macc",
		Book(20):        "Prov",
		Book(21):        "Eccles",
		Book(23):        "Is",
		Inserted(24, 1): "Ep\u00a0Jer",
		Inserted(27, 1): "Pr\u00a0Azar",
		Inserted(27, 2): "Sus",
		Inserted(27, 3): "Bel",
		Book(34):        "Nahum",
		Book(40):        "Mt",
		Book(41):        "Mk",
		Book(42):        "Lk",
		Book(43):        "Jn",
		Book(52):        "1\u00a0Thess",
		Book(53):        "2\u00a0Thess",
		Book(57):        "Philem",
	}

	// SBL Handbook of Style abbreviations that differ from the Bible team set
	sblAbbr = Table{
		Book(32): "Jonah",
		Book(52): "1\u00a0Thess",
		Book(53): "2\u00a0Thess",
		Book(62): "1\u00a0John",
		Book(63): "2\u00a0John",
		Book(64): "3\u00a0John",
	}

	sblAbbrCanticles = Table{
		Book(22): "Cant",
	}

	sblAbbrQoheleth = Table{
		Book(21): "Qoh",
	}

	sblAbbrDeuterocanon = Table{
		Inserted(16, 1): "Tob",
		Inserted(16, 2): "Jdt",
		Inserted(17, 1): "1\u00a0Macc",
		Inserted(17, 2): "2\u00a0Macc",
		Inserted(22, 1): "Wis",
		Inserted(22, 2): "Sir",
		Inserted(25, 1): "Bar",
	}

	// four-letter keys of the bibletext repository, used for link targets
	bibleTextKeys = Table{
		Book(1):  "gene",
		Book(2):  "exod",
		Book(3):  "levi",
		Book(4):  "numb",
		Book(5):  "deut",
		Book(6):  "josh",
		Book(7):  "judg",
		Book(8):  "ruth",
		Book(9):  "sam1",
		Book(10): "sam2",
		Book(11): "kgs1",
		Book(12): "kgs2",
		Book(13): "chr1",
		Book(14): "chr2",
		Book(15): "ezra",
		Book(16): "nehe",
		Book(17): "esth",
		Book(18): "job",
		Book(19): "psal",
		Book(20): "prov",
		Book(21): "eccl",
		Book(22): "song",
		Book(23): "isai",
		Book(24): "jere",
		Book(25): "lame",
		Book(26): "ezek",
		Book(27): "dani",
		Book(28): "hose",
		Book(29): "joel",
		Book(30): "amos",
		Book(31): "obad",
		Book(32): "jona",
		Book(33): "mica",
		Book(34): "nahu",
		Book(35): "haba",
		Book(36): "zeph",
		Book(37): "hagg",
		Book(38): "zech",
		Book(39): "mala",
		Book(40): "matt",
		Book(41): "mark",
		Book(42): "luke",
		Book(43): "john",
		Book(44): "acts",
		Book(45): "roma",
		Book(46): "cor1",
		Book(47): "cor2",
		Book(48): "gala",
		Book(49): "ephe",
		Book(50): "phil",
		Book(51): "colo",
		Book(52): "the1",
		Book(53): "the2",
		Book(54): "tim1",
		Book(55): "tim2",
		Book(56): "titu",
		Book(57): "phlm",
		Book(58): "hebr",
		Book(59): "jame",
		Book(60): "pet1",
		Book(61): "pet2",
		Book(62): "joh1",
		Book(63): "joh2",
		Book(64): "joh3",
		Book(65): "jude",
		Book(66): "reve",
	}

	bibleTextDeuterocanonKeys = Table{
		Inserted(16, 1): "tobi",
		Inserted(16, 2): "judi",
		Inserted(17, 1): "mac1",
		Inserted(17, 2): "mac2",
		Inserted(22, 1): "wisd",
		Inserted(22, 2): "sira",
		Inserted(25, 1): "baru",
	}

	// XML id abbreviations; XML ids cannot start with a digit
	xmlAbbr = Table{
		Book(9):         "ISam",
		Book(10):        "IISam",
		Book(11):        "IKgs",
		Book(12):        "IIKgs",
		Book(13):        "IChr",
		Book(14):        "IIChr",
		Inserted(17, 1): "IMacc",
		Inserted(17, 2): "IIMacc",
		Book(19):        "Ps",
		Book(37):        "Hagg",
		Book(46):        "ICor",
		Book(47):        "IICor",
		Book(52):        "IThes",
		Book(53):        "IIThes",
		Book(54):        "ITim",
		Book(55):        "IITim",
		Book(60):        "IPet",
		Book(61):        "IIPet",
		Book(62):        "IJn",
		Book(63):        "IIJn",
		Book(64):        "IIIJn",
	}
)
