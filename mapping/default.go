package mapping

// defaultMapping is the primary variant, following the romanization
// conventions most commonly used on machine-readable travel documents.
var defaultMapping = New("default", defaultWords, defaultLetters)

// defaultLetters maps single Arabic codepoints to their Latin rendering.
// Short vowels and other diacritics map to the empty string; anything not
// listed here passes through unchanged.
var defaultLetters = map[string]string{
	// Hamza forms
	"ء": "",  // ء bare hamza (glottal stop, dropped)
	"آ": "a", // آ alef madda
	"أ": "a", // أ alef with hamza above
	"ؤ": "u", // ؤ waw with hamza
	"إ": "i", // إ alef with hamza below
	"ئ": "i", // ئ yeh with hamza
	"ٱ": "a", // ٱ alef wasla

	// Base consonants
	"ا": "a",  // ا alef
	"ب": "b",  // ب beh
	"ة": "h",  // ة teh marbuta (restyled by the engine)
	"ت": "t",  // ت teh
	"ث": "th", // ث theh
	"ج": "j",  // ج jeem
	"ح": "h",  // ح hah
	"خ": "kh", // خ khah
	"د": "d",  // د dal
	"ذ": "dh", // ذ thal
	"ر": "r",  // ر reh
	"ز": "z",  // ز zain
	"س": "s",  // س seen
	"ش": "sh", // ش sheen
	"ص": "s",  // ص sad
	"ض": "d",  // ض dad
	"ط": "t",  // ط tah
	"ظ": "z",  // ظ zah
	"ع": "a",  // ع ain
	"غ": "gh", // غ ghain
	"ف": "f",  // ف feh
	"ق": "q",  // ق qaf
	"ك": "k",  // ك kaf
	"ل": "l",  // ل lam
	"م": "m",  // م meem
	"ن": "n",  // ن noon
	"ه": "h",  // ه heh
	"و": "w",  // و waw
	"ى": "a",  // ى alef maksura
	"ي": "y",  // ي yeh

	// Diacritics (dropped)
	"ً": "", // ً fathatan
	"ٌ": "", // ٌ dammatan
	"ٍ": "", // ٍ kasratan
	"َ": "", // َ fatha
	"ُ": "", // ُ damma
	"ِ": "", // ِ kasra
	"ّ": "", // ّ shadda
	"ْ": "", // ْ sukun
	"ٰ": "", // ٰ superscript alef
	"ـ": "", // ـ tatweel

	// Persian/Urdu-derived letters
	"پ": "p",  // پ peh
	"چ": "ch", // چ tcheh
	"ژ": "zh", // ژ jeh
	"گ": "g",  // گ gaf
	"ڤ": "v",  // ڤ veh
	"ک": "k",  // ک keheh
	"ی": "y",  // ی farsi yeh
	"ے": "y",  // ے yeh barree
	"ٹ": "t",  // ٹ tteh
	"ڈ": "d",  // ڈ ddal
	"ڑ": "r",  // ڑ rreh
	"ں": "n",  // ں noon ghunna
	"ھ": "h",  // ھ heh doachashmee
	"ہ": "h",  // ہ heh goal

	// Eastern Arabic digits
	"٠": "0", // ٠
	"١": "1", // ١
	"٢": "2", // ٢
	"٣": "3", // ٣
	"٤": "4", // ٤
	"٥": "5", // ٥
	"٦": "6", // ٦
	"٧": "7", // ٧
	"٨": "8", // ٨
	"٩": "9", // ٩

	// Extended Arabic-Indic digits
	"۰": "0", // ۰
	"۱": "1", // ۱
	"۲": "2", // ۲
	"۳": "3", // ۳
	"۴": "4", // ۴
	"۵": "5", // ۵
	"۶": "6", // ۶
	"۷": "7", // ۷
	"۸": "8", // ۸
	"۹": "9", // ۹

	// Arabic punctuation
	"،": ",", // ،
	"؛": ";", // ؛
	"؟": "?", // ؟
	"٪": "%", // ٪
	"۔": ".", // ۔
}

// defaultWords is the exact-match dictionary for the default variant.
// Single-word values are stored lowercase so the engine's capitalization
// pass produces the conventional form; hyphenated and multi-word values
// carry the casing they should keep.
var defaultWords = map[string]string{
	// Masculine given names
	"محمد":   "muhammad",
	"أحمد":   "ahmad",
	"محمود":  "mahmoud",
	"مصطفى":  "mustafa",
	"علي":    "ali",
	"عمر":    "omar",
	"عثمان":  "othman",
	"خالد":   "khaled",
	"حسن":    "hassan",
	"حسين":   "hussein",
	"حمزة":   "hamza",
	"بلال":   "bilal",
	"طارق":   "tariq",
	"سعيد":   "saeed",
	"سعد":    "saad",
	"صلاح":   "salah",
	"كريم":   "karim",
	"جمال":   "jamal",
	"جعفر":   "jaafar",
	"يوسف":   "yousef",
	"يعقوب":  "yaqoub",
	"إبراهيم": "ibrahim",
	"إسماعيل": "ismail",
	"إسحاق":  "ishaq",
	"سليمان":  "suleiman",
	"داود":   "dawoud",
	"موسى":   "moussa",
	"عيسى":   "issa",
	"يحيى":   "yahya",
	"زكريا":  "zakaria",
	"أيوب":   "ayoub",
	"هارون":  "haroun",
	"آدم":    "adam",
	"نوح":    "noah",
	"صالح":   "saleh",
	"فيصل":   "faisal",
	"ماجد":   "majed",
	"وليد":   "walid",
	"زياد":   "ziad",
	"رشيد":   "rashid",

	// Feminine given names
	"فاطمة":  "fatima",
	"عائشة":  "aisha",
	"خديجة":  "khadija",
	"زينب":   "zainab",
	"مريم":   "mariam",
	"ليلى":   "laila",
	"هدى":    "huda",
	"سارة":   "sara",
	"آمنة":   "amna",
	"أمينة":  "amina",
	"نورة":   "noura",
	"رقية":   "ruqayya",
	"صفية":   "safiya",
	"حليمة":  "halima",

	// Compound Abd- names, joined and spaced spellings
	"عبدالله":    "abdullah",
	"عبد الله":   "abdullah",
	"عبدالرحمن":  "abdulrahman",
	"عبد الرحمن": "Abd Al-Rahman",
	"عبدالعزيز":  "abdulaziz",
	"عبد العزيز": "Abd Al-Aziz",
	"عبدالكريم":  "abdulkarim",
	"عبد الكريم": "Abd Al-Karim",
	"عبدالرحيم":  "abdulrahim",
	"عبد الرحيم": "Abd Al-Rahim",

	// Definite name segments (divine epithets and common surname stems).
	// Values keep the article lowercase and capitalize the stem so the
	// engine's first-codepoint pass yields e.g. "Al-Rahman".
	"الرحمن": "al-Rahman",
	"الرحيم": "al-Rahim",
	"العزيز": "al-Aziz",
	"الكريم": "al-Karim",
	"الدين":  "al-Din",
	"الحسن":  "al-Hassan",
	"الحسين": "al-Hussein",
}
