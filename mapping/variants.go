package mapping

// egyptianMapping follows Egyptian conventions: jīm is a hard g, and the
// dictionary carries the Egyptian spellings in use on Egyptian documents.
var egyptianMapping = Extend(defaultMapping, "egyptian",
	map[string]string{
		"جمال":  "gamal",
		"جميل":  "gamil",
		"جابر":  "gaber",
		"نجيب":  "naguib",
		"محمد":  "mohamed",
		"أحمد":  "ahmed",
		"حسين":  "hussein",
		"يوسف":  "youssef",
	},
	map[string]string{
		"ج": "g", // ج jeem → hard g
	},
)

// gulfMapping follows common Gulf conventions: qāf is rendered g, with a
// handful of Gulf name spellings layered over the default dictionary.
var gulfMapping = Extend(defaultMapping, "gulf",
	map[string]string{
		"محمد":  "mohammed",
		"قاسم":  "gasim",
		"شيخة":  "shaikha",
		"عبدالله": "abdulla",
	},
	map[string]string{
		"ق": "g", // ق qaf → Gulf gaf
	},
)
