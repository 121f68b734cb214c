package vocab

// Pair is a source word and its gloss before classification.
type Pair struct {
	Source string
	Gloss  string
}

var discourseMarkers = []string{
	"mula-mula", "pertama", "selain itu", "tambahan pula", "kemudian",
	"selepas itu", "walau bagaimanapun", "oleh itu", "contohnya",
	"misalnya", "akhirnya", "akhir sekali", "kesimpulannya",
}

var idioms = []string{
	"anak emas", "buah tangan", "mulut murai", "kaki bangku", "hidung tinggi",
	"berat tulang", "otak udang", "kaki ayam", "tangan panjang",
	"telinga kuali", "ulat buku", "besar hati", "buah hati", "kaki botol",
	"makan angin", "ringan tulang", "besar kepala", "cakar ayam", "pakwe",
	"makwe",
}

// meN- verbs whose root already ends in "i" and would otherwise be read
// as meN-i verbs.
var meNRootsEndingInI = []string{"membeli", "mencuci", "menyanyi"}

// BuiltinWords is the vocabulary shipped with the application.
var BuiltinWords = []Pair{
	// Penanda wacana
	{"mula-mula", "at first"},
	{"pertama", "firstly"},
	{"selain itu", "besides that"},
	{"tambahan pula", "moreover"},
	{"kemudian", "then"},
	{"selepas itu", "after that"},
	{"walau bagaimanapun", "however"},
	{"oleh itu", "therefore"},
	{"contohnya", "for example"},
	{"misalnya", "for example"},
	{"akhirnya", "finally"},
	{"akhir sekali", "lastly"},
	{"kesimpulannya", "in conclusion"},

	// Simpulan bahasa
	{"anak emas", "favourite person"},
	{"buah tangan", "souvenir"},
	{"mulut murai", "talkative person"},
	{"kaki bangku", "bad at sports"},
	{"hidung tinggi", "arrogant"},
	{"berat tulang", "lazy"},
	{"otak udang", "slow-witted"},
	{"kaki ayam", "barefoot"},
	{"tangan panjang", "likes to steal"},
	{"telinga kuali", "stubborn"},
	{"ulat buku", "bookworm"},
	{"besar hati", "happy or proud"},
	{"buah hati", "beloved"},
	{"kaki botol", "alcoholic"},
	{"makan angin", "to go on a trip"},
	{"ringan tulang", "hardworking"},
	{"besar kepala", "arrogant"},
	{"cakar ayam", "messy handwriting"},
	{"pakwe", "boyfriend"},
	{"makwe", "girlfriend"},

	// meN-
	{"melihat", "see"},
	{"memasak", "cook"},
	{"menyanyi", "sing"},
	{"merasa", "feel"},
	{"mewarna", "color"},
	{"meyakinkan", "convince"},
	{"membeli", "buy"},
	{"menfoto", "photograph"},
	{"memvakum", "vacuum"},
	{"memohon", "apply"},
	{"mencuci", "wash"},
	{"mendapat", "get"},
	{"menjawab", "answer"},
	{"menulis", "write"},
	{"menziarah", "visit"},
	{"menyapu", "sweep"},
	{"menyepak", "kick"},
	{"mengecat", "paint"},
	{"mengelap", "wipe"},
	{"mengambil", "take"},
	{"mengikal", "tie"},
	{"menggosok", "rub"},
	{"mengira", "to count"},

	// meN-kan
	{"membesarkan", "enlarge"},
	{"mengajarkan", "teach"},
	{"mengingatkan", "remind"},
	{"menjalankan", "carry out"},
	{"melarikan", "run away"},
	{"memainkan", "play something"},
	{"mengerjakan", "work on"},
	{"mendirikan", "establish/build"},
	{"menggerakkan", "move something"},
	{"menghentikan", "stop something"},
	{"mencantikkan", "beautify"},
	{"membaikan", "to improve"},
	{"mendekatkan", "bring closer"},
	{"memasukan", "insert"},
	{"mendudukan", "place"},
	{"menaikkan", "increase"},
	{"membelikan", "buy for someone"},
	{"menyeronokkan", "enjoy/have fun"},

	// meN-i
	{"menaiki", "to get on board"},
	{"menikmati", "to enjoy"},
	{"menyayangi", "to love"},
	{"mendekati", "to approach something"},
	{"membaiki", "repair"},
	{"mengingati", "remember"},
	{"menjalani", "undergo"},
	{"memasuki", "enter"},
	{"menduduki", "occupy"},

	// peN-
	{"pembaca", "reader"},
	{"pemfitnah", "slanderer"},
	{"pemotong", "cutter"},
	{"pencuri", "thief"},
	{"pendaki", "climber"},
	{"penari", "dancer"},
	{"pengguna", "user"},
	{"pengkaji", "researcher"},
	{"penganalisis", "analyst"},
	{"penyapu", "broom"},
	{"penyukat", "measurer"},
	{"pengecat", "painter"},
	{"pengelap", "wiper"},

	// peN-an / ke-an
	{"pemakanan", "diet"},
	{"pembacaan", "reading"},
	{"penggunaan", "usage"},
	{"pemandangan", "view/scenery"},
	{"pengalaman", "experience"},
	{"penulisan", "writing"},
	{"perjalanan", "journey"},
	{"pekerjaan", "occupation"},
	{"persoalan", "question"},
	{"pembuatan", "production"},
	{"pemakaian", "to wear clothes"},
	{"kepanasan", "feeling hot"},
	{"kebaikan", "goodness"},
	{"kesakitan", "pain"},

	// ter-
	{"terlupa", "forgot"},
	{"terlalu", "too"},
	{"tertidur", "fell asleep"},
	{"terbesar", "very big"},
	{"tertinggal", "left behind"},
	{"terkejut", "surprised"},
	{"tertua", "very old"},
	{"terlanggar", "hit accidentally"},
	{"tercapai", "achievable"},
	{"terindah", "most beautiful"},

	// Others
	{"makanan", "food"},
	{"tulisan", "writing"},
	{"pakaian", "clothing"},
	{"tuliskan", "please write"},
	{"hantarkan", "send/deliver"},
	{"bukakan", "open for someone"},
	{"sayangi", "love/cherish"},
	{"dekati", "approach"},
	{"jauhi", "stay away from"},
	{"tetap", "still"},
}
