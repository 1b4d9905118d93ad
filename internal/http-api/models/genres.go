package models

// ValidGenres is the fixed set of accepted book genres. Shared by the catalog
// and library validation paths so the list only lives in one place.
var ValidGenres = []string{
	"Fantasi Tinggi (High Fantasy)",
	"Fantasi Rendah (Low Fantasy)",
	"Fiksi Ilmiah",
	"Horor Gotik",
	"Misteri Klasik",
	"Romansa Kontemporer",
	"Fiksi Sejarah",
	"Petualangan & Aksi",
	"Biografi & Memoar",
	"Pengembangan Diri (Self-help)",
	"Agama & Kepercayaan",
	"Filsafat",
	"Sejarah Dunia",
	"Politik & Sosial",
	"Bisnis & Ekonomi",
	"Kesehatan & Gaya Hidup",
	"Kuliner",
	"Seni & Desain",
	"Bahasa & Sastra",
	"Puisi / Sajak",
}

// ValidGenre reports whether genre is one of the accepted values.
func ValidGenre(genre string) bool {
	for _, g := range ValidGenres {
		if g == genre {
			return true
		}
	}
	return false
}
