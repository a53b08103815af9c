package i18n

import "testing"

func TestTranslate(t *testing.T) {
	tests := []struct {
		name     string
		lang     Language
		key      string
		fallback string
		want     string
	}{
		{
			name: "english match",
			lang: LanguageEnglish,
			key:  "nav.laws",
			want: "Laws",
		},
		{
			name: "hindi match",
			lang: LanguageHindi,
			key:  "nav.laws",
			want: "कानून",
		},
		{
			name: "tamil match",
			lang: LanguageTamil,
			key:  "nav.laws",
			want: "சட்டங்கள்",
		},
		{
			name:     "missing key uses fallback",
			lang:     LanguageEnglish,
			key:      "nav.missing",
			fallback: "Missing",
			want:     "Missing",
		},
		{
			name: "missing key without fallback returns key",
			lang: LanguageEnglish,
			key:  "nav.missing",
			want: "nav.missing",
		},
		{
			name:     "unknown language uses fallback",
			lang:     Language("fr"),
			key:      "nav.laws",
			fallback: "Lois",
			want:     "Lois",
		},
		{
			name: "unknown language without fallback returns key",
			lang: Language("fr"),
			key:  "nav.laws",
			want: "nav.laws",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Translate(tt.lang, tt.key, tt.fallback); got != tt.want {
				t.Errorf("Translate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTranslateNeverEmpty(t *testing.T) {
	for _, key := range Keys() {
		for _, lang := range Languages() {
			if got := Translate(lang, key, ""); got == "" {
				t.Errorf("Translate(%s, %s) returned empty string", lang, key)
			}
		}
	}
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		code  string
		want  Language
		valid bool
	}{
		{"en", LanguageEnglish, true},
		{"hi", LanguageHindi, true},
		{"ta", LanguageTamil, true},
		{"fr", LanguageDefault, false},
		{"", LanguageDefault, false},
		{"EN", LanguageDefault, false},
	}
	for _, tt := range tests {
		got, valid := ParseLanguage(tt.code)
		if got != tt.want || valid != tt.valid {
			t.Errorf("ParseLanguage(%q) = (%s, %v), want (%s, %v)", tt.code, got, valid, tt.want, tt.valid)
		}
	}
}
